package services

import (
	"context"
	"encoding/json"
	"fmt"

	"cafe-telegram/beverage"
	"cafe-telegram/db"
	"cafe-telegram/models"
)

const (
	OrderStatusNew       = "nueva"
	OrderStatusPreparing = "preparando"
	OrderStatusReady     = "lista"
	OrderStatusDelivered = "entregada"
)

// ValidStatusTransition reports whether an order may move from one status to
// the next. Orders only move forward, one step at a time.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusNew:
		return to == OrderStatusPreparing
	case OrderStatusPreparing:
		return to == OrderStatusReady
	case OrderStatusReady:
		return to == OrderStatusDelivered
	}
	return false
}

// CreateOrder composes the beverage, fixes its price and description, and
// persists the order as 'nueva'. An input that does not compose (unknown
// kinds) never reaches the database.
func CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	bev, err := beverage.Compose(input.BaseKind, input.Condiments)
	if err != nil {
		return nil, err
	}

	condimentsJSON, err := json.Marshal(input.Condiments)
	if err != nil {
		return nil, fmt.Errorf("marshal condiments: %w", err)
	}

	o := &models.Order{
		UserID:      input.UserID,
		ChatID:      input.ChatID,
		Status:      OrderStatusNew,
		BaseKind:    input.BaseKind,
		Condiments:  input.Condiments,
		Price:       bev.Price(),
		Description: bev.Description(),
	}
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, chat_id, base_kind, condiments, price, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		input.UserID, input.ChatID, input.BaseKind, condimentsJSON, o.Price, o.Description, o.Status,
	).Scan(&o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var o models.Order
	var condimentsJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, chat_id, status, base_kind, condiments, price, description
		FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.UserID, &o.ChatID, &o.Status, &o.BaseKind, &condimentsJSON, &o.Price, &o.Description)
	if err != nil {
		return nil, err
	}
	if len(condimentsJSON) > 0 {
		if err := json.Unmarshal(condimentsJSON, &o.Condiments); err != nil {
			return nil, fmt.Errorf("unmarshal condiments: %w", err)
		}
	}
	return &o, nil
}

func ListOrdersByUser(ctx context.Context, userID int64, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, chat_id, status, base_kind, condiments, price, description
		FROM orders WHERE user_id = $1
		ORDER BY id DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var condimentsJSON []byte
		if err := rows.Scan(&o.ID, &o.UserID, &o.ChatID, &o.Status, &o.BaseKind, &condimentsJSON, &o.Price, &o.Description); err != nil {
			return nil, err
		}
		if len(condimentsJSON) > 0 {
			if err := json.Unmarshal(condimentsJSON, &o.Condiments); err != nil {
				return nil, fmt.Errorf("unmarshal condiments: %w", err)
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus advances an order, enforcing the forward-only transition
// table in SQL so concurrent updates cannot skip a step.
func UpdateOrderStatus(ctx context.Context, orderID int64, from, to string) error {
	if !ValidStatusTransition(from, to) {
		return fmt.Errorf("invalid status transition %s -> %s", from, to)
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		to, orderID, from,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d is no longer %s", orderID, from)
	}
	return nil
}

func GetDailyStats(ctx context.Context, date string) (*models.DailyStats, error) {
	var s models.DailyStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*)::int,
			COALESCE(SUM(price), 0)::float8,
			COALESCE(SUM(jsonb_array_length(condiments)), 0)::int
		FROM orders
		WHERE created_at::date = $1::date`,
		date,
	).Scan(&s.OrdersCount, &s.Revenue, &s.CondimentCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
