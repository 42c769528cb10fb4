package services

import (
	"context"
	"fmt"
	"strconv"

	"cafe-telegram/beverage"
	"cafe-telegram/db"
	"cafe-telegram/models"
)

func ListMenuByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, category, kind, name, price FROM menu_items
		WHERE category = $1
		ORDER BY id`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var id int64
		var cat, kind, name string
		var price float64
		if err := rows.Scan(&id, &cat, &kind, &name, &price); err != nil {
			return nil, err
		}
		items = append(items, models.MenuItem{
			ID:       strconv.FormatInt(id, 10),
			Category: cat,
			Kind:     kind,
			Name:     name,
			Price:    price,
		})
	}
	return items, rows.Err()
}

func ListAllMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, category, kind, name, price FROM menu_items
		ORDER BY category, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var id int64
		var cat, kind, name string
		var price float64
		if err := rows.Scan(&id, &cat, &kind, &name, &price); err != nil {
			return nil, err
		}
		items = append(items, models.MenuItem{
			ID:       strconv.FormatInt(id, 10),
			Category: cat,
			Kind:     kind,
			Name:     name,
			Price:    price,
		})
	}
	return items, rows.Err()
}

func AddMenuItem(ctx context.Context, category, kind, name string, price float64) (int64, error) {
	if category != models.CategoryBase && category != models.CategoryCondiment {
		return 0, fmt.Errorf("invalid category: %s", category)
	}
	if category == models.CategoryBase && !beverage.IsBaseKind(kind) {
		return 0, fmt.Errorf("unknown base kind: %s", kind)
	}
	if category == models.CategoryCondiment && !beverage.IsCondimentKind(kind) {
		return 0, fmt.Errorf("unknown condiment kind: %s", kind)
	}
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if price < 0 {
		return 0, fmt.Errorf("price must be >= 0")
	}

	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO menu_items (category, kind, name, price) VALUES ($1, $2, $3, $4)
		RETURNING id`,
		category, kind, name, price,
	).Scan(&id)
	return id, err
}

func GetMenuItemByKind(ctx context.Context, kind string) (*models.MenuItem, error) {
	var id int64
	var category, name string
	var price float64
	err := db.Pool.QueryRow(ctx, `
		SELECT id, category, name, price FROM menu_items WHERE kind = $1`,
		kind,
	).Scan(&id, &category, &name, &price)
	if err != nil {
		return nil, err
	}
	return &models.MenuItem{
		ID:       strconv.FormatInt(id, 10),
		Category: category,
		Kind:     kind,
		Name:     name,
		Price:    price,
	}, nil
}

func DeleteMenuItem(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}
