package services

import (
	"context"
	"testing"

	"cafe-telegram/beverage"
	"cafe-telegram/db"
	"cafe-telegram/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusNew, OrderStatusPreparing, true},
		{OrderStatusNew, OrderStatusReady, false},
		{OrderStatusNew, OrderStatusDelivered, false},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusNew, false},
		{OrderStatusPreparing, OrderStatusDelivered, false},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusPreparing, false},
		{OrderStatusDelivered, OrderStatusNew, false},
		{OrderStatusNew, OrderStatusNew, false},
		{"", OrderStatusNew, false},
		{OrderStatusNew, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

// Integration tests for orders (require DB). Skip if db.Pool is nil or -short.
func TestOrderLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping order integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping order integration test: no DB pool")
	}
	ctx := context.Background()
	const testUserID int64 = 999999998

	o, err := CreateOrder(ctx, models.CreateOrderInput{
		UserID:     testUserID,
		ChatID:     "999999998",
		BaseKind:   beverage.KindEspresso,
		Condiments: []string{beverage.KindMilk, beverage.KindCream},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	defer func() {
		_, _ = db.Pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, o.ID)
	}()

	if o.Price != 4.25 {
		t.Errorf("created order price = %v, want 4.25", o.Price)
	}
	if o.Description != "Café Expresso, con Leche, con Crema" {
		t.Errorf("created order description = %q", o.Description)
	}
	if o.Status != OrderStatusNew {
		t.Errorf("created order status = %q, want %q", o.Status, OrderStatusNew)
	}

	got, err := GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Price != o.Price || got.Description != o.Description {
		t.Errorf("GetOrder returned %v %q, want %v %q", got.Price, got.Description, o.Price, o.Description)
	}
	if len(got.Condiments) != 2 || got.Condiments[0] != beverage.KindMilk || got.Condiments[1] != beverage.KindCream {
		t.Errorf("GetOrder condiments = %v, want [milk cream]", got.Condiments)
	}

	if err := UpdateOrderStatus(ctx, o.ID, OrderStatusNew, OrderStatusPreparing); err != nil {
		t.Errorf("advance to preparing: %v", err)
	}
	if err := UpdateOrderStatus(ctx, o.ID, OrderStatusNew, OrderStatusPreparing); err == nil {
		t.Error("second advance from nueva should fail, order already moved")
	}
	if err := UpdateOrderStatus(ctx, o.ID, OrderStatusPreparing, OrderStatusDelivered); err == nil {
		t.Error("skipping lista should be rejected")
	}
}

func TestCreateOrderRejectsUnknownKinds(t *testing.T) {
	// Composition fails before any SQL runs, so no DB is needed here.
	ctx := context.Background()
	_, err := CreateOrder(ctx, models.CreateOrderInput{
		UserID:   999999996,
		ChatID:   "999999996",
		BaseKind: "latte",
	})
	if err == nil {
		t.Error("unknown base kind should not create an order")
	}
}
