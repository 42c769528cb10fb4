package models

type CreateOrderInput struct {
	UserID     int64
	ChatID     string
	BaseKind   string
	Condiments []string // wrapping order, innermost first
}

// Order is a row from the orders table. Price and Description are fixed at
// creation time from the composed beverage, so later catalog edits never
// change an existing order.
type Order struct {
	ID          int64
	UserID      int64
	ChatID      string
	Status      string
	BaseKind    string
	Condiments  []string
	Price       float64
	Description string
}

type DailyStats struct {
	OrdersCount    int
	Revenue        float64
	CondimentCount int
}
