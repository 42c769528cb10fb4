package models

// MenuItem is a catalog row shown in the bot menu. Kind ties the row to the
// pricing core; price and name here are display metadata seeded from the same
// fixed tables the core uses.
type MenuItem struct {
	ID       string
	Category string // "base" or "condiment"
	Kind     string
	Name     string
	Price    float64
}

const (
	CategoryBase      = "base"
	CategoryCondiment = "condiment"
)
