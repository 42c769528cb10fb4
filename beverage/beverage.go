// Package beverage is the pricing core: a drink is a base beverage wrapped by
// zero or more condiments, and its price and description accumulate from the
// innermost base out. Compositions are built once and never mutated, so every
// method here is a pure function over the finished chain.
package beverage

// Beverage is anything that can be priced and described: a base drink or a
// base drink wrapped in condiments.
type Beverage interface {
	Price() float64
	Description() string
}

// Espresso is a base beverage with a fixed price.
type Espresso struct{}

func NewEspresso() Espresso { return Espresso{} }

func (Espresso) Price() float64      { return 2.50 }
func (Espresso) Description() string { return "Café Expresso" }

// Decaf is a base beverage with a fixed price.
type Decaf struct{}

func NewDecaf() Decaf { return Decaf{} }

func (Decaf) Price() float64      { return 3.00 }
func (Decaf) Description() string { return "Café Descafeinado" }
