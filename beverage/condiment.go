package beverage

// condiment holds the one beverage a concrete condiment wraps. The inner
// reference is set at construction and never reassigned.
type condiment struct {
	inner Beverage
}

func newCondiment(inner Beverage) condiment {
	if inner == nil {
		panic("beverage: condiment requires an inner beverage")
	}
	return condiment{inner: inner}
}

// Milk wraps a beverage and adds a fixed surcharge.
type Milk struct {
	condiment
}

func NewMilk(inner Beverage) Milk {
	return Milk{newCondiment(inner)}
}

func (m Milk) Price() float64      { return m.inner.Price() + 0.75 }
func (m Milk) Description() string { return m.inner.Description() + ", con Leche" }

// Cream wraps a beverage and adds a fixed surcharge.
type Cream struct {
	condiment
}

func NewCream(inner Beverage) Cream {
	return Cream{newCondiment(inner)}
}

func (c Cream) Price() float64      { return c.inner.Price() + 1.00 }
func (c Cream) Description() string { return c.inner.Description() + ", con Crema" }
