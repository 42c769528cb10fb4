package beverage

import "testing"

func TestBaseBeverages(t *testing.T) {
	tests := []struct {
		name  string
		bev   Beverage
		price float64
		desc  string
	}{
		{"espresso", NewEspresso(), 2.50, "Café Expresso"},
		{"decaf", NewDecaf(), 3.00, "Café Descafeinado"},
	}
	for _, tt := range tests {
		if got := tt.bev.Price(); got != tt.price {
			t.Errorf("%s: Price() = %v, want %v", tt.name, got, tt.price)
		}
		if got := tt.bev.Description(); got != tt.desc {
			t.Errorf("%s: Description() = %q, want %q", tt.name, got, tt.desc)
		}
	}
}

func TestCondimentDeltas(t *testing.T) {
	tests := []struct {
		name   string
		wrap   func(Beverage) Beverage
		delta  float64
		suffix string
	}{
		{"milk", func(b Beverage) Beverage { return NewMilk(b) }, 0.75, ", con Leche"},
		{"cream", func(b Beverage) Beverage { return NewCream(b) }, 1.00, ", con Crema"},
	}
	inners := []Beverage{NewEspresso(), NewDecaf(), NewMilk(NewEspresso())}
	for _, tt := range tests {
		for _, inner := range inners {
			wrapped := tt.wrap(inner)
			if got, want := wrapped.Price(), inner.Price()+tt.delta; got != want {
				t.Errorf("%s over %q: Price() = %v, want %v", tt.name, inner.Description(), got, want)
			}
			if got, want := wrapped.Description(), inner.Description()+tt.suffix; got != want {
				t.Errorf("%s over %q: Description() = %q, want %q", tt.name, inner.Description(), got, want)
			}
		}
	}
}

func TestCompositionScenarios(t *testing.T) {
	var b Beverage = NewEspresso()
	if b.Price() != 2.50 || b.Description() != "Café Expresso" {
		t.Errorf("espresso alone: got %v %q", b.Price(), b.Description())
	}

	b = NewMilk(NewDecaf())
	if b.Price() != 3.75 {
		t.Errorf("decaf+milk: Price() = %v, want 3.75", b.Price())
	}
	if b.Description() != "Café Descafeinado, con Leche" {
		t.Errorf("decaf+milk: Description() = %q", b.Description())
	}

	b = NewEspresso()
	b = NewMilk(b)
	b = NewCream(b)
	if b.Price() != 4.25 {
		t.Errorf("espresso+milk+cream: Price() = %v, want 4.25", b.Price())
	}
	if b.Description() != "Café Expresso, con Leche, con Crema" {
		t.Errorf("espresso+milk+cream: Description() = %q", b.Description())
	}
}

func TestWrappingOrder(t *testing.T) {
	milkFirst := NewCream(NewMilk(NewEspresso()))
	creamFirst := NewMilk(NewCream(NewEspresso()))

	if milkFirst.Price() != creamFirst.Price() {
		t.Errorf("price should not depend on order: %v vs %v", milkFirst.Price(), creamFirst.Price())
	}
	if milkFirst.Description() == creamFirst.Description() {
		t.Errorf("description should depend on order, both %q", milkFirst.Description())
	}
	if got := creamFirst.Description(); got != "Café Expresso, con Crema, con Leche" {
		t.Errorf("cream-first: Description() = %q", got)
	}
}

func TestRepeatedCallsAreStable(t *testing.T) {
	b := NewCream(NewMilk(NewEspresso()))
	price, desc := b.Price(), b.Description()
	for i := 0; i < 5; i++ {
		if b.Price() != price || b.Description() != desc {
			t.Fatalf("call %d changed result: %v %q", i, b.Price(), b.Description())
		}
	}
}

func TestCondimentRequiresInner(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMilk(nil) should panic")
		}
	}()
	NewMilk(nil)
}
