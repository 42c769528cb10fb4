package beverage

import "fmt"

// Kind strings as stored in drafts and orders.
const (
	KindEspresso = "espresso"
	KindDecaf    = "decaf"
	KindMilk     = "milk"
	KindCream    = "cream"
)

// BaseKinds and CondimentKinds list the kinds in menu display order.
var (
	BaseKinds      = []string{KindEspresso, KindDecaf}
	CondimentKinds = []string{KindMilk, KindCream}
)

// NewLeaf builds a base beverage from its stored kind string.
func NewLeaf(kind string) (Beverage, error) {
	switch kind {
	case KindEspresso:
		return NewEspresso(), nil
	case KindDecaf:
		return NewDecaf(), nil
	}
	return nil, fmt.Errorf("unknown base beverage kind: %s", kind)
}

// Wrap wraps inner in the condiment named by kind.
func Wrap(kind string, inner Beverage) (Beverage, error) {
	if inner == nil {
		return nil, fmt.Errorf("wrap %s: no inner beverage", kind)
	}
	switch kind {
	case KindMilk:
		return NewMilk(inner), nil
	case KindCream:
		return NewCream(inner), nil
	}
	return nil, fmt.Errorf("unknown condiment kind: %s", kind)
}

// Compose builds the full chain: base first, then each condiment kind wrapped
// around the previous result in list order. Drafts and orders store condiments
// in the order the customer added them, so the first element ends up innermost.
func Compose(base string, condiments []string) (Beverage, error) {
	bev, err := NewLeaf(base)
	if err != nil {
		return nil, err
	}
	for _, kind := range condiments {
		bev, err = Wrap(kind, bev)
		if err != nil {
			return nil, err
		}
	}
	return bev, nil
}

// IsBaseKind reports whether kind names a base beverage.
func IsBaseKind(kind string) bool {
	for _, k := range BaseKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsCondimentKind reports whether kind names a condiment.
func IsCondimentKind(kind string) bool {
	for _, k := range CondimentKinds {
		if k == kind {
			return true
		}
	}
	return false
}
