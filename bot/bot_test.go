package bot

import (
	"strings"
	"testing"

	"cafe-telegram/beverage"
	"cafe-telegram/services"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		status string
		next   string
		ok     bool
	}{
		{services.OrderStatusNew, services.OrderStatusPreparing, true},
		{services.OrderStatusPreparing, services.OrderStatusReady, true},
		{services.OrderStatusReady, services.OrderStatusDelivered, true},
		{services.OrderStatusDelivered, "", false},
		{"desconocida", "", false},
	}
	for _, tt := range tests {
		next, ok := nextStatus(tt.status)
		if next != tt.next || ok != tt.ok {
			t.Errorf("nextStatus(%q) = (%q, %v), want (%q, %v)", tt.status, next, ok, tt.next, tt.ok)
		}
	}
}

func TestDraftSummary(t *testing.T) {
	d := &services.Draft{BaseKind: beverage.KindEspresso, Condiments: []string{beverage.KindMilk}}
	got := draftSummary(d)
	if !strings.Contains(got, "Café Expresso, con Leche") {
		t.Errorf("summary should show the composed description: %q", got)
	}
	if !strings.Contains(got, "$3.25") {
		t.Errorf("summary should show the running total: %q", got)
	}
}
