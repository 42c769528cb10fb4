package services

import (
	"fmt"
	"strings"

	"cafe-telegram/models"
)

// FormatPrice renders a price the way receipts print it: two decimals, dollar sign.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// ReceiptLine is the canonical one-line receipt for a finished composition.
func ReceiptLine(orderID int64, description string, price float64) string {
	return fmt.Sprintf("Pedido %d: %s - %s", orderID, description, FormatPrice(price))
}

// StatusLabel maps an order status to the customer-facing label.
func StatusLabel(status string) string {
	switch status {
	case OrderStatusNew:
		return "Recibido"
	case OrderStatusPreparing:
		return "En preparación"
	case OrderStatusReady:
		return "Listo para recoger"
	case OrderStatusDelivered:
		return "Entregado"
	default:
		return status
	}
}

// BuildOrderCard returns the order message a customer sees after checkout and
// on /pedidos: the receipt line plus the current status.
func BuildOrderCard(o *models.Order) string {
	var b strings.Builder
	b.WriteString(ReceiptLine(o.ID, o.Description, o.Price))
	b.WriteString("\nEstado: ")
	b.WriteString(StatusLabel(o.Status))
	return b.String()
}
