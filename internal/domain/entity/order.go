package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de salida. El conjunto es una enumeración plana:
// cualquier estado conocido puede asignarse sobre cualquier otro (no hay grafo de transiciones).
const (
	StatusOrderPending    = "OrderPending"
	StatusOrderDelivered  = "OrderDelivered"
	StatusCancelCompleted = "CancelCompleted"
	StatusShipped         = "Shipped"
	StatusOrderCompleted  = "OrderCompleted"
	StatusRefunded        = "Refunded"
	StatusLabelsPrinted   = "LabelsPrinted"
)

// OrderStatuses lista los estados válidos de una orden de salida.
var OrderStatuses = []string{
	StatusOrderPending,
	StatusOrderDelivered,
	StatusCancelCompleted,
	StatusShipped,
	StatusOrderCompleted,
	StatusRefunded,
	StatusLabelsPrinted,
}

// IsOrderStatus indica si status pertenece a la enumeración de estados.
func IsOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OutboundOrder representa una orden de salida de mercancía.
// Inmutable salvo Status y UpdatedAt, que solo muta el workflow de estados.
// StorageLocation puede estar vacío: la orden no referencia una ubicación concreta.
type OutboundOrder struct {
	ID              string
	OrderID         string // consecutivo legible (OUT-001)
	Date            time.Time
	AccountName     string
	ProductName     string
	StorageLocation string
	Quantity        int64
	Status          string
	LabelCost       decimal.Decimal
	ThreePLCost     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
}
