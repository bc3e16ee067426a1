package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordInboundRequest body para POST /api/inbound.
// DateReceived en formato 2006-01-02; vacío = hoy.
type RecordInboundRequest struct {
	DateReceived     string `json:"date_received,omitempty"`
	SupplierName     string `json:"supplier_name"`
	ProductName      string `json:"product_name"`
	DispatchLocation string `json:"dispatch_location"`
	SKU              string `json:"sku,omitempty"`
	QuantityReceived int64  `json:"quantity_received"`
	Notes            string `json:"notes,omitempty"`
}

// RecordInboundResponse consecutivo asignado a la entrada registrada.
type RecordInboundResponse struct {
	InboundID string `json:"inbound_id"`
}

// RecordOutboundRequest body para POST /api/outbound.
// StorageLocation puede omitirse: la orden queda sin ubicación concreta, no
// descuenta del stock incremental y el rescan la cuenta contra todas las
// ubicaciones del producto.
type RecordOutboundRequest struct {
	Date            string          `json:"date,omitempty"`
	AccountName     string          `json:"account_name"`
	ProductName     string          `json:"product_name"`
	StorageLocation string          `json:"storage_location,omitempty"`
	Quantity        int64           `json:"quantity"`
	LabelCost       decimal.Decimal `json:"label_cost"`
	ThreePLCost     decimal.Decimal `json:"three_pl_cost"`
}

// RecordOutboundResponse consecutivo asignado a la orden registrada.
type RecordOutboundResponse struct {
	OrderID string `json:"order_id"`
}

// SetStatusRequest body para PUT /api/outbound/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse vista de una orden de salida para listados.
type OrderResponse struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	Date            time.Time       `json:"date"`
	AccountName     string          `json:"account_name"`
	ProductName     string          `json:"product_name"`
	StorageLocation string          `json:"storage_location,omitempty"`
	Quantity        int64           `json:"quantity"`
	Status          string          `json:"status"`
	LabelCost       decimal.Decimal `json:"label_cost"`
	ThreePLCost     decimal.Decimal `json:"three_pl_cost"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
