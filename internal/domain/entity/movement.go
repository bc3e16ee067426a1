package entity

import "time"

// InboundMovement representa una recepción de mercancía (hecho inmutable del log de movimientos).
// InboundID es el consecutivo legible (INB-001); ID es la clave primaria real.
type InboundMovement struct {
	ID               string
	InboundID        string
	DateReceived     time.Time
	SupplierName     string
	ProductName      string
	DispatchLocation string
	SKU              string
	QuantityReceived int64
	Notes            string
	CreatedAt        time.Time
	CreatedBy        string
}
