package entity

import "time"

// StockRecord es la proyección materializada de cantidad disponible por (producto, ubicación).
// A lo sumo un registro por clave; se crea con el primer movimiento de entrada y nunca se borra.
// El log de movimientos es la fuente de verdad; esto es una caché incremental.
type StockRecord struct {
	ProductName       string
	Location          string
	AvailableQuantity int64 // nunca negativa: el decremento se recorta en cero
	UpdatedAt         time.Time
}
