package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockRepository puerto de persistencia de la proyección de stock por (producto, ubicación).
type StockRepository interface {
	// Get devuelve el registro de stock o (nil, nil) si no existe.
	Get(productName, location string) (*entity.StockRecord, error)
	// GetForUpdate devuelve el registro bloqueando la fila (SELECT FOR UPDATE) o (nil, nil) si no existe.
	GetForUpdate(productName, location string) (*entity.StockRecord, error)
	// Upsert inserta o actualiza la cantidad disponible.
	Upsert(rec *entity.StockRecord) error
}
