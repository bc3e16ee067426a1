// Package ledger mantiene la proyección incremental de stock por
// (producto, ubicación). El log de movimientos es la fuente de verdad; el
// motor de agregación recalcula la misma cifra desde cero como contraste.
package ledger

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Ledger aplica deltas de entrada/salida sobre los registros de stock.
// Las mutaciones deben ejecutarse con la fila bloqueada (GetForUpdate) dentro
// de la transacción del caller; por eso los métodos reciben el repo atado a la tx.
type Ledger struct {
	log *logger.Logger
}

// New construye el ledger.
func New(log *logger.Logger) *Ledger {
	return &Ledger{log: log}
}

// ApplyInbound suma qty al registro (producto, ubicación); si no existe lo crea
// con esa cantidad. qty debe ser >= 0.
func (l *Ledger) ApplyInbound(stockRepo repository.StockRepository, productName, location string, qty int64, now time.Time) error {
	if qty < 0 {
		return domain.ErrInvalidInput
	}
	rec, err := stockRepo.GetForUpdate(productName, location)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &entity.StockRecord{ProductName: productName, Location: location}
	}
	rec.AvailableQuantity += qty
	rec.UpdatedAt = now
	return stockRepo.Upsert(rec)
}

// ApplyOutbound resta qty del registro (producto, ubicación). Si el registro no
// existe la operación se rechaza sin crear nada: una salida debe referenciar
// stock existente. Si la resta quedaría negativa se recorta en cero y se emite
// un evento de advertencia (el remanente negativo se descarta).
func (l *Ledger) ApplyOutbound(stockRepo repository.StockRepository, productName, location string, qty int64, now time.Time) error {
	if qty < 0 {
		return domain.ErrInvalidInput
	}
	rec, err := stockRepo.GetForUpdate(productName, location)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNoStockRecord
	}
	remaining := rec.AvailableQuantity - qty
	if remaining < 0 {
		l.log.Warn().
			Str("product", productName).
			Str("location", location).
			Int64("available", rec.AvailableQuantity).
			Int64("requested", qty).
			Msg("salida mayor que el disponible, cantidad recortada en cero")
		remaining = 0
	}
	rec.AvailableQuantity = remaining
	rec.UpdatedAt = now
	return stockRepo.Upsert(rec)
}
