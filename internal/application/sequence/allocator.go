// Package sequence asigna los consecutivos legibles (INB-001, OUT-042) de los
// registros del log de movimientos. El consecutivo es informativo, no una
// garantía de unicidad: ante un fallo del contador se responde con el valor de
// respaldo en lugar de bloquear el registro del movimiento.
package sequence

import (
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Prefijos y categorías de consecutivos.
const (
	PrefixInbound  = "INB"
	PrefixOutbound = "OUT"

	CategoryInbound  = "inbound"
	CategoryOutbound = "outbound"
)

// Allocator produce el siguiente identificador legible por categoría.
// El contador se incrementa de forma atómica en la misma transacción que
// escribe el registro nuevo (el repo debe venir atado a esa tx).
type Allocator struct {
	log *logger.Logger
}

// NewAllocator construye el asignador.
func NewAllocator(log *logger.Logger) *Allocator {
	return &Allocator{log: log}
}

// NextID devuelve el siguiente consecutivo con formato PREFIX-NNN (mínimo 3
// dígitos, crece sin tope pasado 999). Falla abierto: si el contador no está
// disponible registra el error y devuelve PREFIX-001.
func (a *Allocator) NextID(seqRepo repository.SequenceRepository, prefix, category string) string {
	n, err := seqRepo.Next(category)
	if err != nil {
		a.log.Warn().Err(err).
			Str("category", category).
			Msg("contador de secuencia no disponible, usando consecutivo de respaldo")
		n = 1
	}
	return FormatID(prefix, n)
}

// FormatID formatea un valor de contador como consecutivo legible.
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}
