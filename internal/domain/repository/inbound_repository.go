package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InboundMovementRepository puerto de persistencia del log de entradas (append-only).
type InboundMovementRepository interface {
	// Create persiste un movimiento de entrada. Los movimientos nunca se mutan ni se borran.
	Create(m *entity.InboundMovement) error
	// ListByProduct devuelve todas las entradas de un producto (para el rescan de agregación).
	ListByProduct(ctx context.Context, productName string) ([]entity.InboundMovement, error)
}
