package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia de órdenes de salida.
// Solo Status y UpdatedAt son mutables (vía UpdateStatus); el resto del registro es inmutable.
type OrderRepository interface {
	Create(o *entity.OutboundOrder) error
	// GetByID devuelve la orden o (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.OutboundOrder, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	// ListByProduct devuelve todas las órdenes de un producto (para el rescan de agregación).
	ListByProduct(ctx context.Context, productName string) ([]entity.OutboundOrder, error)
	// List devuelve todas las órdenes ordenadas por fecha de creación descendente.
	List(ctx context.Context) ([]entity.OutboundOrder, error)
}
