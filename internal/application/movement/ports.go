package movement

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el consecutivo, el registro del
// movimiento y la actualización del stock se confirmen o se reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inboundRepo repository.InboundMovementRepository,
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
