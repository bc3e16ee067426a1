package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InboundMovementRepository = (*InboundMovementRepo)(nil)

// InboundMovementRepo implementación del log de entradas sobre PostgreSQL (usable con pool o tx).
type InboundMovementRepo struct {
	q Querier
}

// NewInboundMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInboundMovementRepository(q Querier) *InboundMovementRepo {
	return &InboundMovementRepo{q: q}
}

// Create persiste un movimiento de entrada (append-only: nunca se actualiza ni se borra).
func (r *InboundMovementRepo) Create(m *entity.InboundMovement) error {
	query := `
		INSERT INTO inbound_movements
			(id, inbound_id, date_received, supplier_name, product_name, dispatch_location,
			 sku, quantity_received, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.InboundID, m.DateReceived, m.SupplierName, m.ProductName, m.DispatchLocation,
		m.SKU, m.QuantityReceived, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inbound movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve todas las entradas de un producto, más antiguas primero.
func (r *InboundMovementRepo) ListByProduct(ctx context.Context, productName string) ([]entity.InboundMovement, error) {
	query := `
		SELECT id, inbound_id, date_received, supplier_name, product_name, dispatch_location,
		       sku, quantity_received, notes, created_at, created_by
		FROM inbound_movements
		WHERE product_name = $1
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, productName)
	if err != nil {
		return nil, fmt.Errorf("list inbound movements: %w", err)
	}
	defer rows.Close()

	var movements []entity.InboundMovement
	for rows.Next() {
		var m entity.InboundMovement
		if err := rows.Scan(
			&m.ID, &m.InboundID, &m.DateReceived, &m.SupplierName, &m.ProductName, &m.DispatchLocation,
			&m.SKU, &m.QuantityReceived, &m.Notes, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("list inbound movements scan: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
