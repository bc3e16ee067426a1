package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_id, date, account_name, product_name, storage_location,
	quantity, status, label_cost, three_pl_cost, created_at, updated_at, created_by`

// Create persiste una orden de salida.
func (r *OrderRepo) Create(o *entity.OutboundOrder) error {
	query := `
		INSERT INTO outbound_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.OrderID, o.Date, o.AccountName, o.ProductName, o.StorageLocation,
		o.Quantity, o.Status, o.LabelCost, o.ThreePLCost, o.CreatedAt, o.UpdatedAt, o.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert outbound order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por su ID o su consecutivo legible (OUT-NNN). (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.OutboundOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM outbound_orders WHERE id = $1 OR order_id = $1`
	var o entity.OutboundOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderID, &o.Date, &o.AccountName, &o.ProductName, &o.StorageLocation,
		&o.Quantity, &o.Status, &o.LabelCost, &o.ThreePLCost, &o.CreatedAt, &o.UpdatedAt, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outbound order: %w", err)
	}
	return &o, nil
}

// UpdateStatus persiste el nuevo estado y el timestamp de actualización.
// Solo Status y UpdatedAt son mutables en una orden.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	query := `
		UPDATE outbound_orders SET status = $2, updated_at = $3
		WHERE id = $1 OR order_id = $1`
	tag, err := r.q.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct devuelve todas las órdenes de un producto, más antiguas primero.
func (r *OrderRepo) ListByProduct(ctx context.Context, productName string) ([]entity.OutboundOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM outbound_orders
		WHERE product_name = $1
		ORDER BY created_at`
	return r.list(ctx, query, productName)
}

// List devuelve todas las órdenes, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]entity.OutboundOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM outbound_orders
		ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]entity.OutboundOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outbound orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.OutboundOrder
	for rows.Next() {
		var o entity.OutboundOrder
		if err := rows.Scan(
			&o.ID, &o.OrderID, &o.Date, &o.AccountName, &o.ProductName, &o.StorageLocation,
			&o.Quantity, &o.Status, &o.LabelCost, &o.ThreePLCost, &o.CreatedAt, &o.UpdatedAt, &o.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("list outbound orders scan: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
