package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el registro de stock de (producto, ubicación) o (nil, nil) si no existe.
func (r *StockRepo) Get(productName, location string) (*entity.StockRecord, error) {
	query := `
		SELECT product_name, location, available_quantity, updated_at
		FROM stock_records WHERE product_name = $1 AND location = $2`
	return r.scanOne(query, productName, location, "get stock record")
}

// GetForUpdate obtiene el registro bloqueando la fila (SELECT FOR UPDATE) para
// cerrar la carrera read-modify-write entre escritores concurrentes.
func (r *StockRepo) GetForUpdate(productName, location string) (*entity.StockRecord, error) {
	query := `
		SELECT product_name, location, available_quantity, updated_at
		FROM stock_records WHERE product_name = $1 AND location = $2
		FOR UPDATE`
	return r.scanOne(query, productName, location, "get stock record for update")
}

// Upsert inserta o actualiza la cantidad disponible (por producto y ubicación).
func (r *StockRepo) Upsert(rec *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (product_name, location, available_quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_name, location)
		DO UPDATE SET available_quantity = EXCLUDED.available_quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, rec.ProductName, rec.Location, rec.AvailableQuantity, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(query, productName, location, op string) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, productName, location).Scan(
		&s.ProductName, &s.Location, &s.AvailableQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
