package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL.
// Cada valor es una fila (set_name, value, position); position preserva el orden de inserción.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// List devuelve los valores del conjunto en orden de inserción.
func (r *CatalogRepo) List(ctx context.Context, setName string) ([]string, error) {
	query := `
		SELECT value FROM catalog_values
		WHERE set_name = $1
		ORDER BY position`
	rows, err := r.q.Query(ctx, query, setName)
	if err != nil {
		return nil, fmt.Errorf("list catalog %s: %w", setName, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("list catalog %s scan: %w", setName, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Add agrega un valor al final del conjunto. La comparación de duplicados es
// exacta (constraint único sobre set_name, value).
func (r *CatalogRepo) Add(ctx context.Context, setName, value string) error {
	query := `
		INSERT INTO catalog_values (set_name, value, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM catalog_values WHERE set_name = $1))`
	_, err := r.q.Exec(ctx, query, setName, value)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("add catalog value: %w", err)
	}
	return nil
}

// Remove elimina un valor. Las posiciones restantes no se recompactan:
// el orden relativo de los supervivientes no cambia.
func (r *CatalogRepo) Remove(ctx context.Context, setName, value string) error {
	query := `DELETE FROM catalog_values WHERE set_name = $1 AND value = $2`
	tag, err := r.q.Exec(ctx, query, setName, value)
	if err != nil {
		return fmt.Errorf("remove catalog value: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
