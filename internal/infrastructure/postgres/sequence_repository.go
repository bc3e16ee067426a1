package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador monotónico por categoría sobre PostgreSQL.
// El incremento es un solo statement atómico; usado dentro de la tx que escribe
// el registro nuevo, contador y registro se confirman juntos.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador del contador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente valor del contador de la categoría.
func (r *SequenceRepo) Next(category string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (category, value)
		VALUES ($1, 1)
		ON CONFLICT (category)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, category).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", category, err)
	}
	return n, nil
}
