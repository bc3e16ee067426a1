package repository

import "context"

// CatalogRepository puerto de persistencia del catálogo maestro.
// Los valores de cada conjunto se conservan en orden de inserción.
type CatalogRepository interface {
	// List devuelve la secuencia ordenada de valores de un conjunto.
	List(ctx context.Context, setName string) ([]string, error)
	// Add agrega un valor al final del conjunto. Retorna domain.ErrDuplicate si ya existe.
	Add(ctx context.Context, setName, value string) error
	// Remove elimina un valor del conjunto. Retorna domain.ErrNotFound si no existe.
	Remove(ctx context.Context, setName, value string) error
}
