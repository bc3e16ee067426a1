// Package catalog implementa el catálogo maestro: las listas curadas de
// proveedores, productos, ubicaciones y cuentas que pueblan los selectores y
// validan las referencias de los movimientos.
package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase casos de uso del catálogo maestro.
type UseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogRepo repository.CatalogRepository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo}
}

// ListValues devuelve la secuencia ordenada de valores del conjunto.
func (uc *UseCase) ListValues(ctx context.Context, setName string) (*dto.CatalogSnapshotResponse, error) {
	if !entity.IsCatalogSet(setName) {
		return nil, domain.ErrNotFound
	}
	values, err := uc.catalogRepo.List(ctx, setName)
	if err != nil {
		return nil, err
	}
	return &dto.CatalogSnapshotResponse{Set: setName, Values: values}, nil
}

// AddValue agrega un valor al conjunto. Retorna ErrDuplicate si ya existe
// (comparación exacta, sensible a mayúsculas). Tras la mutación recarga el
// conjunto completo y devuelve el snapshot fresco.
func (uc *UseCase) AddValue(ctx context.Context, setName, value string) (*dto.CatalogSnapshotResponse, error) {
	if !entity.IsCatalogSet(setName) {
		return nil, domain.ErrNotFound
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.catalogRepo.Add(ctx, setName, value); err != nil {
		return nil, err
	}
	return uc.ListValues(ctx, setName)
}

// RemoveValue elimina un valor del conjunto. El caller debe haber obtenido la
// confirmación explícita del usuario (confirmed); sin ella la operación se
// rechaza. Retorna ErrNotFound si el valor no existe. El orden relativo de los
// valores restantes no cambia. Devuelve el snapshot recargado.
func (uc *UseCase) RemoveValue(ctx context.Context, setName, value string, confirmed bool) (*dto.CatalogSnapshotResponse, error) {
	if !entity.IsCatalogSet(setName) {
		return nil, domain.ErrNotFound
	}
	if !confirmed {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.catalogRepo.Remove(ctx, setName, value); err != nil {
		return nil, err
	}
	return uc.ListValues(ctx, setName)
}
