package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de CatalogRepository en memoria (orden de inserción preservado)
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	sets map[string][]string
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{sets: make(map[string][]string)}
}

func (r *fakeCatalogRepo) List(_ context.Context, setName string) ([]string, error) {
	return append([]string(nil), r.sets[setName]...), nil
}

func (r *fakeCatalogRepo) Add(_ context.Context, setName, value string) error {
	for _, v := range r.sets[setName] {
		if v == value {
			return domain.ErrDuplicate
		}
	}
	r.sets[setName] = append(r.sets[setName], value)
	return nil
}

func (r *fakeCatalogRepo) Remove(_ context.Context, setName, value string) error {
	values := r.sets[setName]
	for i, v := range values {
		if v == value {
			r.sets[setName] = append(values[:i], values[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddValue_AgregaAlFinal(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())
	ctx := context.Background()

	_, err := uc.AddValue(ctx, entity.CatalogProducts, "Caja Grande")
	require.NoError(t, err)
	snap, err := uc.AddValue(ctx, entity.CatalogProducts, "Caja Chica")
	require.NoError(t, err)

	assert.Equal(t, []string{"Caja Grande", "Caja Chica"}, snap.Values,
		"los valores deben conservarse en orden de inserción")
}

func TestAddValue_DuplicadoExactoRechazado(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())
	ctx := context.Background()

	_, err := uc.AddValue(ctx, entity.CatalogSuppliers, "Proveedor Uno")
	require.NoError(t, err)
	_, err = uc.AddValue(ctx, entity.CatalogSuppliers, "Proveedor Uno")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// La comparación es exacta: mismo texto con distinta capitalización no es duplicado.
func TestAddValue_SensibleAMayusculas(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())
	ctx := context.Background()

	_, err := uc.AddValue(ctx, entity.CatalogSuppliers, "proveedor uno")
	require.NoError(t, err)
	snap, err := uc.AddValue(ctx, entity.CatalogSuppliers, "Proveedor Uno")
	require.NoError(t, err)
	assert.Len(t, snap.Values, 2)
}

func TestAddValue_VacioRechazado(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())

	_, err := uc.AddValue(context.Background(), entity.CatalogProducts, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un valor en blanco no debe aceptarse")
}

func TestAddValue_ConjuntoDesconocido(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())

	_, err := uc.AddValue(context.Background(), "colores", "Rojo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar sin confirmación explícita se rechaza y no muta el conjunto.
func TestRemoveValue_RequiereConfirmacion(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())
	ctx := context.Background()

	_, err := uc.AddValue(ctx, entity.CatalogLocations, "Bodega A")
	require.NoError(t, err)

	_, err = uc.RemoveValue(ctx, entity.CatalogLocations, "Bodega A", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	snap, err := uc.ListValues(ctx, entity.CatalogLocations)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bodega A"}, snap.Values, "sin confirmación el valor debe permanecer")
}

// Eliminar un valor intermedio conserva el orden relativo del resto.
func TestRemoveValue_PreservaOrdenRelativo(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())
	ctx := context.Background()

	for _, v := range []string{"Bodega A", "Bodega B", "Bodega C"} {
		_, err := uc.AddValue(ctx, entity.CatalogLocations, v)
		require.NoError(t, err)
	}

	snap, err := uc.RemoveValue(ctx, entity.CatalogLocations, "Bodega B", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bodega A", "Bodega C"}, snap.Values)
}

func TestRemoveValue_NoExistente(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())

	_, err := uc.RemoveValue(context.Background(), entity.CatalogAccounts, "Cuenta X", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListValues_ConjuntoDesconocido(t *testing.T) {
	uc := catalog.NewUseCase(newFakeCatalogRepo())

	_, err := uc.ListValues(context.Background(), "colores")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
