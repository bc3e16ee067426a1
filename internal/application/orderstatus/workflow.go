// Package orderstatus gestiona el campo de estado de las órdenes de salida.
// El conjunto de estados es una enumeración plana sin grafo de transiciones:
// cualquier estado conocido puede asignarse sobre cualquier otro. El cambio se
// prepara con SetStatus y solo se persiste con CommitStatus.
package orderstatus

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Workflow caso de uso del ciclo de estados.
// Los cambios preparados viven en memoria del proceso hasta el commit.
type Workflow struct {
	orderRepo repository.OrderRepository

	mu     sync.RWMutex
	staged map[string]string // orderID -> estado pendiente de commit
}

// NewWorkflow construye el workflow.
func NewWorkflow(orderRepo repository.OrderRepository) *Workflow {
	return &Workflow{
		orderRepo: orderRepo,
		staged:    make(map[string]string),
	}
}

// SetStatus prepara un cambio de estado para la orden. Rechaza estados fuera
// de la enumeración (ErrInvalidInput) y órdenes inexistentes (ErrNotFound).
// Un SetStatus posterior sobre la misma orden reemplaza el cambio preparado.
func (w *Workflow) SetStatus(ctx context.Context, orderID, newStatus string) error {
	if !entity.IsOrderStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	order, err := w.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	w.mu.Lock()
	w.staged[orderID] = newStatus
	w.mu.Unlock()
	return nil
}

// StagedStatus devuelve el cambio preparado para la orden, si existe.
func (w *Workflow) StagedStatus(orderID string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	status, ok := w.staged[orderID]
	return status, ok
}

// CommitStatus persiste el cambio preparado con su timestamp de actualización.
// Retorna ErrNoStagedChange si no hay nada preparado para la orden. El cambio
// preparado se descarta solo tras persistir con éxito.
func (w *Workflow) CommitStatus(ctx context.Context, orderID string) error {
	w.mu.RLock()
	status, ok := w.staged[orderID]
	w.mu.RUnlock()
	if !ok {
		return domain.ErrNoStagedChange
	}
	if err := w.orderRepo.UpdateStatus(ctx, orderID, status, time.Now()); err != nil {
		return err
	}
	w.mu.Lock()
	delete(w.staged, orderID)
	w.mu.Unlock()
	return nil
}
