// Package aggregation recalcula los resúmenes de solo lectura escaneando el
// historial completo de movimientos y órdenes. Es independiente del estado
// incremental del ledger: sirve de vía de conciliación, no de caché.
package aggregation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Engine motor de agregación. Solo lee; un fallo aborta el recálculo completo
// y no produce resultados parciales.
type Engine struct {
	inboundRepo repository.InboundMovementRepository
	orderRepo   repository.OrderRepository
}

// NewEngine construye el motor.
func NewEngine(inboundRepo repository.InboundMovementRepository, orderRepo repository.OrderRepository) *Engine {
	return &Engine{inboundRepo: inboundRepo, orderRepo: orderRepo}
}

// ComputeAvailability recalcula desde cero la disponibilidad de (producto, ubicación):
// suma de entradas con ese par exacto menos suma de salidas del producto cuya
// ubicación coincide o está vacía (una orden sin ubicación cuenta contra todas).
// Reporta el subtotal con signo y la cifra mostrada recortada en cero.
func (e *Engine) ComputeAvailability(ctx context.Context, productName, location string) (*dto.AvailabilityDTO, error) {
	inbound, err := e.inboundRepo.ListByProduct(ctx, productName)
	if err != nil {
		return nil, fmt.Errorf("aggregation: escanear entradas: %w", err)
	}
	orders, err := e.orderRepo.ListByProduct(ctx, productName)
	if err != nil {
		return nil, fmt.Errorf("aggregation: escanear órdenes: %w", err)
	}

	var inTotal, outTotal int64
	for _, m := range inbound {
		if m.DispatchLocation == location {
			inTotal += m.QuantityReceived
		}
	}
	for _, o := range orders {
		if o.StorageLocation == location || o.StorageLocation == "" {
			outTotal += o.Quantity
		}
	}

	signed := inTotal - outTotal
	available := signed
	if available < 0 {
		available = 0
	}
	return &dto.AvailabilityDTO{
		ProductName:       productName,
		Location:          location,
		InboundTotal:      inTotal,
		OutboundTotal:     outTotal,
		SignedQuantity:    signed,
		AvailableQuantity: available,
	}, nil
}

// ComputeRevenueSummary escanea las órdenes de salida y agrupa por cuenta.
// accountFilter: coincidencia exacta, "" = todas. monthFilter: igualdad de
// string contra el mes de dos dígitos del timestamp del registro, "" = todos.
// Los costos se acumulan como decimales exactos; el redondeo a 2 decimales
// ocurre solo al construir la respuesta, nunca durante la acumulación.
func (e *Engine) ComputeRevenueSummary(ctx context.Context, accountFilter, monthFilter string) (*dto.RevenueSummaryDTO, error) {
	orders, err := e.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregation: escanear órdenes: %w", err)
	}

	type accumulator struct {
		products int64
		label    decimal.Decimal
		threePL  decimal.Decimal
	}
	byAccount := make(map[string]*accumulator)
	var accountOrder []string

	for _, o := range orders {
		if accountFilter != "" && o.AccountName != accountFilter {
			continue
		}
		if monthFilter != "" && fmt.Sprintf("%02d", int(o.CreatedAt.Month())) != monthFilter {
			continue
		}
		acc, ok := byAccount[o.AccountName]
		if !ok {
			acc = &accumulator{label: decimal.Zero, threePL: decimal.Zero}
			byAccount[o.AccountName] = acc
			accountOrder = append(accountOrder, o.AccountName)
		}
		acc.products += o.Quantity
		acc.label = acc.label.Add(o.LabelCost)
		acc.threePL = acc.threePL.Add(o.ThreePLCost)
	}

	summary := &dto.RevenueSummaryDTO{
		Rows:             make([]dto.RevenueRowDTO, 0, len(accountOrder)),
		TotalLabelCost:   decimal.Zero,
		TotalThreePLCost: decimal.Zero,
	}
	totalLabel := decimal.Zero
	totalThreePL := decimal.Zero
	for _, name := range accountOrder {
		acc := byAccount[name]
		summary.Rows = append(summary.Rows, dto.RevenueRowDTO{
			AccountName:   name,
			TotalProducts: acc.products,
			LabelCost:     acc.label.Round(2),
			ThreePLCost:   acc.threePL.Round(2),
		})
		summary.TotalProducts += acc.products
		totalLabel = totalLabel.Add(acc.label)
		totalThreePL = totalThreePL.Add(acc.threePL)
	}
	summary.TotalLabelCost = totalLabel.Round(2)
	summary.TotalThreePLCost = totalThreePL.Round(2)
	return summary, nil
}
