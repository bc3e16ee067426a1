// Package movement registra los hechos inmutables del inventario: entradas de
// mercancía y órdenes de salida. Valida contra el catálogo maestro, asigna el
// consecutivo y actualiza la proyección de stock, todo en una sola transacción.
package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/sequence"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// RecorderUseCase registra movimientos de entrada y órdenes de salida.
type RecorderUseCase struct {
	txRunner    TxRunner
	catalogRepo repository.CatalogRepository
	allocator   *sequence.Allocator
	ledger      *ledger.Ledger
}

// NewRecorderUseCase construye el caso de uso.
func NewRecorderUseCase(
	txRunner TxRunner,
	catalogRepo repository.CatalogRepository,
	allocator *sequence.Allocator,
	ldg *ledger.Ledger,
) *RecorderUseCase {
	return &RecorderUseCase{
		txRunner:    txRunner,
		catalogRepo: catalogRepo,
		allocator:   allocator,
		ledger:      ldg,
	}
}

// RecordInbound valida y persiste una entrada de mercancía y suma la cantidad
// al stock de (producto, ubicación) en la misma transacción.
func (uc *RecorderUseCase) RecordInbound(ctx context.Context, userID string, in dto.RecordInboundRequest) (*dto.RecordInboundResponse, error) {
	if in.SupplierName == "" || in.ProductName == "" || in.DispatchLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityReceived < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCatalogValue(ctx, entity.CatalogProducts, in.ProductName); err != nil {
		return nil, err
	}
	if err := uc.requireCatalogValue(ctx, entity.CatalogLocations, in.DispatchLocation); err != nil {
		return nil, err
	}
	if err := uc.requireCatalogValue(ctx, entity.CatalogSuppliers, in.SupplierName); err != nil {
		return nil, err
	}

	now := time.Now()
	dateReceived, err := parseDate(in.DateReceived, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var inboundID string
	err = uc.txRunner.Run(ctx, func(
		inboundRepo repository.InboundMovementRepository,
		_ repository.OrderRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		inboundID = uc.allocator.NextID(seqRepo, sequence.PrefixInbound, sequence.CategoryInbound)
		mov := &entity.InboundMovement{
			ID:               uuid.New().String(),
			InboundID:        inboundID,
			DateReceived:     dateReceived,
			SupplierName:     in.SupplierName,
			ProductName:      in.ProductName,
			DispatchLocation: in.DispatchLocation,
			SKU:              in.SKU,
			QuantityReceived: in.QuantityReceived,
			Notes:            in.Notes,
			CreatedAt:        now,
			CreatedBy:        userID,
		}
		if err := inboundRepo.Create(mov); err != nil {
			return err
		}
		return uc.ledger.ApplyInbound(stockRepo, in.ProductName, in.DispatchLocation, in.QuantityReceived, now)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordInboundResponse{InboundID: inboundID}, nil
}

// RecordOutbound valida y persiste una orden de salida en estado OrderPending.
// Si la orden trae ubicación, resta la cantidad del stock de ese par exacto en
// la misma transacción; una orden sin ubicación no toca el ledger incremental
// (el rescan de agregación la cuenta contra todas las ubicaciones).
func (uc *RecorderUseCase) RecordOutbound(ctx context.Context, userID string, in dto.RecordOutboundRequest) (*dto.RecordOutboundResponse, error) {
	if in.AccountName == "" || in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.LabelCost.LessThan(decimal.Zero) || in.ThreePLCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireCatalogValue(ctx, entity.CatalogProducts, in.ProductName); err != nil {
		return nil, err
	}
	if err := uc.requireCatalogValue(ctx, entity.CatalogAccounts, in.AccountName); err != nil {
		return nil, err
	}
	if in.StorageLocation != "" {
		if err := uc.requireCatalogValue(ctx, entity.CatalogLocations, in.StorageLocation); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	date, err := parseDate(in.Date, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var orderID string
	err = uc.txRunner.Run(ctx, func(
		_ repository.InboundMovementRepository,
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		orderID = uc.allocator.NextID(seqRepo, sequence.PrefixOutbound, sequence.CategoryOutbound)
		order := &entity.OutboundOrder{
			ID:              uuid.New().String(),
			OrderID:         orderID,
			Date:            date,
			AccountName:     in.AccountName,
			ProductName:     in.ProductName,
			StorageLocation: in.StorageLocation,
			Quantity:        in.Quantity,
			Status:          entity.StatusOrderPending,
			LabelCost:       in.LabelCost,
			ThreePLCost:     in.ThreePLCost,
			CreatedAt:       now,
			UpdatedAt:       now,
			CreatedBy:       userID,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if in.StorageLocation == "" {
			return nil
		}
		return uc.ledger.ApplyOutbound(stockRepo, in.ProductName, in.StorageLocation, in.Quantity, now)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordOutboundResponse{OrderID: orderID}, nil
}

// requireCatalogValue verifica que value esté registrado en el conjunto del catálogo.
func (uc *RecorderUseCase) requireCatalogValue(ctx context.Context, setName, value string) error {
	values, err := uc.catalogRepo.List(ctx, setName)
	if err != nil {
		return err
	}
	for _, v := range values {
		if v == value {
			return nil
		}
	}
	return domain.ErrNotFound
}

func parseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.Parse(dateLayout, s)
}
