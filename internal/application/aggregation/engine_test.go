package aggregation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/aggregation"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del historial
// ──────────────────────────────────────────────────────────────────────────────

type fakeInboundRepo struct {
	movements []entity.InboundMovement
}

func (r *fakeInboundRepo) Create(m *entity.InboundMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}
func (r *fakeInboundRepo) ListByProduct(_ context.Context, product string) ([]entity.InboundMovement, error) {
	var out []entity.InboundMovement
	for _, m := range r.movements {
		if m.ProductName == product {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []entity.OutboundOrder
}

func (r *fakeOrderRepo) Create(o *entity.OutboundOrder) error {
	r.orders = append(r.orders, *o)
	return nil
}
func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.OutboundOrder, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _, _ string, _ time.Time) error { return nil }
func (r *fakeOrderRepo) ListByProduct(_ context.Context, product string) ([]entity.OutboundOrder, error) {
	var out []entity.OutboundOrder
	for _, o := range r.orders {
		if o.ProductName == product {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeOrderRepo) List(_ context.Context) ([]entity.OutboundOrder, error) {
	return append([]entity.OutboundOrder(nil), r.orders...), nil
}

type fakeStockRepo struct {
	records map[string]*entity.StockRecord
}

func (r *fakeStockRepo) key(product, location string) string { return product + "|" + location }
func (r *fakeStockRepo) Get(product, location string) (*entity.StockRecord, error) {
	rec, ok := r.records[r.key(product, location)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}
func (r *fakeStockRepo) GetForUpdate(product, location string) (*entity.StockRecord, error) {
	return r.Get(product, location)
}
func (r *fakeStockRepo) Upsert(rec *entity.StockRecord) error {
	cp := *rec
	r.records[r.key(rec.ProductName, rec.Location)] = &cp
	return nil
}

func addInbound(r *fakeInboundRepo, product, location string, qty int64) {
	r.movements = append(r.movements, entity.InboundMovement{
		ProductName:      product,
		DispatchLocation: location,
		QuantityReceived: qty,
		CreatedAt:        time.Now(),
	})
}

func addOrder(r *fakeOrderRepo, account, product, location string, qty int64, label, threePL string, createdAt time.Time) {
	r.orders = append(r.orders, entity.OutboundOrder{
		AccountName:     account,
		ProductName:     product,
		StorageLocation: location,
		Quantity:        qty,
		Status:          entity.StatusOrderPending,
		LabelCost:       decimal.RequireFromString(label),
		ThreePLCost:     decimal.RequireFromString(threePL),
		CreatedAt:       createdAt,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeAvailability
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeAvailability_EntradasMenosSalidas(t *testing.T) {
	inboundRepo := &fakeInboundRepo{}
	orderRepo := &fakeOrderRepo{}
	addInbound(inboundRepo, "Caja Grande", "Bodega A", 10)
	addInbound(inboundRepo, "Caja Grande", "Bodega A", 5)
	addInbound(inboundRepo, "Caja Grande", "Bodega B", 7) // otra ubicación, no cuenta
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "Bodega A", 4, "0", "0", time.Now())

	e := aggregation.NewEngine(inboundRepo, orderRepo)
	got, err := e.ComputeAvailability(context.Background(), "Caja Grande", "Bodega A")
	require.NoError(t, err)

	assert.Equal(t, int64(15), got.InboundTotal)
	assert.Equal(t, int64(4), got.OutboundTotal)
	assert.Equal(t, int64(11), got.SignedQuantity)
	assert.Equal(t, int64(11), got.AvailableQuantity)
}

// Una orden sin ubicación cuenta contra todas las ubicaciones del producto.
func TestComputeAvailability_OrdenSinUbicacionCuentaContraTodas(t *testing.T) {
	inboundRepo := &fakeInboundRepo{}
	orderRepo := &fakeOrderRepo{}
	addInbound(inboundRepo, "Caja Grande", "Bodega A", 10)
	addInbound(inboundRepo, "Caja Grande", "Bodega B", 10)
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 3, "0", "0", time.Now())

	e := aggregation.NewEngine(inboundRepo, orderRepo)
	ctx := context.Background()

	gotA, err := e.ComputeAvailability(ctx, "Caja Grande", "Bodega A")
	require.NoError(t, err)
	gotB, err := e.ComputeAvailability(ctx, "Caja Grande", "Bodega B")
	require.NoError(t, err)

	assert.Equal(t, int64(7), gotA.AvailableQuantity, "la orden sin ubicación descuenta en Bodega A")
	assert.Equal(t, int64(7), gotB.AvailableQuantity, "la orden sin ubicación descuenta en Bodega B")
}

// El subtotal con signo puede ser negativo; la cifra mostrada se recorta en cero.
func TestComputeAvailability_NegativoRecortadoEnCero(t *testing.T) {
	inboundRepo := &fakeInboundRepo{}
	orderRepo := &fakeOrderRepo{}
	addInbound(inboundRepo, "Caja Grande", "Bodega A", 3)
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "Bodega A", 10, "0", "0", time.Now())

	e := aggregation.NewEngine(inboundRepo, orderRepo)
	got, err := e.ComputeAvailability(context.Background(), "Caja Grande", "Bodega A")
	require.NoError(t, err)

	assert.Equal(t, int64(-7), got.SignedQuantity)
	assert.Equal(t, int64(0), got.AvailableQuantity)
}

func TestComputeAvailability_ProductoSinHistorial(t *testing.T) {
	e := aggregation.NewEngine(&fakeInboundRepo{}, &fakeOrderRepo{})
	got, err := e.ComputeAvailability(context.Background(), "Caja Fantasma", "Bodega A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.AvailableQuantity)
}

// Para un historial donde toda salida trae ubicación, el rescan completo y la
// proyección incremental del ledger deben converger a la misma cifra.
func TestComputeAvailability_ConvergeConElLedger(t *testing.T) {
	inboundRepo := &fakeInboundRepo{}
	orderRepo := &fakeOrderRepo{}
	stockRepo := &fakeStockRepo{records: make(map[string]*entity.StockRecord)}
	l := ledger.New(logger.Nop())
	now := time.Now()

	type step struct {
		inbound  bool
		location string
		qty      int64
	}
	history := []step{
		{true, "Bodega A", 10},
		{true, "Bodega B", 4},
		{false, "Bodega A", 3},
		{true, "Bodega A", 2},
		{false, "Bodega A", 6},
		{false, "Bodega B", 1},
	}
	for _, s := range history {
		if s.inbound {
			addInbound(inboundRepo, "Caja Grande", s.location, s.qty)
			require.NoError(t, l.ApplyInbound(stockRepo, "Caja Grande", s.location, s.qty, now))
		} else {
			addOrder(orderRepo, "Cuenta Norte", "Caja Grande", s.location, s.qty, "0", "0", now)
			require.NoError(t, l.ApplyOutbound(stockRepo, "Caja Grande", s.location, s.qty, now))
		}
	}

	e := aggregation.NewEngine(inboundRepo, orderRepo)
	for _, location := range []string{"Bodega A", "Bodega B"} {
		rescan, err := e.ComputeAvailability(context.Background(), "Caja Grande", location)
		require.NoError(t, err)
		rec, err := stockRepo.Get("Caja Grande", location)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, rec.AvailableQuantity, rescan.AvailableQuantity,
			"rescan y ledger deben coincidir en %s", location)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeRevenueSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeRevenueSummary_AgrupaPorCuenta(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	now := time.Now()
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 2, "1.50", "3.00", now)
	addOrder(orderRepo, "Cuenta Sur", "Caja Chica", "", 1, "0.75", "2.00", now)
	addOrder(orderRepo, "Cuenta Norte", "Caja Chica", "", 3, "2.25", "1.00", now)

	e := aggregation.NewEngine(&fakeInboundRepo{}, orderRepo)
	got, err := e.ComputeRevenueSummary(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, got.Rows, 2)
	// Orden de primera aparición en el historial
	assert.Equal(t, "Cuenta Norte", got.Rows[0].AccountName)
	assert.Equal(t, "Cuenta Sur", got.Rows[1].AccountName)

	assert.Equal(t, int64(5), got.Rows[0].TotalProducts)
	assert.True(t, got.Rows[0].LabelCost.Equal(decimal.RequireFromString("3.75")),
		"label de Cuenta Norte: 1.50 + 2.25")
	assert.True(t, got.Rows[0].ThreePLCost.Equal(decimal.RequireFromString("4.00")))

	assert.Equal(t, int64(6), got.TotalProducts)
	assert.True(t, got.TotalLabelCost.Equal(decimal.RequireFromString("4.50")))
	assert.True(t, got.TotalThreePLCost.Equal(decimal.RequireFromString("6.00")))
}

func TestComputeRevenueSummary_FiltroPorCuentaExacta(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	now := time.Now()
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 2, "1.00", "1.00", now)
	addOrder(orderRepo, "Cuenta Sur", "Caja Grande", "", 4, "1.00", "1.00", now)

	e := aggregation.NewEngine(&fakeInboundRepo{}, orderRepo)
	got, err := e.ComputeRevenueSummary(context.Background(), "Cuenta Sur", "")
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Cuenta Sur", got.Rows[0].AccountName)
	assert.Equal(t, int64(4), got.TotalProducts)
}

func TestComputeRevenueSummary_FiltroPorMes(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	march := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 2, "1.00", "1.00", march)
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 5, "1.00", "1.00", april)

	e := aggregation.NewEngine(&fakeInboundRepo{}, orderRepo)
	got, err := e.ComputeRevenueSummary(context.Background(), "", "03")
	require.NoError(t, err)

	assert.Equal(t, int64(2), got.TotalProducts, "solo las órdenes de marzo")

	// Un mes sin forma de dos dígitos no coincide con nada
	empty, err := e.ComputeRevenueSummary(context.Background(), "", "3")
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)
}

// La acumulación es exacta: sumas de centavos no pierden precisión, y el
// redondeo a 2 decimales ocurre solo en la respuesta.
func TestComputeRevenueSummary_AcumulacionExacta(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	now := time.Now()
	for i := 0; i < 10; i++ {
		addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 1, "0.1", "0.005", now)
	}

	e := aggregation.NewEngine(&fakeInboundRepo{}, orderRepo)
	got, err := e.ComputeRevenueSummary(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	assert.True(t, got.Rows[0].LabelCost.Equal(decimal.RequireFromString("1.00")),
		"10 × 0.1 debe dar exactamente 1.00")
	assert.True(t, got.Rows[0].ThreePLCost.Equal(decimal.RequireFromString("0.05")),
		"10 × 0.005 acumulado exacto y redondeado al final")
}

// Recalcular sobre el mismo historial produce el mismo resultado.
func TestComputeRevenueSummary_Idempotente(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	now := time.Now()
	addOrder(orderRepo, "Cuenta Norte", "Caja Grande", "", 2, "1.50", "3.00", now)
	addOrder(orderRepo, "Cuenta Sur", "Caja Chica", "", 1, "0.75", "2.00", now)

	e := aggregation.NewEngine(&fakeInboundRepo{}, orderRepo)
	first, err := e.ComputeRevenueSummary(context.Background(), "", "")
	require.NoError(t, err)
	second, err := e.ComputeRevenueSummary(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
