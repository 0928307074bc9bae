package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del motor de alertas. Cada fake es un mapa en memoria con el contrato
// mínimo del puerto; salesByKey y delay permiten simular ventas y latencia.
// ──────────────────────────────────────────────────────────────────────────────

const testCompany = "company-1"

type alertsFixture struct {
	companies  map[string]*entity.Company
	warehouses []*entity.Warehouse
	stock      map[string][]repository.WarehouseStockRow // warehouseID → filas
	sales      map[string]int64                          // productID|warehouseID → unidades
	thresholds map[string]int64
	suppliers  map[string]*entity.Supplier // productID → primario
	salesDelay time.Duration
}

func newAlertsFixture() *alertsFixture {
	return &alertsFixture{
		companies:  map[string]*entity.Company{testCompany: {ID: testCompany, Name: "Acme"}},
		stock:      map[string][]repository.WarehouseStockRow{},
		sales:      map[string]int64{},
		thresholds: map[string]int64{},
		suppliers:  map[string]*entity.Supplier{},
	}
}

func (f *alertsFixture) addWarehouse(id, name string, createdAt time.Time) {
	f.warehouses = append(f.warehouses, &entity.Warehouse{
		ID: id, CompanyID: testCompany, Name: name, CreatedAt: createdAt,
	})
}

func (f *alertsFixture) addStock(warehouseID, productID, sku, productType string, qty int64) {
	f.stock[warehouseID] = append(f.stock[warehouseID], repository.WarehouseStockRow{
		ProductID: productID, ProductName: "Producto " + productID,
		SKU: sku, ProductType: productType, Quantity: qty,
	})
}

func (f *alertsFixture) setSales(productID, warehouseID string, sum int64) {
	f.sales[productID+"|"+warehouseID] = sum
}

func (f *alertsFixture) usecase(windowDays int) *alerts.LowStockUseCase {
	return alerts.NewLowStockUseCase(
		(*fxCompanyRepo)(f), (*fxWarehouseRepo)(f), (*fxInventoryRepo)(f),
		(*fxSalesRepo)(f), (*fxThresholdRepo)(f), (*fxSupplierRepo)(f),
		windowDays,
	)
}

type fxCompanyRepo alertsFixture

func (r *fxCompanyRepo) Create(*entity.Company) error { return nil }
func (r *fxCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fxCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fxWarehouseRepo alertsFixture

func (r *fxWarehouseRepo) Create(*entity.Warehouse) error            { return nil }
func (r *fxWarehouseRepo) GetByID(string) (*entity.Warehouse, error) { return nil, nil }
func (r *fxWarehouseRepo) ListByCompany(companyID string, _, _ int) ([]*entity.Warehouse, error) {
	return r.AllByCompany(companyID)
}
func (r *fxWarehouseRepo) AllByCompany(companyID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fxInventoryRepo alertsFixture

func (r *fxInventoryRepo) Create(*entity.InventoryRecord) error { return nil }
func (r *fxInventoryRepo) Get(string, string) (*entity.InventoryRecord, error) {
	return nil, nil
}
func (r *fxInventoryRepo) GetForUpdate(string, string) (*entity.InventoryRecord, error) {
	return nil, nil
}
func (r *fxInventoryRepo) UpdateQuantity(string, string, int64, time.Time) error { return nil }
func (r *fxInventoryRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]repository.WarehouseStockRow, error) {
	return r.stock[warehouseID], nil
}

type fxSalesRepo alertsFixture

func (r *fxSalesRepo) SumQuantitySold(ctx context.Context, productID, warehouseID string, _ time.Time) (int64, error) {
	if r.salesDelay > 0 {
		select {
		case <-time.After(r.salesDelay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return r.sales[productID+"|"+warehouseID], nil
}

type fxThresholdRepo alertsFixture

func (r *fxThresholdRepo) ThresholdForType(productType string) (*int64, error) {
	v, ok := r.thresholds[productType]
	if !ok {
		return nil, nil
	}
	return &v, nil
}
func (r *fxThresholdRepo) All() (map[string]int64, error) {
	cp := map[string]int64{}
	for k, v := range r.thresholds {
		cp[k] = v
	}
	return cp, nil
}
func (r *fxThresholdRepo) Upsert(*entity.ProductThreshold) error { return nil }

type fxSupplierRepo alertsFixture

func (r *fxSupplierRepo) Create(*entity.Supplier) error            { return nil }
func (r *fxSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }
func (r *fxSupplierRepo) List(int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fxSupplierRepo) Link(*entity.SupplierProduct) error { return nil }
func (r *fxSupplierRepo) PrimaryForProduct(_ context.Context, productID string) (*entity.Supplier, error) {
	s, ok := r.suppliers[productID]
	if !ok {
		return nil, nil
	}
	return s, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_EmpresaInexistente_NotFound(t *testing.T) {
	f := newAlertsFixture()
	_, err := f.usecase(30).Compute(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompute_EmpresaSinBodegas_ReporteVacio(t *testing.T) {
	f := newAlertsFixture()
	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Alerts, "la lista vacía debe serializar como [], no null")
	assert.Empty(t, out.Alerts)
}

func TestCompute_ProductoBajoUmbral_GeneraAlerta(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "bebidas", 5)
	f.setSales("p1", "w1", 60)
	f.thresholds["bebidas"] = 10
	f.suppliers["p1"] = &entity.Supplier{ID: "s1", Name: "Distribuidora Sur", Contact: "ventas@sur.example"}

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)

	alert := out.Alerts[0]
	assert.Equal(t, "p1", alert.ProductID)
	assert.Equal(t, "SKU-1", alert.SKU)
	assert.Equal(t, "w1", alert.WarehouseID)
	assert.Equal(t, int64(5), alert.CurrentStock)
	assert.Equal(t, int64(10), alert.Threshold)
	// 60 unidades en 30 días → 2/día; 5 unidades → 2 días.
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, 2, *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier)
	assert.Equal(t, "s1", alert.Supplier.ID)
	assert.Equal(t, "Distribuidora Sur", alert.Supplier.Name)
}

func TestCompute_SinVentasEnVentana_SeSalta(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "bebidas", 5)
	f.thresholds["bebidas"] = 10
	// sin ventas registradas: SKU muerto, alerta no accionable

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
}

func TestCompute_TipoSinUmbral_SeSalta(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "sin-umbral", 5)
	f.setSales("p1", "w1", 60)

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
}

func TestCompute_StockEnUmbral_NoAlerta(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "bebidas", 10)
	f.addStock("w1", "p2", "SKU-2", "bebidas", 11)
	f.setSales("p1", "w1", 60)
	f.setSales("p2", "w1", 60)
	f.thresholds["bebidas"] = 10

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total, "cantidad igual o mayor al umbral no alerta")
}

func TestCompute_SinProveedor_AlertaConSupplierNil(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "bebidas", 5)
	f.setSales("p1", "w1", 60)
	f.thresholds["bebidas"] = 10

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Nil(t, out.Alerts[0].Supplier, "producto sin proveedores alerta igual")
}

func TestCompute_OrdenEstable_BodegasPorCreacionProductosPorSKU(t *testing.T) {
	f := newAlertsFixture()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// La segunda bodega se registra primero en el slice pero se creó después.
	f.addWarehouse("w-old", "Antigua", base)
	f.addWarehouse("w-new", "Nueva", base.Add(time.Hour))
	f.thresholds["bebidas"] = 100

	// Filas por bodega ya vienen ordenadas por SKU desde el repo.
	f.addStock("w-new", "p3", "SKU-A", "bebidas", 1)
	f.addStock("w-old", "p1", "SKU-B", "bebidas", 1)
	f.addStock("w-old", "p2", "SKU-C", "bebidas", 1)
	for _, pair := range [][2]string{{"p1", "w-old"}, {"p2", "w-old"}, {"p3", "w-new"}} {
		f.setSales(pair[0], pair[1], 30)
	}

	uc := f.usecase(30)
	out, err := uc.Compute(context.Background(), testCompany)
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)

	var got []string
	for _, a := range out.Alerts {
		got = append(got, a.WarehouseID+"/"+a.SKU)
	}
	assert.Equal(t, []string{"w-old/SKU-B", "w-old/SKU-C", "w-new/SKU-A"}, got)

	// Idempotencia: mismo estado, mismo resultado en el mismo orden.
	again, err := uc.Compute(context.Background(), testCompany)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestCompute_ParalelismoPreservaOrden(t *testing.T) {
	f := newAlertsFixture()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.thresholds["bebidas"] = 100
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		f.addWarehouse("w-"+id, "Bodega "+id, base.Add(time.Duration(i)*time.Minute))
		f.addStock("w-"+id, "p-"+id, "SKU-"+id, "bebidas", 1)
		f.setSales("p-"+id, "w-"+id, 30)
	}
	f.salesDelay = 2 * time.Millisecond

	out, err := f.usecase(30).Compute(context.Background(), testCompany)
	require.NoError(t, err)
	require.Equal(t, 8, out.Total)
	for i, a := range out.Alerts {
		assert.Equal(t, "SKU-"+string(rune('a'+i)), a.SKU)
	}
}

func TestCompute_DeadlineVencido_Timeout(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		f.addStock("w1", "p-"+id, "SKU-"+id, "bebidas", 1)
		f.setSales("p-"+id, "w1", 30)
	}
	f.thresholds["bebidas"] = 100
	f.salesDelay = 20 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.usecase(30).Compute(ctx, testCompany)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestCompute_CompanyIDVacio_InvalidInput(t *testing.T) {
	f := newAlertsFixture()
	_, err := f.usecase(30).Compute(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_ContextoCancelado_Timeout(t *testing.T) {
	f := newAlertsFixture()
	f.addWarehouse("w1", "Central", time.Now())
	f.addStock("w1", "p1", "SKU-1", "bebidas", 1)
	f.setSales("p1", "w1", 30)
	f.thresholds["bebidas"] = 100

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// El llamador canceló: el cómputo quedó incompleto y no debe
	// presentarse como error interno.
	_, err := f.usecase(30).Compute(ctx, testCompany)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}
