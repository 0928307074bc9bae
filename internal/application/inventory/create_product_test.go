package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
)

const (
	companyA    = "company-a"
	companyB    = "company-b"
	warehouseA1 = "warehouse-a1"
)

func ptrInt64(v int64) *int64 { return &v }

type createProductEnv struct {
	products  *fakeProductRepo
	inventory *fakeInventoryRepo
	history   *fakeHistoryRepo
	uc        *inventory.CreateProductUseCase
}

func newCreateProductEnv(t *testing.T) *createProductEnv {
	t.Helper()
	products := newFakeProductRepo()
	invRepo := newFakeInventoryRepo()
	history := newFakeHistoryRepo()
	warehouses := newFakeWarehouseRepo()
	require.NoError(t, warehouses.Create(&entity.Warehouse{
		ID: warehouseA1, CompanyID: companyA, Name: "Bodega Central", CreatedAt: time.Now(),
	}))
	tx := &fakeTxRunner{productRepo: products, inventoryRepo: invRepo, historyRepo: history}
	return &createProductEnv{
		products:  products,
		inventory: invRepo,
		history:   history,
		uc:        inventory.NewCreateProductUseCase(tx, warehouses),
	}
}

func validRequest() dto.CreateProductWithStockRequest {
	return dto.CreateProductWithStockRequest{
		Name:            "Tornillo 3mm",
		SKU:             "TOR-3MM",
		Price:           "0.35",
		ProductType:     "ferreteria",
		WarehouseID:     warehouseA1,
		InitialQuantity: ptrInt64(100),
	}
}

func TestCreateWithStock_CreaProductoInventarioEHistorial(t *testing.T) {
	env := newCreateProductEnv(t)

	out, err := env.uc.CreateWithStock(context.Background(), companyA, validRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ProductID)
	assert.Equal(t, "created", out.Status)

	p, err := env.products.GetBySKU("TOR-3MM")
	require.NoError(t, err)
	require.NotNil(t, p, "el producto debe quedar persistido")
	assert.Equal(t, companyA, p.CompanyID)

	rec, err := env.inventory.Get(out.ProductID, warehouseA1)
	require.NoError(t, err)
	require.NotNil(t, rec, "el registro de inventario debe quedar persistido")
	assert.Equal(t, int64(100), rec.Quantity)

	entries, err := env.history.ListByProductAndWarehouse(out.ProductID, warehouseA1, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1, "debe quedar exactamente una entrada de historial")
	assert.Equal(t, int64(0), entries[0].OldQuantity)
	assert.Equal(t, int64(100), entries[0].NewQuantity)
	assert.Equal(t, entity.ReasonInitialStock, entries[0].Reason)
}

func TestCreateWithStock_SinCantidadInicial_UsaCero(t *testing.T) {
	env := newCreateProductEnv(t)
	in := validRequest()
	in.InitialQuantity = nil

	out, err := env.uc.CreateWithStock(context.Background(), companyA, in)
	require.NoError(t, err)

	rec, err := env.inventory.Get(out.ProductID, warehouseA1)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(0), rec.Quantity)
}

func TestCreateWithStock_SKUDuplicado_RollbackCompleto(t *testing.T) {
	env := newCreateProductEnv(t)

	_, err := env.uc.CreateWithStock(context.Background(), companyA, validRequest())
	require.NoError(t, err)

	// Mismo SKU, distinto nombre: la transacción completa debe revertirse.
	in := validRequest()
	in.Name = "Tornillo 3mm (retry)"
	_, err = env.uc.CreateWithStock(context.Background(), companyA, in)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, env.products.byID, 1, "solo debe existir el producto original")
	assert.Len(t, env.inventory.records, 1, "solo el inventario original")
	assert.Len(t, env.history.entries, 1, "solo la entrada de historial original")
}

func TestCreateWithStock_ValidacionFallaAntesDeEscribir(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductWithStockRequest)
	}{
		{"sin nombre", func(in *dto.CreateProductWithStockRequest) { in.Name = "" }},
		{"sin sku", func(in *dto.CreateProductWithStockRequest) { in.SKU = "" }},
		{"sin bodega", func(in *dto.CreateProductWithStockRequest) { in.WarehouseID = "" }},
		{"precio no numérico", func(in *dto.CreateProductWithStockRequest) { in.Price = "abc" }},
		{"precio negativo", func(in *dto.CreateProductWithStockRequest) { in.Price = "-1.00" }},
		{"cantidad inicial negativa", func(in *dto.CreateProductWithStockRequest) { in.InitialQuantity = ptrInt64(-5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newCreateProductEnv(t)
			in := validRequest()
			tc.mutate(&in)

			_, err := env.uc.CreateWithStock(context.Background(), companyA, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, env.products.byID, "no debe tocarse el almacén")
			assert.Empty(t, env.inventory.records)
			assert.Empty(t, env.history.entries)
		})
	}
}

func TestCreateWithStock_BodegaInexistente(t *testing.T) {
	env := newCreateProductEnv(t)
	in := validRequest()
	in.WarehouseID = "no-existe"

	_, err := env.uc.CreateWithStock(context.Background(), companyA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.products.byID)
}

func TestCreateWithStock_BodegaDeOtraEmpresa_Forbidden(t *testing.T) {
	env := newCreateProductEnv(t)

	_, err := env.uc.CreateWithStock(context.Background(), companyB, validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, env.products.byID)
}

func TestCreateWithStock_PrecioConservaPrecision(t *testing.T) {
	env := newCreateProductEnv(t)
	in := validRequest()
	in.Price = "19.99"

	out, err := env.uc.CreateWithStock(context.Background(), companyA, in)
	require.NoError(t, err)

	p, err := env.products.GetByID(out.ProductID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "19.99", p.Price.String())
}
