package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. fakeTxRunner toma un snapshot del
// estado antes de ejecutar fn y lo restaura si fn falla, emulando el rollback
// de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]string // sku → id
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}, bySKU: map[string]string{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.bySKU[p.SKU] = p.ID
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	id, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *fakeProductRepo) SetBundleFlag(id string, isBundle bool) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsBundle = isBundle
	return nil
}

func (r *fakeProductRepo) snapshot() (map[string]*entity.Product, map[string]string) {
	byID := map[string]*entity.Product{}
	for k, v := range r.byID {
		cp := *v
		byID[k] = &cp
	}
	bySKU := map[string]string{}
	for k, v := range r.bySKU {
		bySKU[k] = v
	}
	return byID, bySKU
}

type invKey struct{ productID, warehouseID string }

type fakeInventoryRepo struct {
	records map[invKey]*entity.InventoryRecord
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: map[invKey]*entity.InventoryRecord{}}
}

func (r *fakeInventoryRepo) Create(rec *entity.InventoryRecord) error {
	k := invKey{rec.ProductID, rec.WarehouseID}
	if _, ok := r.records[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *rec
	r.records[k] = &cp
	return nil
}

func (r *fakeInventoryRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	rec, ok := r.records[invKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeInventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeInventoryRepo) UpdateQuantity(productID, warehouseID string, quantity int64, updatedAt time.Time) error {
	rec, ok := r.records[invKey{productID, warehouseID}]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Quantity = quantity
	rec.UpdatedAt = updatedAt
	return nil
}

func (r *fakeInventoryRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]repository.WarehouseStockRow, error) {
	var out []repository.WarehouseStockRow
	for k, rec := range r.records {
		if k.warehouseID == warehouseID {
			out = append(out, repository.WarehouseStockRow{ProductID: rec.ProductID, Quantity: rec.Quantity})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *fakeInventoryRepo) snapshot() map[invKey]*entity.InventoryRecord {
	cp := map[invKey]*entity.InventoryRecord{}
	for k, v := range r.records {
		rec := *v
		cp[k] = &rec
	}
	return cp
}

type fakeHistoryRepo struct {
	entries []*entity.InventoryHistoryEntry
}

func newFakeHistoryRepo() *fakeHistoryRepo { return &fakeHistoryRepo{} }

func (r *fakeHistoryRepo) Create(e *entity.InventoryHistoryEntry) error {
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByProductAndWarehouse(productID, warehouseID string, limit, offset int) ([]*entity.InventoryHistoryEntry, error) {
	var out []*entity.InventoryHistoryEntry
	for _, e := range r.entries {
		if e.ProductID == productID && e.WarehouseID == warehouseID {
			cp := *e
			out = append(out, &cp)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeHistoryRepo) snapshot() []*entity.InventoryHistoryEntry {
	cp := make([]*entity.InventoryHistoryEntry, len(r.entries))
	for i, e := range r.entries {
		ecp := *e
		cp[i] = &ecp
	}
	return cp
}

type fakeWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	return r.AllByCompany(companyID)
}

func (r *fakeWarehouseRepo) AllByCompany(companyID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.byID {
		if w.CompanyID == companyID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type fakeBundleRepo struct {
	items map[string][]*entity.BundleItem // bundleID → hijos
}

func newFakeBundleRepo() *fakeBundleRepo {
	return &fakeBundleRepo{items: map[string][]*entity.BundleItem{}}
}

func (r *fakeBundleRepo) AddItem(item *entity.BundleItem) error {
	for _, existing := range r.items[item.BundleID] {
		if existing.ChildID == item.ChildID {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	r.items[item.BundleID] = append(r.items[item.BundleID], &cp)
	return nil
}

func (r *fakeBundleRepo) ListChildren(bundleID string) ([]*entity.BundleItem, error) {
	var out []*entity.BundleItem
	for _, item := range r.items[bundleID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner ejecuta fn contra los fakes compartidos y restaura el estado
// previo si fn devuelve error (rollback).
type fakeTxRunner struct {
	productRepo   *fakeProductRepo
	inventoryRepo *fakeInventoryRepo
	historyRepo   *fakeHistoryRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
) error) error {
	prodByID, prodBySKU := tx.productRepo.snapshot()
	invSnap := tx.inventoryRepo.snapshot()
	histSnap := tx.historyRepo.snapshot()

	if err := fn(tx.productRepo, tx.inventoryRepo, tx.historyRepo); err != nil {
		tx.productRepo.byID = prodByID
		tx.productRepo.bySKU = prodBySKU
		tx.inventoryRepo.records = invSnap
		tx.historyRepo.entries = histSnap
		return err
	}
	return nil
}
