package inventory

import (
	"time"

	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// maxBundleDepth acota el recorrido de alcanzabilidad; composiciones más
// profundas se rechazan como si fueran un ciclo.
const maxBundleDepth = 32

// BundleUseCase administra la composición de bundles con validación de
// aciclicidad al escribir: se rechaza el insert que crearía un ciclo.
type BundleUseCase struct {
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(productRepo repository.ProductRepository, bundleRepo repository.BundleRepository) *BundleUseCase {
	return &BundleUseCase{productRepo: productRepo, bundleRepo: bundleRepo}
}

// AddItem agrega un hijo al bundle. Ambos deben ser productos existentes de la
// empresa. Si desde el hijo se alcanza el bundle por la relación existente,
// agregar la arista crearía un ciclo → domain.ErrBundleCycle.
func (uc *BundleUseCase) AddItem(companyID, bundleID, childID string, quantity int64) error {
	if companyID == "" || bundleID == "" || childID == "" || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if bundleID == childID {
		return domain.ErrBundleCycle
	}

	bundle, err := uc.productRepo.GetByID(bundleID)
	if err != nil {
		return err
	}
	child, err := uc.productRepo.GetByID(childID)
	if err != nil {
		return err
	}
	if bundle == nil || child == nil {
		return domain.ErrNotFound
	}
	if bundle.CompanyID != companyID || child.CompanyID != companyID {
		return domain.ErrForbidden
	}

	reachable, err := uc.reaches(childID, bundleID)
	if err != nil {
		return err
	}
	if reachable {
		return domain.ErrBundleCycle
	}

	item := &entity.BundleItem{
		BundleID:  bundleID,
		ChildID:   childID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.bundleRepo.AddItem(item); err != nil {
		return err
	}
	if !bundle.IsBundle {
		return uc.productRepo.SetBundleFlag(bundleID, true)
	}
	return nil
}

// reaches hace BFS sobre la relación bundle → hijo partiendo de from,
// con profundidad acotada por maxBundleDepth.
func (uc *BundleUseCase) reaches(from, target string) (bool, error) {
	visited := map[string]bool{from: true}
	frontier := []string{from}
	for depth := 0; depth < maxBundleDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			children, err := uc.bundleRepo.ListChildren(id)
			if err != nil {
				return false, err
			}
			for _, c := range children {
				if c.ChildID == target {
					return true, nil
				}
				if !visited[c.ChildID] {
					visited[c.ChildID] = true
					next = append(next, c.ChildID)
				}
			}
		}
		frontier = next
	}
	// Frontera sin agotar al llegar al tope: tratar como ciclo potencial.
	if len(frontier) > 0 {
		return true, nil
	}
	return false, nil
}
