package usecase

import (
	"time"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// ThresholdUseCase administra el mapa tipo de producto → umbral de stock bajo.
// El motor de alertas exige mapeo explícito: aquí no hay defaults de código.
type ThresholdUseCase struct {
	repo repository.ThresholdRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(repo repository.ThresholdRepository) *ThresholdUseCase {
	return &ThresholdUseCase{repo: repo}
}

// Upsert crea o reemplaza el umbral de un tipo.
func (uc *ThresholdUseCase) Upsert(in dto.UpsertThresholdRequest) error {
	if in.ProductType == "" || in.Threshold < 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(&entity.ProductThreshold{
		ProductType: in.ProductType,
		Threshold:   in.Threshold,
		UpdatedAt:   time.Now(),
	})
}

// All devuelve el mapa completo de umbrales.
func (uc *ThresholdUseCase) All() (map[string]int64, error) {
	return uc.repo.All()
}
