package alerts

import (
	"context"

	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts/internal/domain/repository"
)

// ReportGenerator genera la representación PDF del reporte de stock bajo.
type ReportGenerator interface {
	GenerateLowStockPDF(ctx context.Context, company *entity.Company, report *dto.LowStockReportDTO) ([]byte, error)
}

// ReportUseCase exporta el reporte de alertas como PDF para el dashboard de reorden.
type ReportUseCase struct {
	companyRepo repository.CompanyRepository
	lowStock    *LowStockUseCase
	generator   ReportGenerator
}

// NewReportUseCase construye el caso de uso de exportación.
func NewReportUseCase(companyRepo repository.CompanyRepository, lowStock *LowStockUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{companyRepo: companyRepo, lowStock: lowStock, generator: generator}
}

// GeneratePDF calcula las alertas y renderiza el PDF.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.lowStock.Compute(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockPDF(ctx, company, report)
}
