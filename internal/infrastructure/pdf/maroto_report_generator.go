// Package pdf implementa la exportación PDF del reporte de stock bajo
// (dashboard de reorden) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stock-alerts/internal/application/alerts"
	"github.com/tu-usuario/stock-alerts/internal/application/dto"
	"github.com/tu-usuario/stock-alerts/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ alerts.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockPDF(
	_ context.Context,
	company *entity.Company,
	report *dto.LowStockReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, alert := range report.Alerts {
		m.AddRows(alertRow(alert))
	}
	if report.Total == 0 {
		m.AddRows(row.New(8).Add(
			text.NewCol(12, "Sin alertas: ningún producto activo está por debajo de su umbral.",
				props.Text{Size: 9, Style: fontstyle.Italic, Color: colorGray}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de alertas: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(company *entity.Company, report *dto.LowStockReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(company.Name, props.Text{Size: 13, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Alertas de stock bajo", props.Text{Size: 9, Top: 6, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02"), props.Text{Size: 9, Align: align.Right}),
			text.New(fmt.Sprintf("Total: %d", report.Total), props.Text{Size: 9, Top: 5, Align: align.Right, Style: fontstyle.Bold}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(2, "SKU", bold),
		text.NewCol(3, "Producto", bold),
		text.NewCol(2, "Bodega", bold),
		text.NewCol(1, "Stock", bold),
		text.NewCol(1, "Umbral", bold),
		text.NewCol(1, "Días", bold),
		text.NewCol(2, "Proveedor", bold),
	)
}

func alertRow(alert dto.LowStockAlertDTO) core.Row {
	cell := props.Text{Size: 8}
	days := "-"
	if alert.DaysUntilStockout != nil {
		days = fmt.Sprintf("%d", *alert.DaysUntilStockout)
	}
	supplier := "-"
	if alert.Supplier != nil {
		supplier = alert.Supplier.Name
	}
	return row.New(6).Add(
		text.NewCol(2, alert.SKU, cell),
		text.NewCol(3, alert.ProductName, cell),
		text.NewCol(2, alert.WarehouseName, cell),
		text.NewCol(1, fmt.Sprintf("%d", alert.CurrentStock), cell),
		text.NewCol(1, fmt.Sprintf("%d", alert.Threshold), cell),
		text.NewCol(1, days, cell),
		text.NewCol(2, supplier, cell),
	)
}
