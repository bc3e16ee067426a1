// Package pdf genera la versión imprimible del resumen de ingresos por cuenta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de ingresos + filtros aplicados             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cuenta | Productos | Costo etiquetas | Costo 3PL     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: sumas generales                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera el PDF del resumen de ingresos usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRevenueReport genera el PDF y devuelve sus bytes.
// accountFilter y monthFilter se imprimen en el encabezado ("" = sin filtro).
func (g *MarotoReportGenerator) GenerateRevenueReport(summary *dto.RevenueSummaryDTO, accountFilter, monthFilter string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de ingresos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(accountFilter, monthFilter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range summary.Rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y filtros + fecha de generación (der).
func headerRow(accountFilter, monthFilter string) core.Row {
	if accountFilter == "" {
		accountFilter = "todas las cuentas"
	}
	if monthFilter == "" {
		monthFilter = "todos los meses"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Resumen de ingresos por cuenta", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Filtros: "+accountFilter+" / mes "+monthFilter, props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(8).Add(
		col.New(5).Add(text.New("Cuenta", header)),
		col.New(2).Add(text.New("Productos", headerRight)),
		col.New(2).Add(text.New("Etiquetas", headerRight)),
		col.New(3).Add(text.New("Costo 3PL", headerRight)),
	)
}

func tableDetailRow(r dto.RevenueRowDTO) core.Row {
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		col.New(5).Add(text.New(r.AccountName, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.TotalProducts), cellRight)),
		col.New(2).Add(text.New("$"+r.LabelCost.StringFixed(2), cellRight)),
		col.New(3).Add(text.New("$"+r.ThreePLCost.StringFixed(2), cellRight)),
	)
}

func totalsRow(summary *dto.RevenueSummaryDTO) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}
	return row.New(8).Add(
		col.New(5).Add(text.New("TOTALES", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", summary.TotalProducts), bold)),
		col.New(2).Add(text.New("$"+summary.TotalLabelCost.StringFixed(2), bold)),
		col.New(3).Add(text.New("$"+summary.TotalThreePLCost.StringFixed(2), bold)),
	)
}
