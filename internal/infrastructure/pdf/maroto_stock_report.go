// Package pdf genera el reporte de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: N ítems · M con stock bajo · valor ingredientes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Tipo | Ubic. | Act. | Mín. | Falta | Valor | Estado │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/ports"
)

var _ ports.StockReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorError   = &props.Color{Red: 176, Green: 0, Blue: 32}
)

// MarotoReportGenerator implementa ports.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(ctx context.Context, report dto.StockReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.StockReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report dto.StockReportDTO) core.Row {
	summary := fmt.Sprintf("%d inventory items · %d at or below minimum stock · ingredient stock value $%s",
		len(report.Rows), report.LowStockCount, report.TotalValue)
	style := props.Text{Size: 9, Top: 2, Color: colorGray}
	if report.LowStockCount > 0 {
		style.Color = colorError
		style.Style = fontstyle.Bold
	}
	return row.New(9).Add(col.New(12).Add(text.New(summary, style)))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 3, align.Left),
		h("Type", 2, align.Left),
		h("Location", 1, align.Left),
		h("Current", 1, align.Right),
		h("Minimum", 1, align.Right),
		h("Shortfall", 1, align.Right),
		h("Value", 1, align.Right),
		h("Status", 2, align.Center),
	)
}

func tableRows(rows []dto.StockReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		status := props.Text{Size: 8, Align: align.Center, Top: 1}
		if r.Low {
			status.Style = fontstyle.Bold
			status.Color = colorError
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.ItemType, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.Location, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(r.CurrentStock, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.MinimumStock, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.Shortfall, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.Value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.Status, status)),
		))
	}
	return result
}
