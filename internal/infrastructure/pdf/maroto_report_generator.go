// Package pdf genera la versión imprimible del reporte de ventas con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sales Report        │  Rango + fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMARY: Metric | Description | Value (secciones en oscuro) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROFIT ANALYSIS: una fila por orden                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-dashboard-api/internal/application/ports"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
)

// ContentType MIME del documento.
const ContentType = "application/pdf"

// gridSize columnas de la grilla de Maroto; alcanza para las 11 columnas de Profit Analysis.
const gridSize = 24

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorSection     = &props.Color{Red: 35, Green: 35, Blue: 35}
	colorColumnHead  = &props.Color{Red: 189, Green: 189, Blue: 189}
	colorDescription = &props.Color{Red: 224, Green: 224, Blue: 224}
	colorGray        = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite       = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Anchos (sobre gridSize) de las hojas que se imprimen.
var (
	summaryCols = []int{6, 10, 8}
	profitCols  = []int{2, 3, 2, 2, 2, 2, 2, 2, 1, 3, 3}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.WorkbookSerializer = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator imprime Summary y Profit Analysis; el detalle completo queda en el xlsx.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

func (g *MarotoReportGenerator) ContentType() string { return ContentType }
func (g *MarotoReportGenerator) Extension() string   { return "pdf" }

// Serialize genera el PDF y lo escribe en out.
func (g *MarotoReportGenerator) Serialize(ctx context.Context, wb *report.Workbook, out io.Writer) error {
	summary, ok := wb.Sheet(report.SheetSummary)
	if !ok {
		return fmt.Errorf("pdf: falta la hoja %s", report.SheetSummary)
	}
	profit, ok := wb.Sheet(report.SheetProfit)
	if !ok {
		return fmt.Errorf("pdf: falta la hoja %s", report.SheetProfit)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(wb.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(wb))
	m.AddRows(line.NewRow(1, props.Line{Color: colorSection, Thickness: 0.5}))

	m.AddRows(titleRow(summary.Name))
	m.AddRows(sheetRows(summary, summaryCols)...)

	m.AddRows(row.New(6))
	m.AddRows(titleRow(profit.Name))
	m.AddRows(sheetRows(profit, profitCols)...)

	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	if _, err := out.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("pdf: escribir: %w", err)
	}
	return nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango + fecha de generación (der).
func headerRow(wb *report.Workbook) core.Row {
	generated := report.FormatDateTime(&wb.GeneratedAt, wb.GeneratedAt.Location())
	return row.New(16).Add(
		col.New(12).Add(
			text.New(wb.Title, props.Text{Style: fontstyle.Bold, Size: 14, Top: 1}),
		),
		col.New(12).Add(
			text.New(wb.DateRangeLabel, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Generated: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func titleRow(name string) core.Row {
	return row.New(9).Add(col.New(gridSize).Add(
		text.New(strings.ToUpper(name), props.Text{Style: fontstyle.Bold, Size: 10, Top: 3}),
	))
}

// sheetRows una fila de PDF por fila de la hoja, con el fondo según su RowStyle.
func sheetRows(sheet report.Sheet, widths []int) []core.Row {
	rows := make([]core.Row, 0, len(sheet.Rows))
	for i, cells := range sheet.Rows {
		style := report.StylePlain
		if i < len(sheet.Styles) {
			style = sheet.Styles[i]
		}
		rows = append(rows, styledRow(cells, widths, style))
	}
	return rows
}

func styledRow(cells []string, widths []int, style report.RowStyle) core.Row {
	txt := props.Text{Size: 7, Top: 1.5, Left: 1, Right: 1}
	var bg *props.Color
	switch style {
	case report.StyleSectionHeader:
		txt.Style, txt.Color, bg = fontstyle.Bold, colorWhite, colorSection
	case report.StyleColumnHeader:
		txt.Style, txt.Align, bg = fontstyle.Bold, align.Center, colorColumnHead
	case report.StyleDescription:
		txt.Style, bg = fontstyle.Italic, colorDescription
	}

	cols := make([]core.Col, 0, len(widths))
	for c, w := range widths {
		value := ""
		if c < len(cells) {
			value = printable(cells[c])
		}
		cols = append(cols, col.New(w).Add(text.New(value, txt)))
	}

	r := row.New(6).Add(cols...)
	if bg != nil {
		r.WithStyle(&props.Cell{BackgroundColor: bg})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// printable las fuentes core del PDF no tienen el glifo del peso filipino.
func printable(s string) string {
	return strings.ReplaceAll(s, "₱", "PHP ")
}
