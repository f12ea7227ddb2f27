// Package excel serializa el reporte de ventas a .xlsx con excelize.
package excel

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/pos-dashboard-api/internal/application/ports"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
)

// ContentType MIME de un libro .xlsx.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Colores de relleno por estilo de fila.
const (
	sectionFill     = "#232323"
	sectionFont     = "#FFFFFF"
	columnHeadFill  = "#BDBDBD"
	descriptionFill = "#E0E0E0"
)

var _ ports.WorkbookSerializer = (*WorkbookWriter)(nil)

// WorkbookWriter escribe cada hoja del Workbook tal cual viene del builder.
type WorkbookWriter struct {
	creator string
}

// NewWorkbookWriter construye el serializador; creator se guarda en las propiedades del documento.
func NewWorkbookWriter(creator string) *WorkbookWriter {
	return &WorkbookWriter{creator: creator}
}

func (w *WorkbookWriter) ContentType() string { return ContentType }
func (w *WorkbookWriter) Extension() string   { return "xlsx" }

// Serialize arma el libro en memoria y lo vuelca en out.
func (w *WorkbookWriter) Serialize(ctx context.Context, wb *report.Workbook, out io.Writer) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("excel: el workbook no tiene hojas")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, sheet := range wb.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("excel: renombrar hoja %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("excel: crear hoja %s: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet, styles); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   wb.Title,
		Subject: wb.DateRangeLabel,
		Creator: w.creator,
		Created: wb.GeneratedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("excel: propiedades: %w", err)
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("excel: escribir: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet report.Sheet, styles map[report.RowStyle]int) error {
	for r, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("excel: %s fila %d: %w", sheet.Name, r+1, err)
		}

		styleID, ok := styles[styleOf(sheet, r)]
		if !ok || len(sheet.ColumnWidths) == 0 {
			continue
		}
		last, err := excelize.CoordinatesToCellName(len(sheet.ColumnWidths), r+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, cell, last, styleID); err != nil {
			return fmt.Errorf("excel: estilo %s fila %d: %w", sheet.Name, r+1, err)
		}
	}

	for c, width := range sheet.ColumnWidths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, float64(width)); err != nil {
			return fmt.Errorf("excel: ancho %s!%s: %w", sheet.Name, col, err)
		}
	}
	return nil
}

func styleOf(sheet report.Sheet, row int) report.RowStyle {
	if row < len(sheet.Styles) {
		return sheet.Styles[row]
	}
	return report.StylePlain
}

// newStyles registra un estilo por RowStyle; las filas plain no llevan estilo.
func newStyles(f *excelize.File) (map[report.RowStyle]int, error) {
	defs := map[report.RowStyle]*excelize.Style{
		report.StyleSectionHeader: {
			Font: &excelize.Font{Bold: true, Color: sectionFont},
			Fill: excelize.Fill{Type: "pattern", Color: []string{sectionFill}, Pattern: 1},
		},
		report.StyleColumnHeader: {
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{columnHeadFill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		},
		report.StyleDescription: {
			Font: &excelize.Font{Italic: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{descriptionFill}, Pattern: 1},
		},
	}
	ids := make(map[report.RowStyle]int, len(defs))
	for rs, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return nil, fmt.Errorf("excel: estilo %s: %w", rs, err)
		}
		ids[rs] = id
	}
	return ids, nil
}
