package report

import (
	"strings"
	"unicode/utf8"
)

// RowStyle clasificación de estilo de una fila. Los colores los decide el serializador.
type RowStyle string

const (
	StylePlain         RowStyle = "plain"
	StyleColumnHeader  RowStyle = "column_header"
	StyleDescription   RowStyle = "description"
	StyleSectionHeader RowStyle = "section_header"
)

// Ancho de columna: celda más larga, mínimo 10, más 2 de margen.
const (
	minColumnWidth = 10
	columnPadding  = 2
)

// Sheet una hoja: fila de encabezado, fila de descripción y filas de datos.
type Sheet struct {
	Name         string
	Rows         [][]string
	Styles       []RowStyle
	ColumnWidths []int
}

// DataRows filas posteriores al encabezado y la descripción.
func (s Sheet) DataRows() [][]string {
	if len(s.Rows) <= 2 {
		return nil
	}
	return s.Rows[2:]
}

func newSheet(name string, header, description []string, data [][]string) Sheet {
	rows := make([][]string, 0, len(data)+2)
	rows = append(rows, header, description)
	rows = append(rows, data...)
	return Sheet{
		Name:         name,
		Rows:         rows,
		Styles:       ClassifyRows(rows),
		ColumnWidths: ColumnWidths(rows),
	}
}

// IsSectionHeader primera celda no vacía y en mayúsculas, segunda y tercera vacías.
func IsSectionHeader(row []string) bool {
	first := cell(row, 0)
	return first != "" && first == strings.ToUpper(first) && cell(row, 1) == "" && cell(row, 2) == ""
}

// ClassifyRows fila 0 encabezado de columnas, fila 1 descripción, resto sección o dato.
func ClassifyRows(rows [][]string) []RowStyle {
	styles := make([]RowStyle, len(rows))
	for i, row := range rows {
		switch {
		case i == 0:
			styles[i] = StyleColumnHeader
		case i == 1:
			styles[i] = StyleDescription
		case IsSectionHeader(row):
			styles[i] = StyleSectionHeader
		default:
			styles[i] = StylePlain
		}
	}
	return styles
}

// ColumnWidths un ancho por columna de la primera fila.
func ColumnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for c := range widths {
		longest := minColumnWidth
		for _, row := range rows {
			if n := utf8.RuneCountInString(cell(row, c)); n > longest {
				longest = n
			}
		}
		widths[c] = longest + columnPadding
	}
	return widths
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
