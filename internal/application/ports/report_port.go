package ports

import (
	"context"
	"io"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
)

// WorkbookSerializer puerto de salida que convierte un Workbook ya construido en un
// archivo descargable (xlsx, pdf). Los adaptadores no recalculan datos: solo dan formato.
type WorkbookSerializer interface {
	// Serialize escribe el documento completo en w. Un error deja w en estado indefinido.
	Serialize(ctx context.Context, wb *report.Workbook, w io.Writer) error
	// ContentType MIME del documento generado.
	ContentType() string
	// Extension extensión sin punto ("xlsx", "pdf").
	Extension() string
}
