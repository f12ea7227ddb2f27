package dto

import "time"

// ReportRequest parámetros de GET /api/reports/sales y POST /api/reports/sales/export.
type ReportRequest struct {
	Mode   string `query:"mode"`   // day|week|month (default day)
	Format string `query:"format"` // xlsx|pdf (default xlsx)
}

// ReportExportDTO respuesta de una exportación persistida en disco.
type ReportExportDTO struct {
	ReportID    string    `json:"report_id"`
	Path        string    `json:"path"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	DateRange   string    `json:"date_range"`
	Sheets      []string  `json:"sheets"`
	GeneratedAt time.Time `json:"generated_at"`
}
