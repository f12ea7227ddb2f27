package analytics

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/application/ports"
	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

// DefaultFormat formato usado cuando la petición no indica ninguno.
const DefaultFormat = "xlsx"

// RenderedReport reporte serializado en memoria, listo para enviarse como adjunto.
type RenderedReport struct {
	Workbook    *report.Workbook
	FileName    string // con extensión
	ContentType string
	Data        []byte
}

// ReportUseCase genera el reporte de ventas de cuatro hojas y lo serializa.
type ReportUseCase struct {
	loader      *SnapshotLoader
	serializers map[string]ports.WorkbookSerializer // por extensión
	opts        report.Options
	tz          TimeSettings
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso. Cada serializer se registra por su Extension().
func NewReportUseCase(
	loader *SnapshotLoader,
	opts report.Options,
	tz TimeSettings,
	log *logger.Logger,
	serializers ...ports.WorkbookSerializer,
) *ReportUseCase {
	byExt := make(map[string]ports.WorkbookSerializer, len(serializers))
	for _, s := range serializers {
		byExt[s.Extension()] = s
	}
	return &ReportUseCase{loader: loader, serializers: byExt, opts: opts, tz: tz, log: log}
}

// Build lee las colecciones y arma el Workbook del período actual del modo.
func (uc *ReportUseCase) Build(ctx context.Context, rawMode string) (*report.Workbook, error) {
	mode, err := period.ParseMode(rawMode)
	if err != nil {
		return nil, err
	}
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}

	now := uc.tz.now()
	p := period.Resolve(mode, now)
	filtered := sales.FilterByRange(snap, p.Range())
	return report.Build(report.Input{
		ID:          uuid.NewString(),
		Snapshot:    filtered,
		Period:      p,
		KPI:         sales.Summarize(filtered),
		GeneratedAt: now,
		Options:     uc.opts,
	}), nil
}

// Render construye y serializa el reporte en memoria.
func (uc *ReportUseCase) Render(ctx context.Context, req dto.ReportRequest) (*RenderedReport, error) {
	ser, err := uc.serializer(req.Format)
	if err != nil {
		return nil, err
	}
	wb, err := uc.Build(ctx, req.Mode)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := ser.Serialize(ctx, wb, &buf); err != nil {
		uc.log.Error().Err(err).Str("file", wb.FileName).Msg("report: serializar")
		return nil, fmt.Errorf("report.Render: %w: %w", domain.ErrSerialization, err)
	}
	uc.logExport(wb, ser.Extension(), "")
	return &RenderedReport{
		Workbook:    wb,
		FileName:    wb.FileName + "." + ser.Extension(),
		ContentType: ser.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// ExportToDir construye el reporte y lo escribe en dir. Escribe primero un archivo
// temporal en el mismo directorio y lo renombra al terminar; ante un error lo elimina.
func (uc *ReportUseCase) ExportToDir(ctx context.Context, req dto.ReportRequest, dir string) (*dto.ReportExportDTO, error) {
	ser, err := uc.serializer(req.Format)
	if err != nil {
		return nil, err
	}
	wb, err := uc.Build(ctx, req.Mode)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report.ExportToDir: %w: %w", domain.ErrSerialization, err)
	}
	name := wb.FileName + "." + ser.Extension()
	target := filepath.Join(dir, name)
	if err := writeAtomically(ctx, ser, wb, dir, target); err != nil {
		uc.log.Error().Err(err).Str("path", target).Msg("report: exportar")
		return nil, fmt.Errorf("report.ExportToDir: %w: %w", domain.ErrSerialization, err)
	}
	uc.logExport(wb, ser.Extension(), target)

	sheets := make([]string, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		sheets = append(sheets, s.Name)
	}
	return &dto.ReportExportDTO{
		ReportID:    wb.ID,
		Path:        target,
		FileName:    name,
		ContentType: ser.ContentType(),
		DateRange:   wb.DateRangeLabel,
		Sheets:      sheets,
		GeneratedAt: wb.GeneratedAt,
	}, nil
}

func writeAtomically(ctx context.Context, ser ports.WorkbookSerializer, wb *report.Workbook, dir, target string) (err error) {
	tmp, err := os.CreateTemp(dir, "."+wb.FileName+"-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = ser.Serialize(ctx, wb, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (uc *ReportUseCase) serializer(format string) (ports.WorkbookSerializer, error) {
	ext := strings.ToLower(strings.TrimSpace(format))
	if ext == "" {
		ext = DefaultFormat
	}
	ser, ok := uc.serializers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}
	return ser, nil
}

func (uc *ReportUseCase) logExport(wb *report.Workbook, ext, path string) {
	rows := 0
	for _, s := range wb.Sheets {
		rows += len(s.DataRows())
	}
	ev := uc.log.Info().
		Str("report_id", wb.ID).
		Str("file", wb.FileName+"."+ext).
		Int("sheets", len(wb.Sheets)).
		Int("rows", rows)
	if path != "" {
		ev = ev.Str("path", path)
	}
	ev.Msg("reporte generado")
}

