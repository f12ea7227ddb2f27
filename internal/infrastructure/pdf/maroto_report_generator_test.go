package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/report"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/pos-dashboard-api/internal/infrastructure/pdf"
)

func emptyWorkbook() *report.Workbook {
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	return report.Build(report.Input{
		Period:      period.Resolve(period.ModeWeek, now),
		KPI:         sales.Summarize(sales.Snapshot{}),
		GeneratedAt: now,
		Options:     report.DefaultOptions(),
	})
}

func TestSerialize_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("pos-dashboard-api")
	assert.Equal(t, "pdf", g.Extension())
	assert.Equal(t, "application/pdf", g.ContentType())

	var buf bytes.Buffer
	require.NoError(t, g.Serialize(context.Background(), emptyWorkbook(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSerialize_SinHojaResumen(t *testing.T) {
	var buf bytes.Buffer
	err := pdf.NewMarotoReportGenerator("x").Serialize(context.Background(), &report.Workbook{}, &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
