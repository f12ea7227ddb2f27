package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

func newDashboard(store *memStore) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(store.loader(), nil, fixedTZ, logger.Nop())
}

func TestGetChart_DiaHoyVsAyer(t *testing.T) {
	uc := newDashboard(latteStore())

	chart, err := uc.GetChart(context.Background(), dto.ChartRequest{Mode: "day"})
	require.NoError(t, err)

	require.Len(t, chart.Labels, 10)
	assert.Equal(t, "9AM", chart.Labels[1])
	assert.True(t, chart.CurrentSeries[1].Equal(decimal.NewFromInt(200)))
	assert.True(t, chart.CompareSeries[3].Equal(decimal.NewFromInt(150)), "11AM de ayer")
	assert.Equal(t, "Today", chart.CurrentLabel)
	assert.Equal(t, "Yesterday", chart.CompareLabel)
	assert.True(t, chart.CurrentTotal.Equal(decimal.NewFromInt(200)))
}

func TestGetChart_SerieOcultaNoSeEnvia(t *testing.T) {
	uc := newDashboard(latteStore())
	hide := false

	chart, err := uc.GetChart(context.Background(), dto.ChartRequest{Mode: "week", Compare: &hide})
	require.NoError(t, err)
	assert.Len(t, chart.CurrentSeries, 7)
	assert.Nil(t, chart.CompareSeries)
	assert.True(t, chart.CompareTotal.Equal(decimal.NewFromInt(0)), "ayer pertenece a esta semana")
}

func TestGetChart_ModoInvalido(t *testing.T) {
	_, err := newDashboard(latteStore()).GetChart(context.Background(), dto.ChartRequest{Mode: "year"})
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestGetChart_FuenteCaida(t *testing.T) {
	store := latteStore()
	store.err = errors.New("conexión rechazada")

	_, err := newDashboard(store).GetChart(context.Background(), dto.ChartRequest{})
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestGetStats_SoloPeriodoActual(t *testing.T) {
	uc := newDashboard(latteStore())

	day, err := uc.GetStats(context.Background(), "today")
	require.NoError(t, err)
	assert.Equal(t, "day", day.Mode)
	assert.Equal(t, "10/17/2026", day.DateRange)
	assert.True(t, day.TotalSales.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, day.TotalItemsSold)
	assert.Equal(t, 1, day.UniqueOrders)
	assert.Equal(t, "Latte", day.BestProduct.Name)

	week, err := uc.GetStats(context.Background(), "week")
	require.NoError(t, err)
	assert.True(t, week.TotalSales.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, "Coffee", week.BestCategory)
	assert.Equal(t, 3, week.BestCategoryQty)
	assert.Equal(t, "10/11/2026 to 10/17/2026", week.DateRange)
}

func TestGetBestSellers(t *testing.T) {
	uc := newDashboard(latteStore())

	out, err := uc.GetBestSellers(context.Background(), dto.BestSellersRequest{Category: "COFFEE"})
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Latte", out.Products[0].Name)

	_, err = uc.GetBestSellers(context.Background(), dto.BestSellersRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetCategoryShare(t *testing.T) {
	out, err := newDashboard(latteStore()).GetCategoryShare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryShareDTO{{Category: "Coffee", Quantity: 3, Percent: 100}}, out)
}

func TestGetCrewRanking_DefaultCompleted(t *testing.T) {
	out, err := newDashboard(latteStore()).GetCrewRanking(context.Background(), dto.CrewRankingRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, dto.CrewRankingDTO{CrewID: "C1", Name: "Ana Cruz", Orders: 1}, out[0])
	assert.Equal(t, 0, out[1].Orders)
}

func TestListOrders_RecientesPrimeroYPaginado(t *testing.T) {
	store := latteStore()
	store.addOrder(entity.Order{OrderID: "O3"}) // sin created_at: al final

	uc := newDashboard(store)
	page, err := uc.ListOrders(context.Background(), dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, "O1", page.Orders[0].OrderID)
	assert.Equal(t, "O2", page.Orders[1].OrderID)
	assert.Equal(t, "2026-10-17T09:15:00+08:00", page.Orders[0].CreatedAt)
	assert.Equal(t, 3, page.Page.Total)

	rest, err := uc.ListOrders(context.Background(), dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest.Orders, 1)
	assert.Equal(t, "O3", rest.Orders[0].OrderID)
	assert.Equal(t, "N/A", rest.Orders[0].CrewName)

	empty, err := uc.ListOrders(context.Background(), dto.PageRequest{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty.Orders)
}

func TestGetOrder(t *testing.T) {
	uc := newDashboard(latteStore())

	d, err := uc.GetOrder(context.Background(), "O1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", d.CrewName)
	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, d.Total.Equal(decimal.NewFromInt(200)))

	_, err = uc.GetOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
