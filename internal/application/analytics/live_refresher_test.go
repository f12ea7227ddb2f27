package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

func TestLiveRefresher_RecalculaEnCadaCambio(t *testing.T) {
	store := latteStore()
	sub := chanSubscriber{events: make(chan repository.ChangeEvent)}
	live := analytics.NewLiveRefresher(store.loader(), sub, fixedTZ, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		live.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, _, ok := live.Latest(period.ModeDay, now)
		return ok
	}, time.Second, 10*time.Millisecond)

	first, gen1, _ := live.Latest(period.ModeDay, now)
	assert.True(t, first.Current[1].Equal(decimal.NewFromInt(200)))

	store.addOrder(
		entity.Order{OrderID: "O9", CreatedAt: at(17, 9, 45)},
		entity.OrderItem{OrderID: "O9", ItemName: "Latte", Quantity: 1, Price: decimal.NewFromInt(100)},
	)
	sub.events <- repository.ChangeEvent{Collection: repository.CollectionOrders, Kind: repository.ChangeCreated}

	require.Eventually(t, func() bool {
		s, gen, _ := live.Latest(period.ModeDay, now)
		return gen > gen1 && s.Current[1].Equal(decimal.NewFromInt(300))
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestDashboard_UsaChartEnVivo(t *testing.T) {
	store := latteStore()
	live := analytics.NewLiveRefresher(store.loader(), chanSubscriber{}, fixedTZ, logger.Nop())
	require.NoError(t, live.Refresh(context.Background()))

	uc := analytics.NewDashboardUseCase(store.loader(), live, fixedTZ, logger.Nop())
	loads := store.loads

	chart, err := uc.GetChart(context.Background(), dto.ChartRequest{Mode: "month"})
	require.NoError(t, err)
	assert.Equal(t, loads, store.loads, "el chart sale del caché en vivo")
	assert.Len(t, chart.Labels, 31)
	assert.Equal(t, uint64(1), chart.Generation)
}

func TestDashboard_ChartEnVivoVenceTrasMedianoche(t *testing.T) {
	store := latteStore()
	clock := now
	tz := analytics.TimeSettings{Location: manila, Clock: func() time.Time { return clock }}

	live := analytics.NewLiveRefresher(store.loader(), chanSubscriber{}, tz, logger.Nop())
	require.NoError(t, live.Refresh(context.Background()))
	uc := analytics.NewDashboardUseCase(store.loader(), live, tz, logger.Nop())

	// domingo 18 a las 10:00, sin notificaciones desde el sábado
	clock = now.Add(24 * time.Hour)
	loads := store.loads

	chart, err := uc.GetChart(context.Background(), dto.ChartRequest{Mode: "day"})
	require.NoError(t, err)
	assert.Equal(t, loads+1, store.loads, "el caché del sábado no sirve para el domingo")
	assert.True(t, chart.CurrentSeries[1].IsZero(), "hoy 9AM sin ventas")
	assert.True(t, chart.CompareSeries[1].Equal(decimal.NewFromInt(200)), "ayer 9AM = Latte del sábado")
	assert.Zero(t, chart.Generation)

	// el domingo 18 abre semana nueva; el mes no cambia
	_, _, ok := live.Latest(period.ModeWeek, clock)
	assert.False(t, ok)
	_, _, ok = live.Latest(period.ModeMonth, clock)
	assert.True(t, ok, "octubre sigue en curso")
}
