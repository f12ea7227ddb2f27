package analytics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-dashboard-api/internal/application/dto"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

var refNow = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

var refTZ = TimeSettings{Location: time.UTC, Clock: func() time.Time { return refNow }}

// countingRepos colecciones vacías que cuentan las lecturas. Con gate, cada lectura
// posterior a la primera espera a que el test lo cierre.
type countingRepos struct {
	loads atomic.Int32
	gate  chan struct{}
}

func (c *countingRepos) ListOrders(ctx context.Context) ([]entity.Order, error) {
	if c.loads.Add(1) > 1 && c.gate != nil {
		select {
		case <-c.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, nil
}

func (c *countingRepos) ListOrderItems(context.Context) ([]entity.OrderItem, error) {
	return nil, nil
}

func (c *countingRepos) ListCrew(context.Context) ([]entity.Crew, error) { return nil, nil }

func (c *countingRepos) loader() *SnapshotLoader { return NewSnapshotLoader(c, c, c) }

// flakySubscriber falla en la primera suscripción y en las siguientes espera a ctx.
type flakySubscriber struct {
	calls atomic.Int32
}

func (f *flakySubscriber) Subscribe(ctx context.Context, _ func(repository.ChangeEvent)) error {
	if f.calls.Add(1) == 1 {
		return errors.New("conexión LISTEN perdida")
	}
	<-ctx.Done()
	return nil
}

// burstSubscriber entrega n eventos seguidos y luego espera a ctx.
type burstSubscriber struct {
	n    int
	sent chan struct{}
}

func (b burstSubscriber) Subscribe(ctx context.Context, handle func(repository.ChangeEvent)) error {
	for i := 0; i < b.n; i++ {
		handle(repository.ChangeEvent{Collection: repository.CollectionOrderItems, Kind: repository.ChangePatched})
	}
	close(b.sent)
	<-ctx.Done()
	return nil
}

func runInBackground(t *testing.T, r *LiveRefresher) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	return func() {
		cancel()
		<-done
	}
}

func TestApply_DescartaGeneracionAnterior(t *testing.T) {
	r := NewLiveRefresher(nil, nil, refTZ, logger.Nop())
	rng := period.Resolve(period.ModeDay, refNow).Range()

	older := r.begin()
	newer := r.begin()

	fresh := map[period.Mode]liveChart{period.ModeDay: {rng: rng, series: sales.Series{CurrentLabel: "nuevo"}}}
	stale := map[period.Mode]liveChart{period.ModeDay: {rng: rng, series: sales.Series{CurrentLabel: "viejo"}}}

	assert.True(t, r.apply(newer, fresh))
	assert.False(t, r.apply(older, stale), "un resultado más viejo que el vigente se descarta")

	s, gen, ok := r.Latest(period.ModeDay, refNow)
	assert.True(t, ok)
	assert.Equal(t, newer, gen)
	assert.Equal(t, "nuevo", s.CurrentLabel)
}

func TestInvalidate_DescartaRecalculoEnCurso(t *testing.T) {
	r := NewLiveRefresher(nil, nil, refTZ, logger.Nop())
	rng := period.Resolve(period.ModeDay, refNow).Range()

	inFlight := r.begin()
	r.invalidate()

	assert.False(t, r.apply(inFlight, map[period.Mode]liveChart{period.ModeDay: {rng: rng}}))
	_, _, ok := r.Latest(period.ModeDay, refNow)
	assert.False(t, ok)
}

func TestRun_SuscripcionCaidaInvalidaCharts(t *testing.T) {
	repos := &countingRepos{}
	sub := &flakySubscriber{}
	r := NewLiveRefresher(repos.loader(), sub, refTZ, logger.Nop())
	r.retryMin, r.retryMax = time.Hour, time.Hour
	stop := runInBackground(t, r)
	defer stop()

	require.Eventually(t, func() bool {
		_, _, ok := r.Latest(period.ModeDay, refNow)
		return sub.calls.Load() == 1 && !ok
	}, time.Second, 5*time.Millisecond, "sin suscripción no hay charts vigentes")

	uc := NewDashboardUseCase(repos.loader(), r, refTZ, logger.Nop())
	before := repos.loads.Load()
	chart, err := uc.GetChart(context.Background(), dto.ChartRequest{Mode: "day"})
	require.NoError(t, err)
	assert.Equal(t, before+1, repos.loads.Load(), "el chart se lee de la DB")
	assert.Zero(t, chart.Generation)
}

func TestRun_ReintentaLaSuscripcion(t *testing.T) {
	repos := &countingRepos{}
	sub := &flakySubscriber{}
	r := NewLiveRefresher(repos.loader(), sub, refTZ, logger.Nop())
	r.retryMin, r.retryMax = time.Millisecond, 5*time.Millisecond
	stop := runInBackground(t, r)
	defer stop()

	require.Eventually(t, func() bool {
		_, _, ok := r.Latest(period.ModeWeek, refNow)
		return sub.calls.Load() == 2 && ok
	}, time.Second, 5*time.Millisecond, "tras reconectar se recalcula")
}

func TestRun_CoalesceRafagaDeCambios(t *testing.T) {
	repos := &countingRepos{gate: make(chan struct{})}
	sub := burstSubscriber{n: 20, sent: make(chan struct{})}
	r := NewLiveRefresher(repos.loader(), sub, refTZ, logger.Nop())
	stop := runInBackground(t, r)

	<-sub.sent
	close(repos.gate)
	require.Eventually(t, func() bool { return repos.loads.Load() >= 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	stop()

	// inicial + el recálculo en curso durante la ráfaga + uno pendiente
	assert.LessOrEqual(t, repos.loads.Load(), int32(3))
}
