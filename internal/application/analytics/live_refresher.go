package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/pos-dashboard-api/internal/domain/period"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/pos-dashboard-api/pkg/logger"
)

// Espera entre reintentos de la suscripción (se duplica hasta el máximo).
const (
	defaultRetryMin = time.Second
	defaultRetryMax = 30 * time.Second
)

// liveChart chart calculado y el rango del período actual con el que se resolvió.
type liveChart struct {
	series sales.Series
	rng    period.DateRange
}

// LiveRefresher recalcula los charts de todos los modos cada vez que una colección cambia.
//
// Solo guarda el último chart por modo, junto con el rango del período que lo produjo;
// Latest no lo entrega si el instante pedido ya cayó fuera de ese rango. Cada recálculo
// toma una generación creciente al iniciar; si al terminar ya se aplicó una generación
// posterior, el resultado se descarta. Mientras la suscripción está caída no hay charts
// vigentes.
type LiveRefresher struct {
	loader     *SnapshotLoader
	subscriber repository.ChangeSubscriber
	tz         TimeSettings
	log        *logger.Logger

	retryMin time.Duration
	retryMax time.Duration

	mu      sync.RWMutex
	next    uint64 // última generación emitida
	applied uint64 // generación de los charts vigentes
	charts  map[period.Mode]liveChart
}

// NewLiveRefresher construye el refrescador; no lee nada hasta Run o Refresh.
func NewLiveRefresher(loader *SnapshotLoader, subscriber repository.ChangeSubscriber, tz TimeSettings, log *logger.Logger) *LiveRefresher {
	return &LiveRefresher{
		loader:     loader,
		subscriber: subscriber,
		tz:         tz,
		log:        log,
		retryMin:   defaultRetryMin,
		retryMax:   defaultRetryMax,
		charts:     make(map[period.Mode]liveChart, len(period.Modes)),
	}
}

// Run calcula los charts, se suscribe a los cambios y recalcula hasta que ctx se cancela.
//
// Los eventos se coalescen: un único worker recalcula y, si llegan varios cambios durante
// un recálculo, se hace uno solo más al terminar. Si la suscripción se cae, los charts se
// invalidan (el dashboard vuelve a leer la DB) y se reintenta con backoff exponencial.
func (r *LiveRefresher) Run(ctx context.Context) {
	pending := make(chan struct{}, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.work(ctx, pending)
	}()
	defer wg.Wait()

	notify := func(ev repository.ChangeEvent) {
		r.log.Debug().Str("collection", ev.Collection).Str("kind", ev.Kind).Msg("live: cambio recibido")
		select {
		case pending <- struct{}{}:
		default: // ya hay un recálculo pendiente
		}
	}

	delay := r.retryMin
	for {
		if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
			r.log.Warn().Err(err).Msg("live: cálculo inicial")
		}

		started := time.Now()
		err := r.subscriber.Subscribe(ctx, notify)
		if ctx.Err() != nil {
			return
		}

		r.invalidate()
		select {
		case <-pending:
		default:
		}
		if time.Since(started) > r.retryMax {
			delay = r.retryMin
		}
		r.log.Warn().Err(err).Dur("retry_in", delay).Msg("live: suscripción caída, charts invalidados")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, r.retryMax)
	}
}

func (r *LiveRefresher) work(ctx context.Context, pending <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
			if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
				r.log.Warn().Err(err).Msg("live: recálculo")
			}
		}
	}
}

// Refresh relee las colecciones y recalcula los charts de todos los modos.
func (r *LiveRefresher) Refresh(ctx context.Context) error {
	gen := r.begin()

	snap, err := r.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("live.Refresh gen %d: %w", gen, err)
	}
	now := r.tz.now()
	charts := make(map[period.Mode]liveChart, len(period.Modes))
	for _, m := range period.Modes {
		p := period.Resolve(m, now)
		charts[m] = liveChart{series: sales.Aggregate(snap, p), rng: p.Range()}
	}

	if !r.apply(gen, charts) {
		r.log.Debug().Uint64("generation", gen).Msg("live: resultado obsoleto descartado")
		return nil
	}
	r.log.Debug().Uint64("generation", gen).Int("orders", len(snap.Orders)).Msg("live: charts actualizados")
	return nil
}

// Latest último chart de mode y su generación, solo si at cae en el período con el
// que se calculó. Pasada la medianoche (o el cambio de semana o mes) devuelve ok=false.
func (r *LiveRefresher) Latest(mode period.Mode, at time.Time) (sales.Series, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.charts[mode]
	if !ok || !c.rng.Contains(at) {
		return sales.Series{}, 0, false
	}
	return c.series, r.applied, true
}

func (r *LiveRefresher) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// apply reemplaza los charts si gen es posterior a la generación vigente.
func (r *LiveRefresher) apply(gen uint64, charts map[period.Mode]liveChart) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen <= r.applied {
		return false
	}
	r.applied = gen
	r.charts = charts
	return true
}

// invalidate vacía los charts y descarta los recálculos en curso.
func (r *LiveRefresher) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = r.next
	r.charts = make(map[period.Mode]liveChart, len(period.Modes))
}
