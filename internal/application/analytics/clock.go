package analytics

import "time"

// Clock fuente del instante de referencia. En producción es time.Now.
type Clock func() time.Time

// TimeSettings zona local de los buckets y reloj de referencia.
type TimeSettings struct {
	Location *time.Location
	Clock    Clock
}

// now instante de referencia expresado en la zona del reporte.
func (s TimeSettings) now() time.Time {
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return clock().In(loc)
}
