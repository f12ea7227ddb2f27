// Package period resuelve los buckets del período actual y del período de comparación
// (hoy vs ayer, esta semana vs la anterior, este mes vs el anterior).
//
// Todas las funciones reciben el instante de referencia explícito; nada lee el reloj.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/pos-dashboard-api/internal/domain"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/calendar"
	"github.com/jhoicas/pos-dashboard-api/internal/domain/entity"
)

// Mode granularidad del filtro del dashboard.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// Modes todos los modos, en el orden del selector del dashboard.
var Modes = []Mode{ModeDay, ModeWeek, ModeMonth}

// Horario del chart diario: 8AM..5PM inclusive.
const (
	firstHour = 8
	lastHour  = 17
)

// DisplayDateLayout formato de fecha de las etiquetas de rango (M/D/YYYY).
const DisplayDateLayout = "1/2/2006"

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ParseMode acepta day|today|week|month sin distinguir mayúsculas.
// Cadena vacía equivale a day.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day", "today":
		return ModeDay, nil
	case "week":
		return ModeWeek, nil
	case "month":
		return ModeMonth, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, s)
	}
}

// Bucket ventana a la que pertenece una orden.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketCurrent
	BucketCompare
)

func (b Bucket) String() string {
	switch b {
	case BucketCurrent:
		return "current"
	case BucketCompare:
		return "compare"
	default:
		return "none"
	}
}

// Classification resultado de clasificar una orden.
type Classification struct {
	Bucket Bucket
	Label  string
}

// DateRange rango cerrado [Start, End] usado por los KPIs y el reporte exportado.
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string // ej. "10/11/2026 to 10/17/2026"
}

// Contains prueba de rango cerrado.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Period buckets resueltos para un modo y un instante de referencia.
// Es un valor inmutable; cada Resolve construye índices nuevos.
type Period struct {
	Mode         Mode
	Now          time.Time
	Labels       []string
	CurrentLabel string
	CompareLabel string

	currentDay string
	compareDay string
	current    map[string]int // clave de día -> índice de slot
	compare    map[string]int
}

// Resolve construye el Period para mode en el instante now (zona de now = zona local).
// Un modo desconocido se resuelve como day.
func Resolve(mode Mode, now time.Time) Period {
	switch mode {
	case ModeWeek:
		return resolveWeek(now)
	case ModeMonth:
		return resolveMonth(now)
	default:
		return resolveDay(now)
	}
}

func resolveDay(now time.Time) Period {
	labels := make([]string, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		l, _ := HourLabel(h)
		labels = append(labels, l)
	}
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 12, 0, 0, 0, now.Location())
	return Period{
		Mode:         ModeDay,
		Now:          now,
		Labels:       labels,
		CurrentLabel: "Today",
		CompareLabel: "Yesterday",
		currentDay:   calendar.LocalDateKey(now),
		compareDay:   calendar.LocalDateKey(yesterday),
	}
}

func resolveWeek(now time.Time) Period {
	thisWeek := calendar.WeekDayKeys(now)
	start := calendar.WeekStart(now)
	lastWeek := calendar.WeekDayKeys(time.Date(start.Year(), start.Month(), start.Day()-7, 0, 0, 0, 0, start.Location()))

	labels := make([]string, len(weekdayLabels))
	copy(labels, weekdayLabels)
	return Period{
		Mode:         ModeWeek,
		Now:          now,
		Labels:       labels,
		CurrentLabel: "This Week",
		CompareLabel: "Last Week",
		current:      indexKeys(thisWeek),
		compare:      indexKeys(lastWeek),
	}
}

func resolveMonth(now time.Time) Period {
	thisMonth := calendar.MonthDayKeys(now)
	lastMonth := calendar.MonthDayKeys(time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()))

	labels := make([]string, len(thisMonth))
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return Period{
		Mode:         ModeMonth,
		Now:          now,
		Labels:       labels,
		CurrentLabel: "This Month",
		CompareLabel: "Last Month",
		current:      indexKeys(thisMonth),
		compare:      indexKeys(lastMonth),
	}
}

func indexKeys(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}
	return m
}

// HourLabel etiqueta de una hora dentro del horario del chart (8AM..5PM).
func HourLabel(hour int) (string, bool) {
	switch {
	case hour < firstHour || hour > lastHour:
		return "", false
	case hour == 12:
		return "12PM", true
	case hour > 12:
		return strconv.Itoa(hour-12) + "PM", true
	default:
		return strconv.Itoa(hour) + "AM", true
	}
}

// Classify ubica la orden en el período actual, el de comparación o ninguno.
func (p Period) Classify(order entity.Order) Classification {
	if !order.HasCreatedAt() {
		return Classification{Bucket: BucketNone}
	}
	t := order.CreatedAt.In(p.Now.Location())
	key := calendar.LocalDateKey(t)

	if p.Mode == ModeDay {
		label, ok := HourLabel(t.Hour())
		if !ok {
			return Classification{Bucket: BucketNone}
		}
		switch key {
		case p.currentDay:
			return Classification{Bucket: BucketCurrent, Label: label}
		case p.compareDay:
			return Classification{Bucket: BucketCompare, Label: label}
		}
		return Classification{Bucket: BucketNone}
	}

	if idx, ok := p.current[key]; ok {
		return Classification{Bucket: BucketCurrent, Label: p.Labels[idx]}
	}
	// En modo mes el mes anterior puede tener más días que el actual: esos días no tienen slot.
	if idx, ok := p.compare[key]; ok && idx < len(p.Labels) {
		return Classification{Bucket: BucketCompare, Label: p.Labels[idx]}
	}
	return Classification{Bucket: BucketNone}
}

// SlotLabel etiqueta del slot de t sin separar actual/comparación (hoja Timeslot Sales).
func (p Period) SlotLabel(t time.Time) (string, bool) {
	t = t.In(p.Now.Location())
	switch p.Mode {
	case ModeWeek:
		return weekdayLabels[t.Weekday()], true
	case ModeMonth:
		if t.Day() > len(p.Labels) {
			return "", false
		}
		return p.Labels[t.Day()-1], true
	default:
		return HourLabel(t.Hour())
	}
}

// Range rango cerrado del período actual y su etiqueta legible.
func (p Period) Range() DateRange {
	now := p.Now
	switch p.Mode {
	case ModeWeek:
		start := calendar.WeekStart(now)
		end := calendar.EndOfDay(time.Date(start.Year(), start.Month(), start.Day()+6, 0, 0, 0, 0, start.Location()))
		return DateRange{Start: start, End: end, Label: rangeLabel(start, end)}
	case ModeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := calendar.EndOfDay(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()))
		return DateRange{Start: start, End: end, Label: rangeLabel(start, end)}
	default:
		start := calendar.StartOfDay(now)
		return DateRange{Start: start, End: calendar.EndOfDay(now), Label: start.Format(DisplayDateLayout)}
	}
}

func rangeLabel(start, end time.Time) string {
	return start.Format(DisplayDateLayout) + " to " + end.Format(DisplayDateLayout)
}
