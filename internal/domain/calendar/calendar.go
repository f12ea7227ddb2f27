// Package calendar primitivas puras de calendario local para agrupar ventas por día.
//
// "Local" significa la zona horaria del instante recibido: quien llama convierte con
// t.In(loc) antes de invocar estas funciones.
package calendar

import "time"

// DateKeyLayout formato de las claves de día.
const DateKeyLayout = "2006-01-02"

// LocalDateKey devuelve YYYY-MM-DD según la fecha calendario de t en su propia zona.
func LocalDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// StartOfDay 00:00:00.000 del día de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 23:59:59.999 del día de t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DaysInMonth cantidad de días del mes que contiene t.
func DaysInMonth(t time.Time) int {
	// Día 0 del mes siguiente = último día del mes actual.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// WeekStart domingo (00:00) de la semana que contiene t.
func WeekStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// WeekDayKeys claves de domingo a sábado de la semana que contiene t.
func WeekDayKeys(t time.Time) []string {
	start := WeekStart(t)
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = LocalDateKey(time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, start.Location()))
	}
	return keys
}

// MonthDayKeys claves de todos los días del mes que contiene t.
func MonthDayKeys(t time.Time) []string {
	n := DaysInMonth(t)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = LocalDateKey(time.Date(t.Year(), t.Month(), i+1, 0, 0, 0, 0, t.Location()))
	}
	return keys
}
