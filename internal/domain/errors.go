package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidMode   = errors.New("modo de período inválido (day, week, month)")
	ErrDataSource    = errors.New("fuente de datos no disponible")
	ErrSerialization = errors.New("no se pudo generar el archivo del reporte")
)
