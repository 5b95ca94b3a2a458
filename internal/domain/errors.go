package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrRequestFailed    = errors.New("la petición a la API remota falló")
	ErrSubmitInProgress = errors.New("ya hay un envío en curso")
)
