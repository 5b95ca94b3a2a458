// Package forms valida los formularios del dashboard y los convierte en peticiones para la API remota.
//
// Política numérica: el texto se recorta y se interpreta como decimal. Texto no numérico o
// valores negativos se rechazan con un error de campo visible; nunca se envía NaN.
package forms

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Mensajes de validación visibles en el formulario.
const (
	msgRequired    = "This field is required."
	msgNotNumber   = "Enter a valid number."
	msgNegative    = "Value cannot be negative."
	msgTooLarge    = "Value is too large."
	msgInvalidDate = "Enter a date as YYYY-MM-DD."
	msgInvalidTime = "Enter a time as HH:MM."
	msgInvalidOpt  = "Select one of the listed options."
)

// FieldErrors mapea nombre de campo (tal como en el formulario) -> mensaje.
type FieldErrors map[string]string

// Error implementa error para poder envolver FieldErrors con domain.ErrInvalidInput.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "formulario inválido: " + strings.Join(parts, "; ")
}

// Has indica si el campo tiene error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty indica si no hay errores.
func (e FieldErrors) Empty() bool { return len(e) == 0 }

// required recorta el valor y registra error si queda vacío.
func (e FieldErrors) required(field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		e[field] = msgRequired
	}
	return v
}

// amount interpreta un número no negativo. ok=false si está vacío o es inválido.
func (e FieldErrors) amount(field, raw string, required bool) (decimal.Decimal, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		if required {
			e[field] = msgRequired
		}
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		e[field] = msgNotNumber
		return decimal.Zero, false
	}
	if d.IsNegative() {
		e[field] = msgNegative
		return decimal.Zero, false
	}
	if math.IsInf(d.InexactFloat64(), 0) {
		e[field] = msgTooLarge
		return decimal.Zero, false
	}
	return d, true
}

// optionalAmount devuelve un puntero a float64 o nil si el campo está vacío.
func (e FieldErrors) optionalAmount(field, raw string) *float64 {
	d, ok := e.amount(field, raw, false)
	if !ok {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// date valida YYYY-MM-DD.
func (e FieldErrors) date(field, raw string, required bool) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		if required {
			e[field] = msgRequired
		}
		return ""
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		e[field] = msgInvalidDate
	}
	return v
}

// clock valida HH:MM (se aceptan segundos, como envían algunos navegadores).
func (e FieldErrors) clock(field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	if _, err := time.Parse("15:04", v); err == nil {
		return v
	}
	if _, err := time.Parse("15:04:05", v); err == nil {
		return v
	}
	e[field] = msgInvalidTime
	return v
}

// oneOf valida que v esté en allowed.
func (e FieldErrors) oneOf(field, raw string, allowed func(string) bool) string {
	v := e.required(field, raw)
	if v != "" && !allowed(v) {
		e[field] = msgInvalidOpt
	}
	return v
}

func trimmed(s string) string { return strings.TrimSpace(s) }
