// Package requestid propaga un identificador de correlación entre el store y el cliente HTTP.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header cabecera HTTP donde viaja el identificador.
const Header = "X-Request-ID"

type ctxKey struct{}

// With devuelve un contexto con el identificador dado.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// New devuelve un contexto con un identificador nuevo (UUID v4) y el identificador.
func New(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return With(ctx, id), id
}

// From extrae el identificador del contexto; vacío si no hay.
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromOrNew devuelve el identificador del contexto o genera uno nuevo.
func FromOrNew(ctx context.Context) string {
	if id := From(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
