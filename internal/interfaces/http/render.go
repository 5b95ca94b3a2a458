package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Páginas disponibles; cada una se combina con layout.gohtml.
const (
	pageDashboard   = "dashboard.gohtml"
	pageIngredients = "ingredients.gohtml"
	pageBatches     = "batches.gohtml"
	pageInventory   = "inventory.gohtml"
)

// Renderer ejecuta las plantillas HTML embebidas en el binario.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parsea todas las páginas. Falla si alguna plantilla es inválida.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageDashboard, pageIngredients, pageBatches, pageInventory} {
		t, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("http: parsear plantilla %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render escribe la página completa con el status indicado.
// La plantilla se ejecuta en un buffer para no enviar HTML a medias si falla.
func (r *Renderer) Render(c *fiber.Ctx, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("http: página desconocida %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("http: renderizar %s: %w", page, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
