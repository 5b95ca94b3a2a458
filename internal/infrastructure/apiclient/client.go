// Package apiclient implementa ports.ProductionAPI sobre la API REST remota de producción.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/ports"
	"github.com/jhoicas/produccion-dashboard/internal/domain"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
	"github.com/jhoicas/produccion-dashboard/pkg/requestid"
)

// Verificar en tiempo de compilación que Client implementa ProductionAPI.
var _ ports.ProductionAPI = (*Client)(nil)

const (
	pathIngredients = "/api/ingredients"
	pathBatches     = "/api/batches"
	pathInventory   = "/api/inventory"
	pathDashboard   = "/api/dashboard"

	maxResponseBytes = 8 << 20
	maxErrorSnippet  = 512
)

// StatusError respuesta HTTP no 2xx de la API remota.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string // detalle extraído del cuerpo, si lo hay
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap permite errors.Is(err, domain.ErrRequestFailed); un 404 además es domain.ErrNotFound.
func (e *StatusError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{domain.ErrRequestFailed, domain.ErrNotFound}
	}
	return []error{domain.ErrRequestFailed}
}

// Client adaptador HTTP/JSON de la API remota. Usa net/http de la librería estándar.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout de red indicado.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP construye el cliente sobre un *http.Client ya configurado (tests, transportes propios).
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// ListIngredients GET /api/ingredients.
func (c *Client) ListIngredients(ctx context.Context) ([]entity.Ingredient, error) {
	var wire []ingredientWire
	if err := c.do(ctx, http.MethodGet, pathIngredients, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Ingredient, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// ListBatches GET /api/batches.
func (c *Client) ListBatches(ctx context.Context) ([]entity.ProductionBatch, error) {
	var wire []batchWire
	if err := c.do(ctx, http.MethodGet, pathBatches, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.ProductionBatch, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// ListInventory GET /api/inventory.
func (c *Client) ListInventory(ctx context.Context) ([]entity.InventoryItem, error) {
	var wire []inventoryWire
	if err := c.do(ctx, http.MethodGet, pathInventory, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetDashboard GET /api/dashboard.
func (c *Client) GetDashboard(ctx context.Context) (*entity.DashboardSummary, error) {
	var wire dashboardWire
	if err := c.do(ctx, http.MethodGet, pathDashboard, nil, &wire); err != nil {
		return nil, err
	}
	summary := wire.toEntity()
	return &summary, nil
}

// CreateIngredient POST /api/ingredients.
func (c *Client) CreateIngredient(ctx context.Context, in dto.CreateIngredientRequest) (*entity.Ingredient, error) {
	var wire ingredientWire
	if err := c.do(ctx, http.MethodPost, pathIngredients, in, &wire); err != nil {
		return nil, err
	}
	created := wire.toEntity()
	return &created, nil
}

// CreateBatch POST /api/batches. ingredients_used nunca viaja como null.
func (c *Client) CreateBatch(ctx context.Context, in dto.CreateBatchRequest) (*entity.ProductionBatch, error) {
	if in.IngredientsUsed == nil {
		in.IngredientsUsed = map[string]float64{}
	}
	var wire batchWire
	if err := c.do(ctx, http.MethodPost, pathBatches, in, &wire); err != nil {
		return nil, err
	}
	created := wire.toEntity()
	return &created, nil
}

// CreateInventoryItem POST /api/inventory.
func (c *Client) CreateInventoryItem(ctx context.Context, in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	var wire inventoryWire
	if err := c.do(ctx, http.MethodPost, pathInventory, in, &wire); err != nil {
		return nil, err
	}
	created := wire.toEntity()
	return &created, nil
}

// do ejecuta la petición y decodifica la respuesta JSON en out.
// Fallos de red, de decodificación y estados no 2xx se tratan igual: domain.ErrRequestFailed.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar %s %s: %w: %w", method, path, domain.ErrRequestFailed, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear request %s %s: %w: %w", method, path, domain.ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, requestid.FromOrNew(ctx))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: timeout o cancelación: %w: %w", method, path, domain.ErrRequestFailed, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: llamada HTTP fallida: %w: %w", method, path, domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("api: %s %s: leer respuesta: %w: %w", method, path, domain.ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s %s: deserializar respuesta: %w: %w", method, path, domain.ErrRequestFailed, err)
	}
	return nil
}

// errorMessage intenta extraer un mensaje legible del cuerpo de error; si no es JSON devuelve un fragmento.
func errorMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var ew errorWire
	if err := json.Unmarshal(raw, &ew); err == nil {
		if msg := ew.text(); msg != "" {
			return truncate(msg)
		}
	}
	return truncate(string(raw))
}

func truncate(s string) string {
	if len(s) <= maxErrorSnippet {
		return s
	}
	return s[:maxErrorSnippet] + "…"
}

// IsStatus indica si err es un StatusError con el código dado.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
