package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/infrastructure/apiclient"
	apphttp "github.com/jhoicas/produccion-dashboard/internal/interfaces/http"
	"github.com/jhoicas/produccion-dashboard/pkg/requestid"
)

// ──────────────────────────────────────────────────────────────────────────────
// API remota falsa
// ──────────────────────────────────────────────────────────────────────────────

type remoteAPI struct {
	mu            sync.Mutex
	ingredients   []map[string]any
	batches       []map[string]any
	inventory     []map[string]any
	lowStockCount int
	failCreate    bool
	failLists     bool
	posted        map[string][]map[string]any
	listCalls     int
}

func newRemoteAPI() *remoteAPI {
	return &remoteAPI{
		ingredients: []map[string]any{
			{"id": "ing-1", "name": "Wheat Flour", "unit": "kg", "cost_per_unit": 45.5, "supplier": nil, "created_at": "2024-03-01T10:00:00"},
		},
		batches: []map[string]any{
			{"id": "b-1", "batch_number": "B-001", "production_date": "2024-03-01", "quantity_produced": 120,
				"ingredients_used": map[string]any{}, "quality_grade": "A", "created_at": "2024-03-01T12:00:00"},
		},
		inventory: []map[string]any{
			{"id": "inv-1", "item_type": "ingredient", "item_id": "ing-1", "current_stock": 2, "minimum_stock": 5, "location": nil, "last_updated": "2024-03-02T08:00:00"},
			{"id": "inv-2", "item_type": "finished_product", "item_id": "b-1", "current_stock": 50, "minimum_stock": 10, "location": "Cold room", "last_updated": "2024-03-02T08:00:00"},
		},
		posted: make(map[string][]map[string]any),
	}
}

func (r *remoteAPI) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if req.Method == http.MethodGet {
		r.listCalls++
		if r.failLists {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"detail":"mantenimiento"}`)
			return
		}
	}

	switch req.Method + " " + req.URL.Path {
	case "GET /api/ingredients":
		_ = json.NewEncoder(w).Encode(r.ingredients)
	case "GET /api/batches":
		_ = json.NewEncoder(w).Encode(r.batches)
	case "GET /api/inventory":
		_ = json.NewEncoder(w).Encode(r.inventory)
	case "GET /api/dashboard":
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_ingredients":     len(r.ingredients),
			"total_batches":         len(r.batches),
			"total_inventory_items": len(r.inventory),
			"low_stock_count":       r.lowStockCount,
			"low_stock_items":       []any{},
			"recent_batches":        r.batches,
		})
	case "POST /api/ingredients", "POST /api/batches", "POST /api/inventory":
		var body map[string]any
		_ = json.NewDecoder(req.Body).Decode(&body)
		r.posted[req.URL.Path] = append(r.posted[req.URL.Path], body)
		if r.failCreate {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"detail":"error interno"}`)
			return
		}
		created := make(map[string]any, len(body)+1)
		for k, v := range body {
			created[k] = v
		}
		created["id"] = "new-1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (r *remoteAPI) bodies(path string) []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]any(nil), r.posted[path]...)
}

func (r *remoteAPI) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type stubReports struct{ err error }

func (s stubReports) GenerateStockReport(_ context.Context, report dto.StockReportDTO) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.3 " + report.Title), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	app    *fiber.App
	remote *remoteAPI
	store  *store.DataStore
}

func setup(t *testing.T, configure func(*remoteAPI)) fixture {
	t.Helper()
	remote := newRemoteAPI()
	if configure != nil {
		configure(remote)
	}
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	s := store.NewDataStore(apiclient.NewClient(srv.URL, 2*time.Second), nil)
	s.LoadAll(context.Background())

	views, err := apphttp.NewRenderer()
	require.NoError(t, err, "las plantillas embebidas deben parsear")

	app := apphttp.NewApp(apphttp.RouterDeps{
		Store:       s,
		Reports:     stubReports{},
		Renderer:    views,
		AppName:     "production-dashboard",
		ReportTitle: "Stock Report",
	})
	return fixture{app: app, remote: remote, store: s}
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_SinStockBajoNoMuestraBanner(t *testing.T) {
	f := setup(t, nil)

	resp, body := get(t, f.app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.NotContains(t, body, `class="banner"`)
	assert.Contains(t, body, "B-001", "lotes recientes")
}

func TestDashboard_BannerConConteo(t *testing.T) {
	f := setup(t, func(r *remoteAPI) { r.lowStockCount = 3 })

	_, body := get(t, f.app, "/")
	assert.Contains(t, body, `data-count="3"`)
	assert.Contains(t, body, "3 items are at or below minimum stock")
}

func TestDashboard_AvisoCuandoLaAPIFalla(t *testing.T) {
	f := setup(t, func(r *remoteAPI) { r.failLists = true })

	resp, body := get(t, f.app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "la vista se pinta con datos vacíos")
	assert.Contains(t, body, "Could not load ingredients")
	assert.Contains(t, body, "Could not load the dashboard summary")
}

func TestRefresh_RecargaYRedirige(t *testing.T) {
	f := setup(t, nil)
	before := f.remote.calls()

	resp, _ := postForm(t, f.app, "/refresh", url.Values{"return_to": {"inventory"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/inventory", resp.Header.Get("Location"))
	assert.Equal(t, before+4, f.remote.calls())
}

func TestRefresh_DestinoDesconocidoVuelveAlResumen(t *testing.T) {
	f := setup(t, nil)

	resp, _ := postForm(t, f.app, "/refresh", url.Values{"return_to": {"https://otro.example"}})
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestSnapshotYHealth(t *testing.T) {
	f := setup(t, func(r *remoteAPI) { r.lowStockCount = 1 })

	resp, body := get(t, f.app, "/api/snapshot")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var snap dto.SnapshotResponse
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	assert.Equal(t, 1, snap.Ingredients)
	assert.Equal(t, 2, snap.InventoryItems)
	assert.Equal(t, 1, snap.LowStockCount)
	assert.NotNil(t, snap.LoadedAt)
	assert.Empty(t, snap.Notices)

	resp, body = get(t, f.app, "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"production-dashboard","loaded":true,"notices":0}`, body)
}

func TestRequestID_SeDevuelveEnLaRespuesta(t *testing.T) {
	f := setup(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestid.Header, "abc-123")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(requestid.Header))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes
// ──────────────────────────────────────────────────────────────────────────────

func TestIngredients_FormularioColapsadoPorDefecto(t *testing.T) {
	f := setup(t, nil)

	_, body := get(t, f.app, "/ingredients")
	assert.NotContains(t, body, `action="/ingredients"`)
	assert.Contains(t, body, "/ingredients?form=open")
	assert.Contains(t, body, "45.50")

	_, body = get(t, f.app, "/ingredients?form=open")
	assert.Contains(t, body, `action="/ingredients"`)
}

func TestIngredients_CrearEnviaCuerpoExacto(t *testing.T) {
	f := setup(t, nil)
	before := f.remote.calls()

	resp, _ := postForm(t, f.app, "/ingredients", url.Values{
		"name": {"Wheat Flour"}, "unit": {"kg"}, "cost_per_unit": {"45.5"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/ingredients", resp.Header.Get("Location"))

	bodies := f.remote.bodies("/api/ingredients")
	require.Len(t, bodies, 1)
	assert.Equal(t, map[string]any{"name": "Wheat Flour", "unit": "kg", "cost_per_unit": 45.5}, bodies[0])
	assert.Equal(t, before+4, f.remote.calls(), "tras crear se recargan las cuatro colecciones")
}

func TestIngredients_ValidacionNoLlamaALaAPI(t *testing.T) {
	f := setup(t, nil)

	resp, body := postForm(t, f.app, "/ingredients", url.Values{
		"name": {"Salt"}, "unit": {""}, "cost_per_unit": {"abc"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")
	assert.Contains(t, body, "Enter a valid number.")
	assert.Contains(t, body, `value="Salt"`, "los valores ingresados se conservan")
	assert.Empty(t, f.remote.bodies("/api/ingredients"))
}

func TestIngredients_CostoFueraDeRangoEsErrorDeCampo(t *testing.T) {
	f := setup(t, nil)

	resp, body := postForm(t, f.app, "/ingredients", url.Values{
		"name": {"Yeast"}, "unit": {"kg"}, "cost_per_unit": {"1e400"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Value is too large.")
	assert.NotContains(t, body, "Could not create the ingredient")
	assert.Empty(t, f.remote.bodies("/api/ingredients"))
}

func TestIngredients_FalloRemotoConservaFormulario(t *testing.T) {
	f := setup(t, func(r *remoteAPI) { r.failCreate = true })

	resp, body := postForm(t, f.app, "/ingredients", url.Values{
		"name": {"Sugar"}, "unit": {"kg"}, "cost_per_unit": {"3"}, "supplier": {"Dulces SA"},
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Could not create the ingredient")
	assert.Contains(t, body, `value="Sugar"`)
	assert.Contains(t, body, `value="Dulces SA"`)
	assert.Len(t, f.remote.bodies("/api/ingredients"), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestBatches_CrearEnviaIngredientesVacios(t *testing.T) {
	f := setup(t, nil)

	resp, _ := postForm(t, f.app, "/batches", url.Values{
		"batch_number": {"B-002"}, "production_date": {"2024-03-05"},
		"quantity_produced": {"80"}, "quality_grade": {"B"}, "run_hours": {"7.5"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	bodies := f.remote.bodies("/api/batches")
	require.Len(t, bodies, 1)
	assert.Equal(t, map[string]any{}, bodies[0]["ingredients_used"])
	assert.Equal(t, "B", bodies[0]["quality_grade"])
	assert.Equal(t, 7.5, bodies[0]["run_hours"])
	assert.NotContains(t, bodies[0], "break_hours")
}

func TestBatches_GradoBadge(t *testing.T) {
	f := setup(t, nil)

	_, body := get(t, f.app, "/batches")
	assert.Contains(t, body, `<span class="badge badge-primary">A</span>`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_BadgesYNombres(t *testing.T) {
	f := setup(t, nil)

	_, body := get(t, f.app, "/inventory")
	assert.Contains(t, body, "Wheat Flour")
	assert.Contains(t, body, "Batch B-001")
	assert.Contains(t, body, `<span class="badge badge-error">Low Stock</span>`)
	assert.Contains(t, body, `<span class="badge badge-neutral">In Stock</span>`)
}

func TestInventory_CambioDeTipoLimpiaSeleccion(t *testing.T) {
	f := setup(t, nil)

	_, body := get(t, f.app, "/inventory?form=open")
	assert.Contains(t, body, "Wheat Flour (kg)")

	resp, body := postForm(t, f.app, "/inventory/item-type", url.Values{
		"previous_item_type": {"ingredient"},
		"item_type":          {"finished_product"},
		"item_id":            {"ing-1"},
		"current_stock":      {"10"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="b-1">Batch B-001</option>`)
	assert.NotContains(t, body, "Wheat Flour (kg)")
	assert.NotContains(t, body, " selected>Batch", "el ítem elegido se limpia")
	assert.Contains(t, body, `value="10"`, "el resto de los valores se conserva")
}

func TestInventory_CrearItem(t *testing.T) {
	f := setup(t, nil)

	resp, _ := postForm(t, f.app, "/inventory", url.Values{
		"item_type": {"finished_product"}, "item_id": {"b-1"},
		"current_stock": {"12"}, "minimum_stock": {"4"}, "location": {"Shelf 2"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	bodies := f.remote.bodies("/api/inventory")
	require.Len(t, bodies, 1)
	assert.Equal(t, map[string]any{
		"item_type": "finished_product", "item_id": "b-1",
		"current_stock": 12.0, "minimum_stock": 4.0, "location": "Shelf 2",
	}, bodies[0])
}

func TestInventory_StockNegativoRechazado(t *testing.T) {
	f := setup(t, nil)

	resp, body := postForm(t, f.app, "/inventory", url.Values{
		"item_type": {"ingredient"}, "item_id": {"ing-1"},
		"current_stock": {"-1"}, "minimum_stock": {"4"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Value cannot be negative.")
	assert.Empty(t, f.remote.bodies("/api/inventory"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_DevuelvePDF(t *testing.T) {
	f := setup(t, nil)

	resp, body := get(t, f.app, "/inventory/report.pdf")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock-report.pdf")
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}

func TestReport_ErrorDelGenerador(t *testing.T) {
	remote := newRemoteAPI()
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)
	s := store.NewDataStore(apiclient.NewClient(srv.URL, 2*time.Second), nil)
	views, err := apphttp.NewRenderer()
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.RouterDeps{Store: s, Reports: stubReports{err: errors.New("sin fuentes")}, Renderer: views})
	resp, body := get(t, app, "/inventory/report.pdf")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "REPORT_FAILED")
}

func TestRutaDesconocida(t *testing.T) {
	f := setup(t, nil)

	resp, body := get(t, f.app, "/no-existe")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentación Swagger
// ──────────────────────────────────────────────────────────────────────────────

const swaggerFile = "../../../docs/swagger.json"

func TestSwagger_DocumentaRutasRegistradas(t *testing.T) {
	raw, err := os.ReadFile(swaggerFile)
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Paths)

	f := setup(t, nil)
	registered := make(map[string]bool)
	for _, r := range f.app.GetRoutes(true) {
		registered[r.Method+" "+r.Path] = true
	}
	for path, ops := range doc.Paths {
		for method := range ops {
			assert.True(t, registered[strings.ToUpper(method)+" "+path], "%s %s documentado pero no registrado", method, path)
		}
	}
}

func TestSwagger_MontadoNoAfectaRutas(t *testing.T) {
	remote := newRemoteAPI()
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)
	views, err := apphttp.NewRenderer()
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.RouterDeps{
		Store:       store.NewDataStore(apiclient.NewClient(srv.URL, 2*time.Second), nil),
		Reports:     stubReports{},
		Renderer:    views,
		AppName:     "production-dashboard",
		SwaggerFile: swaggerFile,
	})
	resp, body := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
}
