// Package store contiene el almacén en memoria del dashboard: la última instantánea conocida
// de las cuatro colecciones y la mediación de toda lectura y escritura contra la API remota.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/produccion-dashboard/internal/application/dto"
	"github.com/jhoicas/produccion-dashboard/internal/application/ports"
	"github.com/jhoicas/produccion-dashboard/internal/domain"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
	"github.com/jhoicas/produccion-dashboard/pkg/logger"
	"github.com/jhoicas/produccion-dashboard/pkg/requestid"
)

// Operaciones con aviso propio. El aviso de una operación se borra en su siguiente éxito.
const (
	OpLoadIngredients  = "load:ingredients"
	OpLoadBatches      = "load:batches"
	OpLoadInventory    = "load:inventory"
	OpLoadDashboard    = "load:dashboard"
	OpCreateIngredient = "create:ingredient"
	OpCreateBatch      = "create:batch"
	OpCreateInventory  = "create:inventory"
)

// noticeText mensajes visibles por operación.
var noticeText = map[string]string{
	OpLoadIngredients:  "Could not load ingredients. Showing the last known data.",
	OpLoadBatches:      "Could not load production batches. Showing the last known data.",
	OpLoadInventory:    "Could not load inventory. Showing the last known data.",
	OpLoadDashboard:    "Could not load the dashboard summary. Showing the last known data.",
	OpCreateIngredient: "Could not create the ingredient. Your input was kept, please try again.",
	OpCreateBatch:      "Could not create the batch. Your input was kept, please try again.",
	OpCreateInventory:  "Could not create the inventory item. Your input was kept, please try again.",
}

const msgInProgress = "A previous submission is still in progress. Please wait for it to finish."

// Notice aviso de fallo visible para el usuario.
type Notice struct {
	Op      string
	Message string
	At      time.Time
}

// Snapshot copia inmutable del estado del store. Las vistas solo leen de aquí.
type Snapshot struct {
	Ingredients []entity.Ingredient
	Batches     []entity.ProductionBatch
	Inventory   []entity.InventoryItem
	Dashboard   entity.DashboardSummary
	LoadedAt    time.Time // cero si nunca hubo una carga completa
	Notices     []Notice  // ordenados por operación
}

// DataStore único escritor de las colecciones en memoria.
//
// Toda falla (red, decodificación, HTTP no 2xx) se absorbe aquí: se registra para el
// operador vía zerolog y queda como Notice visible; nunca se propaga a la capa de vistas.
type DataStore struct {
	api ports.ProductionAPI
	log *logger.Logger
	now func() time.Time

	loadMu sync.Mutex // serializa recargas completas

	mu          sync.RWMutex
	ingredients []entity.Ingredient
	batches     []entity.ProductionBatch
	inventory   []entity.InventoryItem
	dashboard   entity.DashboardSummary
	loadedAt    time.Time
	notices     map[string]Notice

	flightMu sync.Mutex
	inFlight map[string]bool
}

// NewDataStore construye el store vacío. log puede ser nil.
func NewDataStore(api ports.ProductionAPI, log *logger.Logger) *DataStore {
	if log == nil {
		log = logger.Nop()
	}
	return &DataStore{
		api:      api,
		log:      log,
		now:      time.Now,
		notices:  make(map[string]Notice),
		inFlight: make(map[string]bool),
	}
}

// Snapshot devuelve una copia del estado actual.
func (s *DataStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notices := make([]Notice, 0, len(s.notices))
	for _, n := range s.notices {
		notices = append(notices, n)
	}
	sort.Slice(notices, func(i, j int) bool { return notices[i].Op < notices[j].Op })

	return Snapshot{
		Ingredients: append([]entity.Ingredient(nil), s.ingredients...),
		Batches:     append([]entity.ProductionBatch(nil), s.batches...),
		Inventory:   append([]entity.InventoryItem(nil), s.inventory...),
		Dashboard:   s.dashboard,
		LoadedAt:    s.loadedAt,
		Notices:     notices,
	}
}

// ── LoadAll ───────────────────────────────────────────────────────────────────

type fetchResult[T any] struct {
	value T
	err   error
}

// fetch lanza f en una goroutine y entrega el resultado por un canal con buffer.
func fetch[T any](ctx context.Context, f func(context.Context) (T, error)) <-chan fetchResult[T] {
	ch := make(chan fetchResult[T], 1)
	go func() {
		v, err := f(ctx)
		ch <- fetchResult[T]{v, err}
	}()
	return ch
}

// LoadAll lanza las cuatro lecturas en paralelo y aplica el resultado cuando todas terminan.
//
// Cada colección falla de forma independiente: una respuesta exitosa reemplaza su colección
// completa; una fallida deja el valor anterior y registra su aviso.
// Devuelve true si las cuatro lecturas tuvieron éxito.
func (s *DataStore) LoadAll(ctx context.Context) bool {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if requestid.From(ctx) == "" {
		ctx, _ = requestid.New(ctx)
	}
	start := s.now()

	ingCh := fetch(ctx, s.api.ListIngredients)
	batchCh := fetch(ctx, s.api.ListBatches)
	invCh := fetch(ctx, s.api.ListInventory)
	dashCh := fetch(ctx, s.api.GetDashboard)

	ing := <-ingCh
	batches := <-batchCh
	inv := <-invCh
	dash := <-dashCh

	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	if s.settle(ctx, OpLoadIngredients, ing.err) {
		s.ingredients = ing.value
	} else {
		ok = false
	}
	if s.settle(ctx, OpLoadBatches, batches.err) {
		s.batches = batches.value
	} else {
		ok = false
	}
	if s.settle(ctx, OpLoadInventory, inv.err) {
		s.inventory = inv.value
	} else {
		ok = false
	}
	if dash.err == nil && dash.value == nil {
		dash.err = errors.New("store: resumen del dashboard vacío")
	}
	if s.settle(ctx, OpLoadDashboard, dash.err) {
		s.dashboard = *dash.value
	} else {
		ok = false
	}
	if ok {
		s.loadedAt = s.now()
	}

	s.log.Debug().
		Str("request_id", requestid.From(ctx)).
		Bool("ok", ok).
		Dur("elapsed", s.now().Sub(start)).
		Msg("recarga completa del store")
	return ok
}

// settle registra el resultado de una operación. Requiere s.mu tomado.
func (s *DataStore) settle(ctx context.Context, op string, err error) bool {
	if err == nil {
		delete(s.notices, op)
		return true
	}
	s.log.Error().
		Err(err).
		Str("op", op).
		Str("request_id", requestid.From(ctx)).
		Msg("fallo en la API remota")
	s.notices[op] = Notice{Op: op, Message: noticeText[op], At: s.now()}
	return false
}

// ── Creación ──────────────────────────────────────────────────────────────────

// CreateIngredient crea el ingrediente y, si tiene éxito, recarga las cuatro colecciones.
func (s *DataStore) CreateIngredient(ctx context.Context, in dto.CreateIngredientRequest) bool {
	return s.create(ctx, OpCreateIngredient, func(ctx context.Context) (string, error) {
		rec, err := s.api.CreateIngredient(ctx, in)
		if err != nil {
			return "", err
		}
		return rec.ID, nil
	})
}

// CreateBatch crea el lote y recarga todo. ingredients_used se envía siempre vacío.
func (s *DataStore) CreateBatch(ctx context.Context, in dto.CreateBatchRequest) bool {
	in.IngredientsUsed = map[string]float64{}
	return s.create(ctx, OpCreateBatch, func(ctx context.Context) (string, error) {
		rec, err := s.api.CreateBatch(ctx, in)
		if err != nil {
			return "", err
		}
		return rec.ID, nil
	})
}

// CreateInventoryItem crea el ítem de inventario y recarga todo.
func (s *DataStore) CreateInventoryItem(ctx context.Context, in dto.CreateInventoryItemRequest) bool {
	return s.create(ctx, OpCreateInventory, func(ctx context.Context) (string, error) {
		rec, err := s.api.CreateInventoryItem(ctx, in)
		if err != nil {
			return "", err
		}
		return rec.ID, nil
	})
}

// create ejecuta la petición de alta con guardia de doble envío y recarga completa tras el éxito.
func (s *DataStore) create(ctx context.Context, op string, call func(context.Context) (string, error)) bool {
	ctx, reqID := requestid.New(ctx)

	if !s.acquire(op) {
		s.log.Warn().Str("op", op).Str("request_id", reqID).Err(domain.ErrSubmitInProgress).Msg("envío duplicado descartado")
		s.mu.Lock()
		s.notices[op] = Notice{Op: op, Message: msgInProgress, At: s.now()}
		s.mu.Unlock()
		return false
	}
	defer s.release(op)

	id, err := call(ctx)

	s.mu.Lock()
	ok := s.settle(ctx, op, err)
	s.mu.Unlock()
	if !ok {
		return false
	}

	s.log.Info().Str("op", op).Str("request_id", reqID).Str("id", id).Msg("registro creado")
	s.LoadAll(ctx)
	return true
}

func (s *DataStore) acquire(op string) bool {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	if s.inFlight[op] {
		return false
	}
	s.inFlight[op] = true
	return true
}

func (s *DataStore) release(op string) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	delete(s.inFlight, op)
}

// Notice devuelve el aviso vigente de una operación.
func (s *DataStore) Notice(op string) (Notice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notices[op]
	return n, ok
}
