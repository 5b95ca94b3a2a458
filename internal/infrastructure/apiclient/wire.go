package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// ── Estructuras del protocolo JSON de la API remota ──────────────────────────

type ingredientWire struct {
	ID          flexID          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Supplier    *string         `json:"supplier"`
	CreatedAt   timestamp       `json:"created_at"`
}

type batchWire struct {
	ID               flexID                     `json:"id"`
	BatchNumber      string                     `json:"batch_number"`
	ProductionDate   string                     `json:"production_date"`
	StartDate        *string                    `json:"start_date"`
	StartTime        *string                    `json:"start_time"`
	StopDate         *string                    `json:"stop_date"`
	StopTime         *string                    `json:"stop_time"`
	RunHours         decimal.NullDecimal        `json:"run_hours"`
	BreakHours       decimal.NullDecimal        `json:"break_hours"`
	TotalHours       decimal.NullDecimal        `json:"total_hours"`
	QuantityProduced decimal.Decimal            `json:"quantity_produced"`
	IngredientsUsed  map[string]decimal.Decimal `json:"ingredients_used"`
	QualityGrade     string                     `json:"quality_grade"`
	Notes            *string                    `json:"notes"`
	CreatedAt        timestamp                  `json:"created_at"`
}

type inventoryWire struct {
	ID           flexID          `json:"id"`
	ItemType     string          `json:"item_type"`
	ItemID       flexID          `json:"item_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Location     *string         `json:"location"`
	LastUpdated  timestamp       `json:"last_updated"`
}

type dashboardWire struct {
	TotalIngredients    int             `json:"total_ingredients"`
	TotalBatches        int             `json:"total_batches"`
	TotalInventoryItems int             `json:"total_inventory_items"`
	LowStockCount       int             `json:"low_stock_count"`
	LowStockItems       []inventoryWire `json:"low_stock_items"`
	RecentBatches       []batchWire     `json:"recent_batches"`
}

// errorWire cubre los formatos de error habituales ({"detail": ...}, {"message": ...}, {"error": ...}).
type errorWire struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorWire) text() string {
	if s, ok := e.Detail.(string); ok && s != "" {
		return s
	}
	if e.Detail != nil {
		if b, err := json.Marshal(e.Detail); err == nil {
			return string(b)
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// flexID acepta identificadores como string o como número JSON; la API los asigna y son opacos.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", string(b), err)
	}
	*f = flexID(n.String())
	return nil
}

// timestampLayouts formatos aceptados: RFC 3339 y las variantes ISO-8601 sin zona
// que emiten los back ends en Python (datetime.isoformat()).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timestamp tolera los formatos de timestampLayouts; null o "" quedan en cero.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp inválido %s: %w", string(b), err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp con formato desconocido: %q", s)
}

// ── Conversión wire → entidad ────────────────────────────────────────────────

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func (w ingredientWire) toEntity() entity.Ingredient {
	return entity.Ingredient{
		ID:          string(w.ID),
		Name:        w.Name,
		Unit:        w.Unit,
		CostPerUnit: w.CostPerUnit,
		Supplier:    deref(w.Supplier),
		CreatedAt:   w.CreatedAt.Time,
	}
}

func (w batchWire) toEntity() entity.ProductionBatch {
	used := make(map[string]decimal.Decimal, len(w.IngredientsUsed))
	for k, v := range w.IngredientsUsed {
		used[k] = v
	}
	return entity.ProductionBatch{
		ID:               string(w.ID),
		BatchNumber:      w.BatchNumber,
		ProductionDate:   w.ProductionDate,
		StartDate:        deref(w.StartDate),
		StartTime:        deref(w.StartTime),
		StopDate:         deref(w.StopDate),
		StopTime:         deref(w.StopTime),
		RunHours:         nullable(w.RunHours),
		BreakHours:       nullable(w.BreakHours),
		TotalHours:       nullable(w.TotalHours),
		QuantityProduced: w.QuantityProduced,
		IngredientsUsed:  used,
		QualityGrade:     w.QualityGrade,
		Notes:            deref(w.Notes),
		CreatedAt:        w.CreatedAt.Time,
	}
}

func (w inventoryWire) toEntity() entity.InventoryItem {
	return entity.InventoryItem{
		ID:           string(w.ID),
		ItemType:     w.ItemType,
		ItemID:       string(w.ItemID),
		CurrentStock: w.CurrentStock,
		MinimumStock: w.MinimumStock,
		Location:     deref(w.Location),
		LastUpdated:  w.LastUpdated.Time,
	}
}

func (w dashboardWire) toEntity() entity.DashboardSummary {
	low := make([]entity.InventoryItem, 0, len(w.LowStockItems))
	for _, it := range w.LowStockItems {
		low = append(low, it.toEntity())
	}
	recent := make([]entity.ProductionBatch, 0, len(w.RecentBatches))
	for _, b := range w.RecentBatches {
		recent = append(recent, b.toEntity())
	}
	return entity.DashboardSummary{
		TotalIngredients:    w.TotalIngredients,
		TotalBatches:        w.TotalBatches,
		TotalInventoryItems: w.TotalInventoryItems,
		LowStockCount:       w.LowStockCount,
		LowStockItems:       low,
		RecentBatches:       recent,
	}
}
