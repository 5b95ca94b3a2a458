package view

import (
	"fmt"

	"github.com/jhoicas/produccion-dashboard/internal/application/forms"
	"github.com/jhoicas/produccion-dashboard/internal/application/store"
	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// Pestañas del dashboard.
const (
	TabDashboard   = "dashboard"
	TabIngredients = "ingredients"
	TabBatches     = "batches"
	TabInventory   = "inventory"
)

// Layout datos comunes a todas las páginas.
type Layout struct {
	AppName  string
	Active   string
	Notices  []store.Notice
	LoadedAt string
}

// FormState estado de un formulario: abierto/colapsado, valores, errores de campo y aviso de fallo.
type FormState[T any] struct {
	Open    bool
	Values  T
	Errors  forms.FieldErrors
	Failure string
}

// Option opción de un <select>.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ── Filas ─────────────────────────────────────────────────────────────────────

type IngredientRow struct {
	ID          string
	Name        string
	Unit        string
	CostPerUnit string
	Supplier    string
	CreatedAt   string
}

type BatchRow struct {
	ID               string
	BatchNumber      string
	ProductionDate   string
	Start            string
	Stop             string
	RunHours         string
	BreakHours       string
	TotalHours       string
	QuantityProduced string
	Grade            Badge
	Notes            string
	CreatedAt        string
}

type InventoryRow struct {
	ID           string
	Name         string
	ItemType     string
	CurrentStock string
	MinimumStock string
	Location     string
	LastUpdated  string
	Status       Badge
}

// ── Páginas ───────────────────────────────────────────────────────────────────

// DashboardPage resumen: conteos, banner de stock bajo, ítems bajos y lotes recientes.
type DashboardPage struct {
	Layout
	TotalIngredients    int
	TotalBatches        int
	TotalInventoryItems int
	LowStockCount       int
	Banner              Banner
	LowStock            []InventoryRow
	RecentBatches       []BatchRow
}

type IngredientsPage struct {
	Layout
	Rows []IngredientRow
	Form FormState[forms.IngredientForm]
}

type BatchesPage struct {
	Layout
	Rows   []BatchRow
	Form   FormState[forms.BatchForm]
	Grades []Option
}

type InventoryPage struct {
	Layout
	Rows        []InventoryRow
	Form        FormState[forms.InventoryForm]
	ItemTypes   []Option
	ItemOptions []Option
	ItemLabel   string // "Ingredient" | "Batch"
}

// ── Builders ──────────────────────────────────────────────────────────────────

func layout(snap store.Snapshot, appName, active string) Layout {
	loaded := ""
	if !snap.LoadedAt.IsZero() {
		loaded = FormatTime(snap.LoadedAt)
	}
	return Layout{AppName: appName, Active: active, Notices: snap.Notices, LoadedAt: loaded}
}

// BuildDashboard arma la pestaña de resumen.
func BuildDashboard(snap store.Snapshot, appName string) DashboardPage {
	ix := NewIndex(snap.Ingredients, snap.Batches)
	sum := snap.Dashboard
	return DashboardPage{
		Layout:              layout(snap, appName, TabDashboard),
		TotalIngredients:    sum.TotalIngredients,
		TotalBatches:        sum.TotalBatches,
		TotalInventoryItems: sum.TotalInventoryItems,
		LowStockCount:       sum.LowStockCount,
		Banner:              LowStockBanner(sum),
		LowStock:            inventoryRows(ix, sum.LowStockItems),
		RecentBatches:       batchRows(sum.RecentBatches),
	}
}

// BuildIngredients arma la pestaña de ingredientes.
func BuildIngredients(snap store.Snapshot, appName string, form FormState[forms.IngredientForm]) IngredientsPage {
	rows := make([]IngredientRow, 0, len(snap.Ingredients))
	for _, ing := range snap.Ingredients {
		rows = append(rows, IngredientRow{
			ID:          ing.ID,
			Name:        ing.Name,
			Unit:        ing.Unit,
			CostPerUnit: FormatMoney(ing.CostPerUnit),
			Supplier:    orDash(ing.Supplier),
			CreatedAt:   FormatTime(ing.CreatedAt),
		})
	}
	return IngredientsPage{Layout: layout(snap, appName, TabIngredients), Rows: rows, Form: form}
}

// BuildBatches arma la pestaña de lotes.
func BuildBatches(snap store.Snapshot, appName string, form FormState[forms.BatchForm]) BatchesPage {
	grades := make([]Option, 0, len(entity.QualityGrades))
	for _, g := range entity.QualityGrades {
		grades = append(grades, Option{Value: g, Label: "Grade " + g, Selected: g == form.Values.QualityGrade})
	}
	return BatchesPage{
		Layout: layout(snap, appName, TabBatches),
		Rows:   batchRows(snap.Batches),
		Form:   form,
		Grades: grades,
	}
}

// BuildInventory arma la pestaña de inventario. El selector de ítems depende del tipo elegido.
func BuildInventory(snap store.Snapshot, appName string, form FormState[forms.InventoryForm]) InventoryPage {
	ix := NewIndex(snap.Ingredients, snap.Batches)
	itemType := form.Values.ItemType

	types := []Option{
		{Value: entity.ItemTypeIngredient, Label: ItemTypeLabel(entity.ItemTypeIngredient)},
		{Value: entity.ItemTypeFinishedProduct, Label: ItemTypeLabel(entity.ItemTypeFinishedProduct)},
	}
	for i := range types {
		types[i].Selected = types[i].Value == itemType
	}

	label := "Ingredient"
	if itemType == entity.ItemTypeFinishedProduct {
		label = "Batch"
	}

	return InventoryPage{
		Layout:      layout(snap, appName, TabInventory),
		Rows:        inventoryRows(ix, snap.Inventory),
		Form:        form,
		ItemTypes:   types,
		ItemOptions: ItemOptions(snap, itemType, form.Values.ItemID),
		ItemLabel:   label,
	}
}

// ItemOptions opciones del selector de ítem: ingredientes para "ingredient", lotes para "finished_product".
func ItemOptions(snap store.Snapshot, itemType, selectedID string) []Option {
	switch itemType {
	case entity.ItemTypeIngredient:
		opts := make([]Option, 0, len(snap.Ingredients))
		for _, ing := range snap.Ingredients {
			opts = append(opts, Option{Value: ing.ID, Label: fmt.Sprintf("%s (%s)", ing.Name, ing.Unit), Selected: ing.ID == selectedID})
		}
		return opts
	case entity.ItemTypeFinishedProduct:
		opts := make([]Option, 0, len(snap.Batches))
		for _, b := range snap.Batches {
			opts = append(opts, Option{Value: b.ID, Label: batchLabel(b), Selected: b.ID == selectedID})
		}
		return opts
	default:
		return nil
	}
}

func batchRows(batches []entity.ProductionBatch) []BatchRow {
	rows := make([]BatchRow, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, BatchRow{
			ID:               b.ID,
			BatchNumber:      b.BatchNumber,
			ProductionDate:   b.ProductionDate,
			Start:            joinDateTime(b.StartDate, b.StartTime),
			Stop:             joinDateTime(b.StopDate, b.StopTime),
			RunHours:         FormatOptionalAmount(b.RunHours),
			BreakHours:       FormatOptionalAmount(b.BreakHours),
			TotalHours:       FormatOptionalAmount(b.TotalHours),
			QuantityProduced: FormatAmount(b.QuantityProduced),
			Grade:            GradeBadge(b.QualityGrade),
			Notes:            orDash(b.Notes),
			CreatedAt:        FormatTime(b.CreatedAt),
		})
	}
	return rows
}

func inventoryRows(ix Index, items []entity.InventoryItem) []InventoryRow {
	rows := make([]InventoryRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, InventoryRow{
			ID:           it.ID,
			Name:         ix.ItemDisplayName(it),
			ItemType:     ItemTypeLabel(it.ItemType),
			CurrentStock: FormatAmount(it.CurrentStock),
			MinimumStock: FormatAmount(it.MinimumStock),
			Location:     orDash(it.Location),
			LastUpdated:  FormatTime(it.LastUpdated),
			Status:       StockBadge(it),
		})
	}
	return rows
}

func joinDateTime(date, clock string) string {
	switch {
	case date == "" && clock == "":
		return emptyCell
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + " " + clock
	}
}
