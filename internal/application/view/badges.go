// Package view proyecta una instantánea del store en modelos de página listos para renderizar.
// No guarda estado: toda la información viene de store.Snapshot.
package view

import (
	"fmt"

	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

// Tone énfasis visual de un badge.
type Tone string

const (
	TonePrimary   Tone = "primary"
	ToneSecondary Tone = "secondary"
	ToneError     Tone = "error"
	ToneNeutral   Tone = "neutral"
)

// Etiquetas literales de estado de inventario.
const (
	LabelLowStock = "Low Stock"
	LabelInStock  = "In Stock"
)

// Badge etiqueta con énfasis.
type Badge struct {
	Label string
	Tone  Tone
}

// GradeBadge A → primary, B → secondary, cualquier otro valor → error.
func GradeBadge(grade string) Badge {
	switch grade {
	case entity.GradeA:
		return Badge{Label: grade, Tone: TonePrimary}
	case entity.GradeB:
		return Badge{Label: grade, Tone: ToneSecondary}
	default:
		return Badge{Label: grade, Tone: ToneError}
	}
}

// StockBadge "Low Stock" (error) si current_stock <= minimum_stock; si no, "In Stock" (neutral).
func StockBadge(item entity.InventoryItem) Badge {
	if item.IsLowStock() {
		return Badge{Label: LabelLowStock, Tone: ToneError}
	}
	return Badge{Label: LabelInStock, Tone: ToneNeutral}
}

// Banner aviso de stock bajo del dashboard.
type Banner struct {
	Show  bool
	Count int
	Text  string
}

// LowStockBanner solo se muestra con low_stock_count > 0.
func LowStockBanner(summary entity.DashboardSummary) Banner {
	n := summary.LowStockCount
	if n <= 0 {
		return Banner{}
	}
	text := fmt.Sprintf("%d items are at or below minimum stock", n)
	if n == 1 {
		text = "1 item is at or below minimum stock"
	}
	return Banner{Show: true, Count: n, Text: text}
}
