package dto

import "time"

// SnapshotResponse respuesta de GET /api/snapshot: conteos del store y avisos vigentes.
type SnapshotResponse struct {
	LoadedAt        *time.Time  `json:"loaded_at,omitempty"`
	Ingredients     int         `json:"ingredients"`
	Batches         int         `json:"batches"`
	InventoryItems  int         `json:"inventory_items"`
	LowStockCount   int         `json:"low_stock_count"`
	LowStockItemIDs []string    `json:"low_stock_item_ids"`
	Notices         []NoticeDTO `json:"notices"`
}

// NoticeDTO aviso de fallo visible para el usuario.
type NoticeDTO struct {
	Op      string    `json:"op"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
