package dto

// CreateInventoryItemRequest body de POST /api/inventory en la API remota.
type CreateInventoryItemRequest struct {
	ItemType     string  `json:"item_type"`
	ItemID       string  `json:"item_id"`
	CurrentStock float64 `json:"current_stock"`
	MinimumStock float64 `json:"minimum_stock"`
	Location     string  `json:"location,omitempty"`
}
