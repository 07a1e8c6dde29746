package models

// InventoryItem represents one product entry in the inventory snapshot.
// JSON field names are camelCase to stay compatible with the dashboard
// clients and the persisted document layout.
type InventoryItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(64)" validate:"required"`
	Product   string  `json:"product" validate:"required"`
	UnitCost  float64 `json:"unitCost" validate:"gte=0"`
	StockLeft int     `json:"stockLeft" validate:"gte=0"`
	Image     string  `json:"image,omitempty"`

	// Position records the entry's place in the snapshot so relational
	// backends list items in the same order the snapshot was written.
	Position int `json:"-" gorm:"index"`
}
