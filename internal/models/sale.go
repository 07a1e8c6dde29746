package models

// SaleLine is a single requested line item in a sale. A line is resolved
// against the inventory by display name or by id, whichever matches first.
type SaleLine struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image,omitempty"`
}

// SaleRequest is the payload accepted by the sale reconciliation operation.
type SaleRequest struct {
	Customer      string     `json:"customer" validate:"required"`
	Items         []SaleLine `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string     `json:"paymentMethod"`
}
