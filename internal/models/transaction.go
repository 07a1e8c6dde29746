package models

import "time"

// TransactionStatusCompleted is the only status a transaction is ever
// created with; there are no pending or failed transaction states.
const TransactionStatusCompleted = "completed"

// TransactionItem is the denormalized snapshot of one sold line item: the
// price and name are the ones used at sale time, independent of later
// inventory changes.
type TransactionItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Transaction is an immutable record of a reconciled sale. Records are only
// ever appended, never mutated or deleted.
type Transaction struct {
	ID            string            `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Items         []TransactionItem `json:"items" gorm:"serializer:json"`
	Customer      string            `json:"customer"`
	PaymentMethod string            `json:"paymentMethod"`
	Total         float64           `json:"total"`
	CreatedAt     time.Time         `json:"createdAt"`
	Status        string            `json:"status"`
}
