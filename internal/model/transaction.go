// Package model defines the records exchanged with the FinLens backend.
package model

// Expense is a single spending record. The backend owns its lifecycle; the
// client only creates, lists, and deletes.
type Expense struct {
	ID       int64   `json:"id,omitempty"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
	Amount   float64 `json:"amount"`
	Date     Date    `json:"date"`
}

// Income is a single earning record, mirroring Expense with a source instead
// of a category.
type Income struct {
	ID     int64   `json:"id,omitempty"`
	Source string  `json:"source"`
	Icon   string  `json:"icon"`
	Amount float64 `json:"amount"`
	Date   Date    `json:"date"`
}
