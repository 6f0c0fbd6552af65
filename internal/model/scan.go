package model

// ScanResult is the OCR service's reading of a receipt image: extracted
// amounts keyed by category name. Zero or negative amounts are extraction
// noise and are skipped on import.
type ScanResult struct {
	Merchant    string             `json:"merchant,omitempty"`
	Categorized map[string]float64 `json:"categorized"`
}
