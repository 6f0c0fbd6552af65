package model

import "encoding/json"

// AlertStatus classifies a budget alert. The backend computes it; the client
// only renders.
type AlertStatus string

const (
	// AlertExceeded means spending has passed the budgeted amount.
	AlertExceeded AlertStatus = "EXCEEDED"
	// AlertWarning means spending is approaching the budgeted amount.
	AlertWarning AlertStatus = "WARNING"
)

// UnmarshalJSON folds the backend's NEAR_LIMIT status into AlertWarning.
func (s *AlertStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "NEAR_LIMIT" {
		raw = string(AlertWarning)
	}
	*s = AlertStatus(raw)
	return nil
}

// Budget caps monthly spending for one category. The category acts as the
// natural key; setting a budget for an existing category replaces it.
type Budget struct {
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
	Amount   float64 `json:"amount"`
}

// BudgetAlert is a server-computed warning that a category's monthly
// spending is near or past its budget.
type BudgetAlert struct {
	Category string      `json:"category"`
	Icon     string      `json:"icon"`
	Budget   float64     `json:"budget"`
	Spent    float64     `json:"spent"`
	Status   AlertStatus `json:"status"`
}
