package model

// RecentTransaction is one row of the dashboard's combined recent activity.
// Type is either "income" or "expense"; Source and Category are mutually
// exclusive depending on Type.
type RecentTransaction struct {
	Type     string  `json:"type"`
	Source   string  `json:"source,omitempty"`
	Category string  `json:"category,omitempty"`
	Icon     string  `json:"icon"`
	Amount   float64 `json:"amount"`
	Date     Date    `json:"date"`
}

// TransactionWindow holds the transactions inside a rolling date window.
type TransactionWindow struct {
	Transactions []RecentTransaction `json:"transactions"`
}

// DashboardSummary is the aggregate returned by GET /dashboard. The JSON
// keys mirror the backend's mixed casing exactly.
type DashboardSummary struct {
	TotalBalance       float64             `json:"totalBalance"`
	TotalIncome        float64             `json:"totalIncome"`
	TotalExpense       float64             `json:"totalExpense"`
	RecentTransactions []RecentTransaction `json:"RecentTransactions"`
	Last30DaysExpenses TransactionWindow   `json:"last30DaysExpenses"`
	Last60DaysIncome   TransactionWindow   `json:"last60DaysIncome"`
}
