package format

import (
	"sort"

	"github.com/finlens/finlens/internal/model"
)

// ExpenseBarPoint is one bar in the per-category expense chart.
type ExpenseBarPoint struct {
	Category string
	Amount   float64
}

// IncomeBarPoint is one bar in the income-over-time chart.
type IncomeBarPoint struct {
	Month  string
	Source string
	Amount float64
}

// ExpenseLinePoint is one point in the expense-over-time chart.
type ExpenseLinePoint struct {
	Month    string
	Category string
	Amount   float64
}

// ExpenseBarSeries maps expenses to bar-chart points, preserving input
// order.
func ExpenseBarSeries(expenses []model.Expense) []ExpenseBarPoint {
	points := make([]ExpenseBarPoint, 0, len(expenses))
	for _, e := range expenses {
		points = append(points, ExpenseBarPoint{
			Category: e.Category,
			Amount:   e.Amount,
		})
	}
	return points
}

// IncomeBarSeries maps incomes to bar-chart points ordered by date
// ascending, labeled with the shared day-month format.
func IncomeBarSeries(incomes []model.Income) []IncomeBarPoint {
	sorted := make([]model.Income, len(incomes))
	copy(sorted, incomes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	points := make([]IncomeBarPoint, 0, len(sorted))
	for _, in := range sorted {
		points = append(points, IncomeBarPoint{
			Month:  DayMonth(in.Date.Time),
			Source: in.Source,
			Amount: in.Amount,
		})
	}
	return points
}

// ExpenseLineSeries maps expenses to line-chart points ordered by date
// ascending, labeled with the shared day-month format.
func ExpenseLineSeries(expenses []model.Expense) []ExpenseLinePoint {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	points := make([]ExpenseLinePoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, ExpenseLinePoint{
			Month:    DayMonth(e.Date.Time),
			Category: e.Category,
			Amount:   e.Amount,
		})
	}
	return points
}
