package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finlens/internal/model"
)

func day(y int, m time.Month, d int) model.Date {
	return model.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestExpenseBarSeries_PreservesInputOrder(t *testing.T) {
	expenses := []model.Expense{
		{Category: "Transport", Amount: 50, Date: day(2025, 4, 12)},
		{Category: "Groceries", Amount: 120, Date: day(2025, 4, 9)},
		{Category: "Rent", Amount: 9000, Date: day(2025, 4, 1)},
	}

	points := ExpenseBarSeries(expenses)

	require.Len(t, points, 3)
	assert.Equal(t, "Transport", points[0].Category)
	assert.Equal(t, "Groceries", points[1].Category)
	assert.Equal(t, "Rent", points[2].Category)
	assert.Equal(t, 120.0, points[1].Amount)
}

func TestIncomeBarSeries_SortsByDateAscending(t *testing.T) {
	incomes := []model.Income{
		{Source: "Freelance", Amount: 500, Date: day(2025, 4, 12)},
		{Source: "Salary", Amount: 40000, Date: day(2025, 4, 1)},
		{Source: "Dividends", Amount: 75, Date: day(2025, 4, 9)},
	}

	points := IncomeBarSeries(incomes)

	require.Len(t, points, 3)
	assert.Equal(t, "1st Apr", points[0].Month)
	assert.Equal(t, "9th Apr", points[1].Month)
	assert.Equal(t, "12th Apr", points[2].Month)
	assert.Equal(t, "Salary", points[0].Source)

	// Input slice untouched
	assert.Equal(t, "Freelance", incomes[0].Source)
}

func TestIncomeBarSeries_StableForEqualDates(t *testing.T) {
	incomes := []model.Income{
		{Source: "First", Amount: 1, Date: day(2025, 4, 9)},
		{Source: "Second", Amount: 2, Date: day(2025, 4, 9)},
	}

	points := IncomeBarSeries(incomes)

	require.Len(t, points, 2)
	assert.Equal(t, "First", points[0].Source)
	assert.Equal(t, "Second", points[1].Source)
}

func TestExpenseLineSeries_SortsAndLabels(t *testing.T) {
	expenses := []model.Expense{
		{Category: "Transport", Amount: 50, Date: day(2025, 4, 12)},
		{Category: "Groceries", Amount: 120, Date: day(2025, 4, 9)},
	}

	points := ExpenseLineSeries(expenses)

	require.Len(t, points, 2)
	assert.Equal(t, "9th Apr", points[0].Month)
	assert.Equal(t, "Groceries", points[0].Category)
	assert.Equal(t, "12th Apr", points[1].Month)
	assert.Equal(t, "Transport", points[1].Category)
}

func TestSeries_EmptyInput(t *testing.T) {
	assert.Empty(t, ExpenseBarSeries(nil))
	assert.Empty(t, IncomeBarSeries(nil))
	assert.Empty(t, ExpenseLineSeries(nil))
}
