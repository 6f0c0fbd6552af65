package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finlens/internal/model"
)

func TestWindowExpenses(t *testing.T) {
	window := model.TransactionWindow{
		Transactions: []model.RecentTransaction{
			{Category: "Rent", Amount: 9000, Date: model.NewDate(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))},
			{Category: "Groceries", Amount: 120, Date: model.NewDate(time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC))},
		},
	}

	expenses := windowExpenses(window)

	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Category)
	assert.Equal(t, 9000.0, expenses[0].Amount)
	assert.Equal(t, "2025-04-09", expenses[1].Date.String())
}

func TestWindowIncomes(t *testing.T) {
	window := model.TransactionWindow{
		Transactions: []model.RecentTransaction{
			{Source: "Salary", Amount: 40000, Date: model.NewDate(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))},
		},
	}

	incomes := windowIncomes(window)

	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Source)
}

func TestBar(t *testing.T) {
	full := bar(100, 100)
	assert.Equal(t, chartWidth, strings.Count(full, "█"))

	half := bar(50, 100)
	assert.Equal(t, chartWidth/2, strings.Count(half, "█"))

	empty := bar(10, 0)
	assert.Equal(t, chartWidth, strings.Count(empty, "░"))
}
