package receipt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finlens/internal/api"
	"github.com/finlens/finlens/internal/model"
)

func TestImport_SkipsNonPositiveAmounts(t *testing.T) {
	mock := &api.MockClient{}
	importer := NewImporter(mock)

	added, err := importer.Import(context.Background(), &model.ScanResult{
		Categorized: map[string]float64{
			"Groceries": 100,
			"Transport": 0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, added)
	require.Len(t, mock.AddExpenseCalls, 1, "zero-amount entries must not produce a call")
	assert.Equal(t, "Groceries", mock.AddExpenseCalls[0].Category)
	assert.Equal(t, 100.0, mock.AddExpenseCalls[0].Amount)
}

func TestImport_DatesEntriesToday(t *testing.T) {
	mock := &api.MockClient{}
	importer := NewImporter(mock)

	_, err := importer.Import(context.Background(), &model.ScanResult{
		Categorized: map[string]float64{"Snacks": 45},
	})
	require.NoError(t, err)

	require.Len(t, mock.AddExpenseCalls, 1)
	assert.Equal(t, model.Today().String(), mock.AddExpenseCalls[0].Date.String())
	assert.Empty(t, mock.AddExpenseCalls[0].Icon)
}

func TestImport_ProcessesCategoriesInSortedOrder(t *testing.T) {
	mock := &api.MockClient{}
	importer := NewImporter(mock)

	added, err := importer.Import(context.Background(), &model.ScanResult{
		Categorized: map[string]float64{
			"Transport": 50,
			"Groceries": 100,
			"Snacks":    20,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	require.Len(t, mock.AddExpenseCalls, 3)
	assert.Equal(t, "Groceries", mock.AddExpenseCalls[0].Category)
	assert.Equal(t, "Snacks", mock.AddExpenseCalls[1].Category)
	assert.Equal(t, "Transport", mock.AddExpenseCalls[2].Category)
}

func TestImport_StopsAtFirstFailureKeepingEarlierItems(t *testing.T) {
	boom := errors.New("backend down")
	mock := &api.MockClient{}
	mock.AddExpenseFn = func(_ context.Context, expense model.Expense) (*model.Expense, error) {
		if expense.Category == "Snacks" {
			return nil, boom
		}
		return &expense, nil
	}
	importer := NewImporter(mock)

	added, err := importer.Import(context.Background(), &model.ScanResult{
		Categorized: map[string]float64{
			"Groceries": 100,
			"Snacks":    20,
			"Transport": 50,
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, added, "items before the failure stay created")
	assert.Len(t, mock.AddExpenseCalls, 2, "no further calls after a failure")
}

func TestImport_EmptyResult(t *testing.T) {
	mock := &api.MockClient{}
	importer := NewImporter(mock)

	added, err := importer.Import(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, added)

	added, err = importer.Import(context.Background(), &model.ScanResult{})
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Empty(t, mock.AddExpenseCalls)
}

func TestImport_ReportsProgress(t *testing.T) {
	mock := &api.MockClient{}
	importer := NewImporter(mock)

	var seen []string
	importer.Progress = func(category string, _ float64) {
		seen = append(seen, category)
	}

	_, err := importer.Import(context.Background(), &model.ScanResult{
		Categorized: map[string]float64{
			"Groceries": 100,
			"Transport": -5,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries"}, seen)
}
