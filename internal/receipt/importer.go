// Package receipt turns OCR scan results into stored expenses.
package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/finlens/finlens/internal/model"
)

// ExpenseCreator is the slice of the API surface the importer needs.
type ExpenseCreator interface {
	AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
}

// Importer files one expense per categorized line item on a scanned
// receipt. Items are submitted one at a time, each awaited before the next;
// a failure mid-sequence leaves the earlier items created. Only the
// aggregate count is reported back.
type Importer struct {
	creator ExpenseCreator
	logger  *slog.Logger

	// Progress, when set, is invoked after each submitted item.
	Progress func(category string, amount float64)
}

// NewImporter creates an importer backed by the given API client.
func NewImporter(creator ExpenseCreator) *Importer {
	return &Importer{
		creator: creator,
		logger:  slog.Default().With("component", "receipt"),
	}
}

// Import creates one expense per positive categorized amount, dated today,
// and returns how many were added. Zero and negative amounts are extraction
// noise and are skipped without a call. Entries are processed in sorted
// category order so runs are deterministic.
func (i *Importer) Import(ctx context.Context, result *model.ScanResult) (int, error) {
	if result == nil || len(result.Categorized) == 0 {
		return 0, nil
	}

	categories := make([]string, 0, len(result.Categorized))
	for category := range result.Categorized {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	added := 0
	for _, category := range categories {
		amount := result.Categorized[category]
		if amount <= 0 {
			i.logger.Debug("Skipping non-positive amount", "category", category, "amount", amount)
			continue
		}

		expense := model.Expense{
			Category: category,
			Amount:   amount,
			Date:     model.Today(),
		}
		if _, err := i.creator.AddExpense(ctx, expense); err != nil {
			return added, fmt.Errorf("failed to add expense for %s: %w", category, err)
		}
		added++

		if i.Progress != nil {
			i.Progress(category, amount)
		}
	}

	return added, nil
}
