package api

import (
	"context"

	"github.com/finlens/finlens/internal/model"
)

// ListBudgets fetches all budgets for the authenticated user.
func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if err := c.getJSON(ctx, pathBudgetAll, &budgets); err != nil {
		return nil, c.classify(pathBudgetAll, err)
	}
	return budgets, nil
}

// SetBudget creates or replaces the budget for a category. The category is
// the natural key; the backend upserts.
func (c *Client) SetBudget(ctx context.Context, budget model.Budget) (*model.Budget, error) {
	var stored model.Budget
	if err := c.postJSON(ctx, pathBudgetSet, budget, &stored); err != nil {
		return nil, c.classify(pathBudgetSet, err)
	}
	return &stored, nil
}

// BudgetAlerts fetches the server-computed alerts for categories near or
// past their budget. The client renders the classification without
// recomputing it.
func (c *Client) BudgetAlerts(ctx context.Context) ([]model.BudgetAlert, error) {
	var alerts []model.BudgetAlert
	if err := c.getJSON(ctx, pathBudgetAlerts, &alerts); err != nil {
		return nil, c.classify(pathBudgetAlerts, err)
	}
	return alerts, nil
}
