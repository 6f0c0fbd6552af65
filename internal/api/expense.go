package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finlens/finlens/internal/model"
)

// ListExpenses fetches all expenses for the authenticated user.
func (c *Client) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := c.getJSON(ctx, pathExpenses, &expenses); err != nil {
		return nil, c.classify(pathExpenses, err)
	}
	return expenses, nil
}

// AddExpense creates an expense and returns the stored record.
func (c *Client) AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var created model.Expense
	if err := c.postJSON(ctx, pathExpenses, expense, &created); err != nil {
		return nil, c.classify(pathExpenses, err)
	}
	return &created, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s%d", pathExpenses, id)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil, "")
	if err != nil {
		return err
	}
	if err := c.send(req, nil); err != nil {
		return c.classify(endpoint, err)
	}
	return nil
}

// DownloadExpenses fetches the expense export as an opaque spreadsheet
// blob. The caller is responsible for writing it to disk.
func (c *Client) DownloadExpenses(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathExpenseDownload, nil, "")
	if err != nil {
		return nil, err
	}

	data, err := c.sendRaw(req)
	if err != nil {
		return nil, c.classify(pathExpenseDownload, err)
	}
	return data, nil
}
