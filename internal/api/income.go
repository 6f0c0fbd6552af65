package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finlens/finlens/internal/model"
)

// ListIncomes fetches all incomes for the authenticated user.
func (c *Client) ListIncomes(ctx context.Context) ([]model.Income, error) {
	var incomes []model.Income
	if err := c.getJSON(ctx, pathIncomes, &incomes); err != nil {
		return nil, c.classify(pathIncomes, err)
	}
	return incomes, nil
}

// AddIncome creates an income and returns the stored record.
func (c *Client) AddIncome(ctx context.Context, income model.Income) (*model.Income, error) {
	var created model.Income
	if err := c.postJSON(ctx, pathIncomes, income, &created); err != nil {
		return nil, c.classify(pathIncomes, err)
	}
	return &created, nil
}

// DeleteIncome removes an income by id.
func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s%d", pathIncomes, id)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil, "")
	if err != nil {
		return err
	}
	if err := c.send(req, nil); err != nil {
		return c.classify(endpoint, err)
	}
	return nil
}

// DownloadIncomes fetches the income export as an opaque spreadsheet blob.
func (c *Client) DownloadIncomes(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathIncomeDownload, nil, "")
	if err != nil {
		return nil, err
	}

	data, err := c.sendRaw(req)
	if err != nil {
		return nil, c.classify(pathIncomeDownload, err)
	}
	return data, nil
}
