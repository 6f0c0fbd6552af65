package api

import (
	"context"

	"github.com/finlens/finlens/internal/model"
)

// GetDashboard fetches the aggregate summary: totals, recent transactions,
// and the rolling 30-day expense and 60-day income windows.
func (c *Client) GetDashboard(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary
	if err := c.getJSON(ctx, pathDashboard, &summary); err != nil {
		return nil, c.classify(pathDashboard, err)
	}
	return &summary, nil
}
