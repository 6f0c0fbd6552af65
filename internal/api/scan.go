package api

import (
	"context"
	"net/http"

	"github.com/finlens/finlens/internal/model"
)

// ScanReceipt uploads a receipt image to the OCR service and returns the
// extracted amounts keyed by category.
func (c *Client) ScanReceipt(ctx context.Context, imagePath string) (*model.ScanResult, error) {
	body, contentType, err := multipartBody(nil, "file", imagePath)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathScanReceipt, body, contentType)
	if err != nil {
		return nil, err
	}

	var result model.ScanResult
	if err := c.send(req, &result); err != nil {
		return nil, c.classify(pathScanReceipt, err)
	}
	return &result, nil
}
