package serika

import (
	"context"
	"net/http"
)

// initiates billing setup for API access. The backend reports failures in
// its {"msg": ...} shape, which decodeAPIError passes through.
func (c *Client) SetupBilling(ctx context.Context) (*BillingSetupResponse, error) {
	var resp BillingSetupResponse

	err := c.do(ctx, credSession, http.MethodPost, apiPath+"/billing/setup", nil,
		struct{}{}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
