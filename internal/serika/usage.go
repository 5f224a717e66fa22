package serika

import (
	"context"
	"net/http"
	"net/url"
)

// optional date window for a usage query, both bounds "2006-01-02"
type UsageOptions struct {
	StartDate string
	EndDate   string
}

// fetches the server-computed usage summary for the signed-in user
func (c *Client) Usage(ctx context.Context, opts UsageOptions) (*UsageResponse, error) {
	query := url.Values{}

	if opts.StartDate != "" {
		query.Set("startDate", opts.StartDate)
	}

	if opts.EndDate != "" {
		query.Set("endDate", opts.EndDate)
	}

	var usage UsageResponse

	if err := c.do(ctx, credSession, http.MethodGet, apiPath+"/usage", query, nil, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}
