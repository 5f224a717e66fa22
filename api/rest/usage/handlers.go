package usage

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/errors"
	"codeberg.org/serika/portal/internal/serika"
)

const dateLayout = "2006-01-02"

// Handler returns aggregated usage for the account, optionally scoped
// to a date range. Dates are YYYY-MM-DD and validated locally so a
// malformed range never reaches the backend.
//
//	@Summary	Usage statistics
//	@Tags		usage
//	@Produce	json
//	@Param		startDate	query		string	false	"Range start (YYYY-MM-DD)"
//	@Param		endDate		query		string	false	"Range end (YYYY-MM-DD)"
//	@Success	200			{object}	Response
//	@Failure	400			{object}	errors.ErrorResponse
//	@Failure	401			{object}	errors.ErrorResponse
//	@Router		/usage [get]
func Handler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := serika.UsageOptions{
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		}

		for _, d := range []string{opts.StartDate, opts.EndDate} {
			if d == "" {
				continue
			}
			if _, err := time.Parse(dateLayout, d); err != nil {
				errors.BadRequest(c, "dates must be YYYY-MM-DD", err)
				return
			}
		}

		raw, err := factory(c).Usage(c.Request.Context(), opts)
		if err != nil {
			errors.Upstream(c, "failed to fetch usage", err)
			return
		}

		c.JSON(http.StatusOK, withCostShares(raw))
	}
}

// withCostShares annotates each endpoint row with its fraction of the
// total cost. A zero total yields zero shares rather than NaN.
func withCostShares(raw *serika.UsageResponse) Response {
	resp := Response{
		Summary:    raw.Summary,
		ByEndpoint: make([]EndpointBreakdown, 0, len(raw.ByEndpoint)),
	}

	for _, row := range raw.ByEndpoint {
		share := 0.0
		if raw.Summary.TotalCost > 0 {
			share = row.TotalCost / raw.Summary.TotalCost
		}
		resp.ByEndpoint = append(resp.ByEndpoint, EndpointBreakdown{
			EndpointUsage: row,
			CostShare:     share,
		})
	}

	return resp
}
