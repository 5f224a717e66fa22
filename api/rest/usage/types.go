package usage

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/serika"
)

type ClientFactory func(c *gin.Context) *serika.Client

// EndpointBreakdown is the upstream per-endpoint row plus the share of
// total cost this endpoint accounts for, computed portal-side for the
// usage chart.
type EndpointBreakdown struct {
	serika.EndpointUsage
	CostShare float64 `json:"costShare"`
}

type Response struct {
	Summary    serika.UsageSummary `json:"summary"`
	ByEndpoint []EndpointBreakdown `json:"byEndpoint"`
}
