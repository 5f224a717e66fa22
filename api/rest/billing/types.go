package billing

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/serika"
)

type ClientFactory func(c *gin.Context) *serika.Client

// Overview is the billing page's view of the account, projected from
// the user profile. Amounts and invoices live in Stripe - the portal
// only reports state.
type Overview struct {
	HasStripeCustomer bool          `json:"hasStripeCustomer"`
	IsPremium         bool          `json:"isPremium"`
	Subscription      Subscription  `json:"subscription"`
	APISubscription   Subscription  `json:"apiSubscription"`
	LastPayment       *PaymentEvent `json:"lastPayment,omitempty"`
	LastAPIPayment    *PaymentEvent `json:"lastApiPayment,omitempty"`
}

type Subscription struct {
	Status    string `json:"status"`
	Plan      string `json:"plan,omitempty"`
	PeriodEnd string `json:"periodEnd,omitempty"`
}

type PaymentEvent struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}
