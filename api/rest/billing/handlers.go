package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/errors"
	"codeberg.org/serika/portal/internal/logger"
	"codeberg.org/serika/portal/internal/serika"
)

// OverviewHandler projects the billing page's view from the user
// profile.
//
//	@Summary	Billing overview
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	Overview
//	@Failure	401	{object}	errors.ErrorResponse
//	@Router		/billing [get]
func OverviewHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := factory(c).CurrentUser(c.Request.Context())
		if err != nil {
			errors.Upstream(c, "failed to fetch billing state", err)
			return
		}
		c.JSON(http.StatusOK, overviewFromUser(user))
	}
}

// SetupHandler begins API billing setup for the account.
func SetupHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := factory(c).SetupBilling(c.Request.Context())
		if err != nil {
			errors.Upstream(c, "billing setup failed", err)
			return
		}

		logger.Info("billing setup started")
		c.JSON(http.StatusOK, resp)
	}
}

func overviewFromUser(user *serika.User) Overview {
	o := Overview{
		HasStripeCustomer: user.StripeCustomerID != "",
		IsPremium:         user.IsPremium,
		Subscription: Subscription{
			Status:    statusOrNone(user.SubscriptionStatus),
			Plan:      user.SubscriptionPlan,
			PeriodEnd: user.SubscriptionPeriodEnd,
		},
		APISubscription: Subscription{
			Status:    statusOrNone(user.APISubscriptionStatus),
			PeriodEnd: user.APISubscriptionEnd,
		},
	}

	if user.LastPaymentDate != "" {
		o.LastPayment = &PaymentEvent{Date: user.LastPaymentDate, Status: user.LastPaymentStatus}
	}
	if user.LastAPIPaymentDate != "" {
		o.LastAPIPayment = &PaymentEvent{Date: user.LastAPIPaymentDate, Status: user.LastAPIPaymentStatus}
	}

	return o
}

func statusOrNone(status string) string {
	if status == "" {
		return "none"
	}
	return status
}
