package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/serika/portal/internal/serika"
)

func TestOverviewFromUserProjectsSubscriptions(t *testing.T) {
	user := &serika.User{
		ID:                    "u1",
		IsPremium:             true,
		StripeCustomerID:      "cus_123",
		SubscriptionStatus:    "active",
		SubscriptionPlan:      "premium_monthly",
		SubscriptionPeriodEnd: "2026-09-28T00:00:00Z",
		APISubscriptionStatus: "active",
		LastPaymentDate:       "2026-08-28T00:00:00Z",
		LastPaymentStatus:     "succeeded",
	}

	o := overviewFromUser(user)

	assert.True(t, o.HasStripeCustomer)
	assert.True(t, o.IsPremium)
	assert.Equal(t, "active", o.Subscription.Status)
	assert.Equal(t, "premium_monthly", o.Subscription.Plan)
	assert.Equal(t, "active", o.APISubscription.Status)
	if assert.NotNil(t, o.LastPayment) {
		assert.Equal(t, "succeeded", o.LastPayment.Status)
	}
	assert.Nil(t, o.LastAPIPayment)
}

func TestOverviewFromUserFreeAccount(t *testing.T) {
	o := overviewFromUser(&serika.User{ID: "u2"})

	assert.False(t, o.HasStripeCustomer)
	assert.False(t, o.IsPremium)
	assert.Equal(t, "none", o.Subscription.Status)
	assert.Equal(t, "none", o.APISubscription.Status)
	assert.Nil(t, o.LastPayment)
	assert.Nil(t, o.LastAPIPayment)
}
