package models

// PricingTier is a purchasable plan as shown on the subscription page.
type PricingTier struct {
	Plan      Plan
	Name      string
	Price     int
	Interval  string
	Features  []string
	Highlight bool
}

var pricingTiers = []PricingTier{
	{
		Plan:     PlanFree,
		Name:     "Free",
		Price:    0,
		Interval: "month",
		Features: []string{
			"Basic cyber security assistance",
			"100 messages per month",
			"Community access",
			"Email support",
		},
	},
	{
		Plan:     PlanPro,
		Name:     "Professional",
		Price:    29,
		Interval: "month",
		Features: []string{
			"Advanced security analysis",
			"Unlimited messages",
			"Priority support",
			"Custom integrations",
			"API access",
			"Team collaboration",
		},
		Highlight: true,
	},
	{
		Plan:     PlanEnterprise,
		Name:     "Enterprise",
		Price:    99,
		Interval: "month",
		Features: []string{
			"Everything in Professional",
			"Custom AI model training",
			"Dedicated account manager",
			"SLA guarantees",
			"Advanced analytics",
			"SSO & advanced security",
		},
	},
}

// PricingTiers returns a copy of the pricing catalogue, cheapest first.
func PricingTiers() []PricingTier {
	out := make([]PricingTier, len(pricingTiers))
	for i, t := range pricingTiers {
		t.Features = append([]string(nil), t.Features...)
		out[i] = t
	}
	return out
}

// TierForPlan looks up the tier selling plan.
func TierForPlan(plan Plan) (PricingTier, bool) {
	for _, t := range PricingTiers() {
		if t.Plan == plan {
			return t, true
		}
	}
	return PricingTier{}, false
}
