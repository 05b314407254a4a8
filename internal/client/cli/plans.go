package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
)

// Plans lists the pricing tiers and marks the current user's plan.
func (a *App) Plans(ctx context.Context) error {
	var current models.Plan
	if u := a.session.State().User; u != nil && u.Subscription != nil {
		current = u.Subscription.Plan
	}

	for _, t := range models.PricingTiers() {
		marker := " "
		if t.Plan == current {
			marker = "*"
		}
		label := t.Name
		if t.Highlight {
			label += " (most popular)"
		}
		printlnFn(fmt.Sprintf("%s %-28s $%d/%s", marker, label, t.Price, t.Interval))
		printlnFn("    " + strings.Join(t.Features, "; "))
	}
	return nil
}
