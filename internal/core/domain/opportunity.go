// internal/core/domain/opportunity.go
package domain

import "github.com/shopspring/decimal"

// Opportunity pairs an open purchase request with the cheapest matching
// cross-production listing.
type Opportunity struct {
	Request Item            `json:"request"`
	Listing Listing         `json:"listing"`
	Cost    decimal.Decimal `json:"cost"`   // effective unit price
	Saving  decimal.Decimal `json:"saving"` // vs. the request's estimated price, when known
}

// MatchOpportunities reconciles one production's open purchase requests
// against the global listing set. Matching is by value only: case-insensitive,
// whitespace-trimmed name equality, never shared identity.
//
// A production's own listings are excluded, except buy-back stock, which the
// platform owns and resells to everyone including the originating production.
//
// Deterministic: the cheapest effective price wins, ties broken by listing id
// ascending. Requests without a match produce no opportunity.
func MatchOpportunities(requests []Item, listings []Listing, projectID string) []Opportunity {
	var out []Opportunity
	for _, r := range requests {
		if r.Purchased {
			continue
		}
		key := r.MatchKey()
		if key == "" {
			continue
		}

		var best *Listing
		var bestPrice decimal.Decimal
		for idx := range listings {
			l := listings[idx]
			if l.MatchKey() != key {
				continue
			}
			if l.ProjectID == projectID && l.SurplusAction != SurplusBuyBack {
				continue
			}
			price := EffectiveListingPrice(l)
			if best == nil || price.LessThan(bestPrice) ||
				(price.Equal(bestPrice) && l.ID < best.ID) {
				best = &listings[idx]
				bestPrice = price
			}
		}
		if best == nil {
			continue
		}

		saving := decimal.Zero
		if est := r.PriceValue(); est.IsPositive() {
			saving = est.Sub(bestPrice)
		}
		out = append(out, Opportunity{
			Request: r,
			Listing: *best,
			Cost:    bestPrice,
			Saving:  saving,
		})
	}
	return out
}
