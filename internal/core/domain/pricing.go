// internal/core/domain/pricing.go
package domain

import "github.com/shopspring/decimal"

// Resale pricing laws. Fixed platform-wide; suggestions are pre-fills for a
// user confirmation and are never applied without it.
var (
	// buyBackRate: the platform buys surplus back at half its acquisition price.
	buyBackRate = decimal.New(5, -1) // 0.5

	// buyBackResaleRate: buy-back stock resells to other productions at a 25%
	// discount off the acquisition price.
	buyBackResaleRate = decimal.New(75, -2) // 0.75

	// platformFeeRate: commission on every cross-production transaction.
	platformFeeRate = decimal.New(1, -1) // 0.10
)

// SuggestedPrice computes the pre-filled price for a disposition. Pure; the
// caller applies the confirmed price explicitly.
func SuggestedPrice(action SurplusAction, item Item) decimal.Decimal {
	switch action {
	case SurplusBuyBack:
		return item.BasePrice().Mul(buyBackRate)
	case SurplusMarketplace:
		return item.PriceValue()
	default:
		// Donations and short-film hand-offs are not sales; valuation is
		// optional metadata.
		return decimal.Zero
	}
}

// EffectiveListingPrice is the price a buying production pays for a listing.
// Buy-back stock is resold at the platform discount; everything else sells at
// the seller's asking price.
func EffectiveListingPrice(l Listing) decimal.Decimal {
	if l.SurplusAction == SurplusBuyBack {
		return l.BasePrice().Mul(buyBackResaleRate)
	}
	return l.PriceValue()
}

// PlatformFee computes the fixed commission on a transaction total.
func PlatformFee(total decimal.Decimal) decimal.Decimal {
	return total.Mul(platformFeeRate)
}
