// internal/core/domain/disposition.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SplitMode chooses how a partially-started item is dispatched.
type SplitMode string

const (
	// SplitNone applies the disposition to the whole item (no mixed state).
	SplitNone SplitMode = ""

	// SplitOnlyNew sends only the sealed units; the started portion stays in
	// normal department stock.
	SplitOnlyNew SplitMode = "only_new"

	// SplitAll sends both portions. For priced dispositions the new/started
	// distinction is preserved as two records in the same disposition state.
	SplitAll SplitMode = "all"
)

// DispositionPlan is the set of item mutations a disposition resolves to.
// Original is always an update of the existing record; Split, when non-nil,
// is a new record that must be created after the update.
type DispositionPlan struct {
	Original Item
	Split    *Item
}

// PlanDisposition decides whether a disposition request is a full-item
// transition or a quantity split, and produces the resulting mutations.
// It never touches storage; the caller applies the plan.
//
// Conservation invariant: when Split is non-nil,
// Original.QuantityCurrent + Split.QuantityCurrent equals the input item's
// QuantityCurrent.
func PlanDisposition(item Item, action SurplusAction, mode SplitMode, resalePrice *decimal.Decimal, now time.Time) (DispositionPlan, error) {
	if !action.Valid() || action == SurplusNone {
		return DispositionPlan{}, ValidationError{Field: "action", Reason: "is not a disposition"}
	}
	if item.SurplusAction != SurplusNone {
		return DispositionPlan{}, ValidationError{
			Field:  "surplus_action",
			Reason: fmt.Sprintf("item already dispatched to %s", item.SurplusAction),
		}
	}
	if resalePrice != nil && resalePrice.IsNegative() && !resalePrice.Equal(PriceTBD) {
		return DispositionPlan{}, ValidationError{Field: "resale_price", Reason: "cannot be negative"}
	}

	startedQty := item.QuantityStarted
	newQty := item.QuantityCurrent - startedQty

	// Whole-item transition: nothing to split, or the caller keeps everything
	// together (RELEASED_TO_PROD under "all" does not preserve the
	// new/started distinction).
	if item.Composition() != PartiallyStarted || (mode == SplitAll && !action.Priced()) {
		updated := item
		updated.SurplusAction = action
		applyResalePrice(&updated, action, resalePrice)
		return DispositionPlan{Original: updated}, nil
	}

	if mode == SplitNone {
		return DispositionPlan{}, ValidationError{
			Field:  "mode",
			Reason: fmt.Sprintf("required: item has %d started of %d units", startedQty, item.QuantityCurrent),
		}
	}

	// Truncate the original record down to the started units.
	original := item
	original.QuantityCurrent = startedQty
	original.QuantityInitial = startedQty
	original.QuantityStarted = startedQty
	original.Status = StatusUsed

	// The sealed units move out as a fresh record.
	split := item
	split.ID = splitID(item.ID, now)
	split.QuantityCurrent = newQty
	split.QuantityInitial = newQty
	split.QuantityStarted = 0
	split.Status = StatusNew
	split.Purchased = true
	split.IsBought = false
	split.SurplusAction = action
	applyResalePrice(&split, action, resalePrice)

	switch mode {
	case SplitOnlyNew:
		// Started portion stays in normal stock.
		original.SurplusAction = SurplusNone
	case SplitAll:
		// Both portions carry the disposition, kept distinct for later
		// display and reversal.
		original.SurplusAction = action
		applyResalePrice(&original, action, resalePrice)
	default:
		return DispositionPlan{}, ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown split mode %q", mode)}
	}

	return DispositionPlan{Original: original, Split: &split}, nil
}

// CanUndoDisposition gates the UNDO transition back to SurplusNone: the
// production/admin role always may; the originating department only while the
// item sits in RELEASED_TO_PROD.
func CanUndoDisposition(actor Actor, item Item) bool {
	if actor.IsProduction() {
		return true
	}
	return item.SurplusAction == SurplusReleasedToPro && actor.Department == item.Department
}

func applyResalePrice(item *Item, action SurplusAction, price *decimal.Decimal) {
	if !action.Priced() || price == nil {
		return
	}
	item.SetPrice(*price)
}

// splitID derives the split record's id from the source id plus a
// disambiguating timestamp suffix.
func splitID(sourceID string, now time.Time) string {
	return fmt.Sprintf("%s_surplus_%d", sourceID, now.UnixMilli())
}
