package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rperset/setstock/internal/core/domain"
)

func TestPlanDisposition_WholeItem(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		item   domain.Item
		action domain.SurplusAction
		mode   domain.SplitMode
		price  *decimal.Decimal
	}{
		{
			name:   "all_new_marketplace",
			item:   domain.Item{ID: "itm-1", QuantityInitial: 10, QuantityCurrent: 10},
			action: domain.SurplusMarketplace,
			price:  decimalPtr(decimal.NewFromFloat(25)),
		},
		{
			name:   "all_started_donation",
			item:   domain.Item{ID: "itm-1", QuantityInitial: 4, QuantityCurrent: 4, QuantityStarted: 4},
			action: domain.SurplusDonation,
		},
		{
			name:   "released_to_prod_collapses_split_all",
			item:   domain.Item{ID: "itm-1", QuantityInitial: 10, QuantityCurrent: 10, QuantityStarted: 3},
			action: domain.SurplusReleasedToPro,
			mode:   domain.SplitAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := domain.PlanDisposition(tt.item, tt.action, tt.mode, tt.price, now)
			require.NoError(t, err)
			assert.Nil(t, plan.Split)
			assert.Equal(t, tt.action, plan.Original.SurplusAction)
			assert.Equal(t, tt.item.QuantityCurrent, plan.Original.QuantityCurrent)
			if tt.price != nil {
				require.NotNil(t, plan.Original.Price)
				assert.True(t, plan.Original.Price.Equal(*tt.price))
			}
		})
	}
}

func TestPlanDisposition_SplitOnlyNew(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	item := domain.Item{
		ID:              "itm-tape",
		ProjectID:       "proj-1",
		Name:            "Gaffer tape",
		Department:      domain.DepartmentGrip,
		QuantityInitial: 10,
		QuantityCurrent: 10,
		QuantityStarted: 2,
		Status:          domain.StatusUsed,
	}
	price := decimal.NewFromFloat(4.50)

	plan, err := domain.PlanDisposition(item, domain.SurplusMarketplace, domain.SplitOnlyNew, &price, now)
	require.NoError(t, err)
	require.NotNil(t, plan.Split)

	// Started portion keeps the original id and stays in department stock.
	original := plan.Original
	assert.Equal(t, "itm-tape", original.ID)
	assert.Equal(t, domain.SurplusNone, original.SurplusAction)
	assert.Equal(t, 2, original.QuantityCurrent)
	assert.Equal(t, 2, original.QuantityInitial)
	assert.Equal(t, 2, original.QuantityStarted)
	assert.Equal(t, domain.StatusUsed, original.Status)

	// Sealed units move out as a fresh, already-purchased record.
	split := *plan.Split
	assert.Equal(t, "itm-tape_surplus_1785585600000", split.ID)
	assert.Equal(t, domain.SurplusMarketplace, split.SurplusAction)
	assert.Equal(t, 8, split.QuantityCurrent)
	assert.Equal(t, 8, split.QuantityInitial)
	assert.Equal(t, 0, split.QuantityStarted)
	assert.Equal(t, domain.StatusNew, split.Status)
	assert.True(t, split.Purchased)
	assert.False(t, split.IsBought)
	require.NotNil(t, split.Price)
	assert.True(t, split.Price.Equal(price))

	// No units created or destroyed.
	assert.Equal(t, item.QuantityCurrent, original.QuantityCurrent+split.QuantityCurrent)
}

func TestPlanDisposition_SplitAll(t *testing.T) {
	now := time.Now()
	item := domain.Item{
		ID:              "itm-tubes",
		QuantityInitial: 6,
		QuantityCurrent: 5,
		QuantityStarted: 1,
		Status:          domain.StatusUsed,
	}
	price := decimal.NewFromFloat(55)

	plan, err := domain.PlanDisposition(item, domain.SurplusBuyBack, domain.SplitAll, &price, now)
	require.NoError(t, err)
	require.NotNil(t, plan.Split)

	// Both portions carry the disposition, kept as two records.
	assert.Equal(t, domain.SurplusBuyBack, plan.Original.SurplusAction)
	assert.Equal(t, domain.SurplusBuyBack, plan.Split.SurplusAction)
	assert.Equal(t, 1, plan.Original.QuantityCurrent)
	assert.Equal(t, 4, plan.Split.QuantityCurrent)
	assert.Equal(t, item.QuantityCurrent, plan.Original.QuantityCurrent+plan.Split.QuantityCurrent)
	require.NotNil(t, plan.Original.Price)
	assert.True(t, plan.Original.Price.Equal(price))
}

func TestPlanDisposition_Errors(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		item     domain.Item
		action   domain.SurplusAction
		mode     domain.SplitMode
		price    *decimal.Decimal
		errorMsg string
	}{
		{
			name:     "none_is_not_a_disposition",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 5},
			action:   domain.SurplusNone,
			errorMsg: "is not a disposition",
		},
		{
			name:     "unknown_action",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 5},
			action:   domain.SurplusAction("shredder"),
			errorMsg: "is not a disposition",
		},
		{
			name:     "already_dispatched",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 5, SurplusAction: domain.SurplusMarketplace},
			action:   domain.SurplusDonation,
			errorMsg: "already dispatched to marketplace",
		},
		{
			name:     "negative_resale_price",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 5},
			action:   domain.SurplusMarketplace,
			price:    decimalPtr(decimal.NewFromFloat(-10)),
			errorMsg: "cannot be negative",
		},
		{
			name:     "partially_started_needs_mode",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 10, QuantityStarted: 2},
			action:   domain.SurplusMarketplace,
			mode:     domain.SplitNone,
			errorMsg: "required: item has 2 started of 10 units",
		},
		{
			name:     "unknown_split_mode",
			item:     domain.Item{ID: "itm-1", QuantityCurrent: 10, QuantityStarted: 2},
			action:   domain.SurplusMarketplace,
			mode:     domain.SplitMode("halfsies"),
			errorMsg: "unknown split mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.PlanDisposition(tt.item, tt.action, tt.mode, tt.price, now)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			var verr domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestPlanDisposition_TBDPriceAccepted(t *testing.T) {
	item := domain.Item{ID: "itm-1", QuantityCurrent: 5}

	plan, err := domain.PlanDisposition(item, domain.SurplusMarketplace, domain.SplitNone, &domain.PriceTBD, time.Now())
	require.NoError(t, err)
	require.NotNil(t, plan.Original.Price)
	assert.True(t, plan.Original.Price.Equal(domain.PriceTBD))
}

func TestCanUndoDisposition(t *testing.T) {
	grip := domain.Actor{UserID: "u1", Department: domain.DepartmentGrip}
	sound := domain.Actor{UserID: "u2", Department: domain.DepartmentSound}
	production := domain.Actor{UserID: "u3", Department: domain.DepartmentProduction}

	released := domain.Item{Department: domain.DepartmentGrip, SurplusAction: domain.SurplusReleasedToPro}
	listed := domain.Item{Department: domain.DepartmentGrip, SurplusAction: domain.SurplusMarketplace}

	assert.True(t, domain.CanUndoDisposition(production, released))
	assert.True(t, domain.CanUndoDisposition(production, listed))
	assert.True(t, domain.CanUndoDisposition(grip, released),
		"owning department may reclaim while released to production")
	assert.False(t, domain.CanUndoDisposition(grip, listed),
		"past released_to_prod only production may undo")
	assert.False(t, domain.CanUndoDisposition(sound, released))
}
