package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rperset/setstock/internal/core/domain"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name      string
		item      *domain.Item
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_item",
			item: &domain.Item{
				ID:              "itm-1",
				ProjectID:       "proj-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityInitial: 10,
				QuantityCurrent: 10,
				SurplusAction:   domain.SurplusNone,
			},
			wantError: false,
		},
		{
			name: "missing_id",
			item: &domain.Item{
				Name:       "Gaffer tape",
				Department: domain.DepartmentGrip,
			},
			wantError: true,
			errorMsg:  "id is required",
		},
		{
			name: "blank_name",
			item: &domain.Item{
				ID:         "itm-1",
				Name:       "   ",
				Department: domain.DepartmentGrip,
			},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name: "missing_department",
			item: &domain.Item{
				ID:   "itm-1",
				Name: "Gaffer tape",
			},
			wantError: true,
			errorMsg:  "department is required",
		},
		{
			name: "negative_quantity",
			item: &domain.Item{
				ID:              "itm-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityCurrent: -1,
			},
			wantError: true,
			errorMsg:  "quantity_current cannot be negative",
		},
		{
			name: "started_exceeds_current",
			item: &domain.Item{
				ID:              "itm-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityCurrent: 3,
				QuantityStarted: 4,
			},
			wantError: true,
		},
		{
			name: "negative_price_rejected",
			item: &domain.Item{
				ID:              "itm-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityCurrent: 1,
				Price:           decimalPtr(decimal.NewFromFloat(-3)),
			},
			wantError: true,
			errorMsg:  "price cannot be negative",
		},
		{
			name: "price_tbd_sentinel_accepted",
			item: &domain.Item{
				ID:              "itm-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityCurrent: 1,
				Price:           decimalPtr(domain.PriceTBD),
			},
			wantError: false,
		},
		{
			name: "unknown_disposition",
			item: &domain.Item{
				ID:              "itm-1",
				Name:            "Gaffer tape",
				Department:      domain.DepartmentGrip,
				QuantityCurrent: 1,
				SurplusAction:   domain.SurplusAction("shredder"),
			},
			wantError: true,
			errorMsg:  "surplus_action unknown disposition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				var verr domain.ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestItem_AdjustQuantity(t *testing.T) {
	tests := []struct {
		name        string
		item        domain.Item
		delta       int
		wantCurrent int
		wantStarted int
		wantStatus  domain.ItemStatus
	}{
		{
			name:        "consumption_marks_used",
			item:        domain.Item{QuantityInitial: 10, QuantityCurrent: 10, Status: domain.StatusNew},
			delta:       -3,
			wantCurrent: 7,
			wantStatus:  domain.StatusUsed,
		},
		{
			name:        "exhaustion_marks_empty",
			item:        domain.Item{QuantityInitial: 10, QuantityCurrent: 2, Status: domain.StatusUsed},
			delta:       -2,
			wantCurrent: 0,
			wantStatus:  domain.StatusEmpty,
		},
		{
			name:        "overshoot_clamps_at_zero",
			item:        domain.Item{QuantityInitial: 10, QuantityCurrent: 2, Status: domain.StatusUsed},
			delta:       -5,
			wantCurrent: 0,
			wantStatus:  domain.StatusEmpty,
		},
		{
			name:        "started_count_clamped_down",
			item:        domain.Item{QuantityInitial: 10, QuantityCurrent: 5, QuantityStarted: 4, Status: domain.StatusUsed},
			delta:       -3,
			wantCurrent: 2,
			wantStarted: 2,
			wantStatus:  domain.StatusUsed,
		},
		{
			name:        "restock_above_initial_keeps_status",
			item:        domain.Item{QuantityInitial: 10, QuantityCurrent: 10, Status: domain.StatusNew},
			delta:       5,
			wantCurrent: 15,
			wantStatus:  domain.StatusNew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.AdjustQuantity(tt.delta)
			assert.Equal(t, tt.wantCurrent, tt.item.QuantityCurrent)
			assert.Equal(t, tt.wantStarted, tt.item.QuantityStarted)
			assert.Equal(t, tt.wantStatus, tt.item.Status)
		})
	}
}

func TestItem_MarkStarted(t *testing.T) {
	item := domain.Item{QuantityInitial: 3, QuantityCurrent: 3, Status: domain.StatusNew}

	require.True(t, item.MarkStarted())
	assert.Equal(t, 1, item.QuantityStarted)
	assert.Equal(t, domain.StatusUsed, item.Status)
	assert.Equal(t, domain.PartiallyStarted, item.Composition())

	require.True(t, item.MarkStarted())
	require.True(t, item.MarkStarted())
	assert.Equal(t, domain.AllStarted, item.Composition())

	// Every unit already open: no-op
	assert.False(t, item.MarkStarted())
	assert.Equal(t, 3, item.QuantityStarted)
}

func TestItem_Composition(t *testing.T) {
	assert.Equal(t, domain.AllNew,
		(&domain.Item{QuantityCurrent: 5}).Composition())
	assert.Equal(t, domain.PartiallyStarted,
		(&domain.Item{QuantityCurrent: 5, QuantityStarted: 2}).Composition())
	assert.Equal(t, domain.AllStarted,
		(&domain.Item{QuantityCurrent: 5, QuantityStarted: 5}).Composition())
	// An empty item has nothing sealed left
	assert.Equal(t, domain.AllNew,
		(&domain.Item{QuantityCurrent: 0, QuantityStarted: 0}).Composition())
}

func TestItem_SetPrice_SnapshotsOriginalOnce(t *testing.T) {
	acquisition := decimal.NewFromFloat(100)
	item := domain.Item{Price: &acquisition}

	item.SetPrice(decimal.NewFromFloat(75))
	require.NotNil(t, item.OriginalPrice)
	assert.True(t, item.OriginalPrice.Equal(decimal.NewFromFloat(100)),
		"first overwrite snapshots the acquisition price")
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(75)))

	// Subsequent writes never move the snapshot
	item.SetPrice(decimal.NewFromFloat(50))
	assert.True(t, item.OriginalPrice.Equal(decimal.NewFromFloat(100)))
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(50)))
}

func TestItem_SetPrice_TBDNeverSnapshotted(t *testing.T) {
	item := domain.Item{Price: decimalPtr(domain.PriceTBD)}

	item.SetPrice(decimal.NewFromFloat(30))
	assert.Nil(t, item.OriginalPrice, "TBD sentinel is not an acquisition price")
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(30)))
}

func TestItem_BasePrice(t *testing.T) {
	orig := decimal.NewFromFloat(120)
	cur := decimal.NewFromFloat(90)

	assert.True(t, (&domain.Item{OriginalPrice: &orig, Price: &cur}).BasePrice().Equal(orig))
	assert.True(t, (&domain.Item{Price: &cur}).BasePrice().Equal(cur))
	assert.True(t, (&domain.Item{}).BasePrice().IsZero())
	assert.True(t, (&domain.Item{Price: decimalPtr(domain.PriceTBD)}).BasePrice().IsZero())
}

func TestItem_MatchKey(t *testing.T) {
	a := domain.Item{Name: "  Gaffer Tape "}
	b := domain.Item{Name: "gaffer tape"}
	assert.Equal(t, a.MatchKey(), b.MatchKey())
}

func TestItem_PrepareForStorage(t *testing.T) {
	item := domain.Item{QuantityCurrent: 7}
	item.PrepareForStorage()

	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.IsZero())
	assert.Equal(t, domain.StatusNew, item.Status)
	assert.Equal(t, domain.SurplusNone, item.SurplusAction)
	assert.Equal(t, 7, item.QuantityInitial, "initial defaults to current")
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
