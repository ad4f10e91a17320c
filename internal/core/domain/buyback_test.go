package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rperset/setstock/internal/core/domain"
)

func availableEntry() domain.BuyBackItem {
	return domain.BuyBackItem{
		ID:               "bb-1",
		ProjectID:        "proj-1",
		Name:             "Director's chair",
		Price:            decimal.NewFromFloat(15),
		SellerDepartment: domain.DepartmentSetOps,
		Status:           domain.BuyBackAvailable,
	}
}

func TestBuyBackItem_Validate(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.BuyBackItem
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_entry",
			item: availableEntry(),
		},
		{
			name:      "missing_id",
			item:      domain.BuyBackItem{Name: "Chair", SellerDepartment: domain.DepartmentSetOps},
			wantError: true,
			errorMsg:  "id is required",
		},
		{
			name:      "blank_name",
			item:      domain.BuyBackItem{ID: "bb-1", Name: " ", SellerDepartment: domain.DepartmentSetOps},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "missing_seller",
			item:      domain.BuyBackItem{ID: "bb-1", Name: "Chair"},
			wantError: true,
			errorMsg:  "seller_department is required",
		},
		{
			name: "negative_price",
			item: domain.BuyBackItem{
				ID: "bb-1", Name: "Chair",
				SellerDepartment: domain.DepartmentSetOps,
				Price:            decimal.NewFromFloat(-5),
			},
			wantError: true,
			errorMsg:  "price cannot be negative",
		},
		{
			name: "tbd_price_accepted",
			item: domain.BuyBackItem{
				ID: "bb-1", Name: "Chair",
				SellerDepartment: domain.DepartmentSetOps,
				Price:            domain.PriceTBD,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.BuyBackAvailable, tt.item.Status, "status defaults to available")
			}
		})
	}
}

func TestBuyBackItem_Reserve(t *testing.T) {
	entry := availableEntry()
	buyer := domain.Actor{UserID: "u-7", Name: "Sam Ortega", Department: domain.DepartmentCamera}

	require.NoError(t, entry.Reserve(buyer))
	assert.Equal(t, domain.BuyBackReserved, entry.Status)
	require.NotNil(t, entry.ReservedBy)
	assert.Equal(t, domain.DepartmentCamera, *entry.ReservedBy)
	assert.Equal(t, "Sam Ortega", entry.ReservedByName)
	assert.Equal(t, "u-7", entry.ReservedByUserID)

	// Double reservation is rejected.
	err := entry.Reserve(domain.Actor{Department: domain.DepartmentSound})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only available items can be reserved")
	assert.Equal(t, domain.DepartmentCamera, *entry.ReservedBy, "holder unchanged")
}

func TestBuyBackItem_Unreserve(t *testing.T) {
	holder := domain.Actor{UserID: "u-7", Name: "Sam Ortega", Department: domain.DepartmentCamera}

	t.Run("holder_may_cancel", func(t *testing.T) {
		entry := availableEntry()
		require.NoError(t, entry.Reserve(holder))
		require.NoError(t, entry.Unreserve(holder))
		assert.Equal(t, domain.BuyBackAvailable, entry.Status)
		assert.Nil(t, entry.ReservedBy)
		assert.Empty(t, entry.ReservedByName)
		assert.Empty(t, entry.ReservedByUserID)
	})

	t.Run("production_may_cancel", func(t *testing.T) {
		entry := availableEntry()
		require.NoError(t, entry.Reserve(holder))
		require.NoError(t, entry.Unreserve(domain.Actor{Department: domain.DepartmentProduction}))
		assert.Equal(t, domain.BuyBackAvailable, entry.Status)
	})

	t.Run("other_department_rejected", func(t *testing.T) {
		entry := availableEntry()
		require.NoError(t, entry.Reserve(holder))
		err := entry.Unreserve(domain.Actor{Department: domain.DepartmentSound})
		var authErr domain.AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, domain.BuyBackReserved, entry.Status)
	})

	t.Run("not_reserved", func(t *testing.T) {
		entry := availableEntry()
		err := entry.Unreserve(holder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item is not reserved")
	})
}

func TestBuyBackItem_ConfirmSale(t *testing.T) {
	holder := domain.Actor{UserID: "u-7", Name: "Sam Ortega", Department: domain.DepartmentCamera}

	tests := []struct {
		name      string
		actor     domain.Actor
		wantError bool
	}{
		{name: "seller_confirms", actor: domain.Actor{Department: domain.DepartmentSetOps}},
		{name: "holder_confirms", actor: holder},
		{name: "production_confirms", actor: domain.Actor{Department: domain.DepartmentProduction}},
		{name: "bystander_rejected", actor: domain.Actor{Department: domain.DepartmentSound}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := availableEntry()
			require.NoError(t, entry.Reserve(holder))

			err := entry.ConfirmSale(tt.actor)
			if tt.wantError {
				var authErr domain.AuthorizationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, domain.BuyBackReserved, entry.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BuyBackSold, entry.Status)
			// The reservation becomes the sale record.
			require.NotNil(t, entry.ReservedBy)
			assert.Equal(t, domain.DepartmentCamera, *entry.ReservedBy)
			assert.Equal(t, "u-7", entry.ReservedByUserID)
		})
	}

	t.Run("available_item_cannot_be_sold", func(t *testing.T) {
		entry := availableEntry()
		err := entry.ConfirmSale(holder)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only reserved items can be sold")
	})
}

func TestBuyBackItem_CanDelete(t *testing.T) {
	entry := availableEntry()

	assert.True(t, entry.CanDelete(domain.Actor{Department: domain.DepartmentSetOps}))
	assert.True(t, entry.CanDelete(domain.Actor{Department: domain.DepartmentProduction}))
	assert.True(t, entry.CanDelete(domain.Actor{Department: domain.DepartmentGrip, IsAdmin: true}))
	assert.False(t, entry.CanDelete(domain.Actor{Department: domain.DepartmentCamera}))
}
