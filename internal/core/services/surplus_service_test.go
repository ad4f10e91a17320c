// internal/core/services/surplus_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/core/services"
	"github.com/rperset/setstock/test/helpers"
	"github.com/rperset/setstock/test/mocks"
)

func newSurplusService(t *testing.T) (*services.SurplusService, *mocks.MockItemRepository, *mocks.MockProjectRepository, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	items := mocks.NewMockItemRepository(ctrl)
	projects := mocks.NewMockProjectRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	svc := services.NewSurplusService(items, projects, notifier, helpers.TestSlogger())
	return svc, items, projects, notifier
}

func TestSurplusService_CreateItem(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)

	tests := []struct {
		name          string
		actor         domain.Actor
		item          *domain.Item
		setupMocks    func(*mocks.MockItemRepository)
		expectedError bool
		errorContains string
	}{
		{
			name:  "successful_create",
			actor: actor,
			item:  helpers.CreateTestItem(),
			setupMocks: func(m *mocks.MockItemRepository) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:  "production_creates_for_any_department",
			actor: helpers.CreateTestActor("test-project", domain.DepartmentProduction),
			item:  helpers.CreateTestItem(),
			setupMocks: func(m *mocks.MockItemRepository) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:          "foreign_department_rejected",
			actor:         helpers.CreateTestActor("test-project", domain.DepartmentSound),
			item:          helpers.CreateTestItem(),
			setupMocks:    func(m *mocks.MockItemRepository) {},
			expectedError: true,
			errorContains: "not allowed to create items",
		},
		{
			name:  "validation_fails_for_blank_name",
			actor: actor,
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.Name = ""
			}),
			setupMocks:    func(m *mocks.MockItemRepository) {},
			expectedError: true,
			errorContains: "name is required",
		},
		{
			name:  "repository_save_error",
			actor: actor,
			item:  helpers.CreateTestItem(),
			setupMocks: func(m *mocks.MockItemRepository) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("database connection failed"))
			},
			expectedError: true,
			errorContains: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, items, _, _ := newSurplusService(t)
			tt.setupMocks(items)

			err := svc.CreateItem(context.Background(), tt.actor, tt.item)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSurplusService_ProposeDisposition(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	price := decimal.NewFromFloat(45)

	tests := []struct {
		name          string
		action        domain.SurplusAction
		item          *domain.Item
		wantMode      domain.SplitMode
		wantPrice     decimal.Decimal
		expectedError bool
		errorContains string
	}{
		{
			name:      "marketplace_prefills_asking_price",
			action:    domain.SurplusMarketplace,
			item:      helpers.CreateTestItem(func(i *domain.Item) { i.Price = &price }),
			wantMode:  domain.SplitNone,
			wantPrice: decimal.NewFromFloat(45),
		},
		{
			name:      "buyback_prefills_half_acquisition",
			action:    domain.SurplusBuyBack,
			item:      helpers.CreateTestItem(func(i *domain.Item) { i.Price = &price }),
			wantMode:  domain.SplitNone,
			wantPrice: decimal.NewFromFloat(22.5),
		},
		{
			name:   "partially_started_defaults_to_only_new",
			action: domain.SurplusMarketplace,
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.QuantityStarted = 3
				i.Price = &price
			}),
			wantMode:  domain.SplitOnlyNew,
			wantPrice: decimal.NewFromFloat(45),
		},
		{
			name:          "none_rejected",
			action:        domain.SurplusNone,
			item:          helpers.CreateTestItem(),
			expectedError: true,
			errorContains: "is not a disposition",
		},
		{
			name:   "already_dispatched_rejected",
			action: domain.SurplusDonation,
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.SurplusAction = domain.SurplusBuyBack
			}),
			expectedError: true,
			errorContains: "already dispatched to buyback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, items, _, _ := newSurplusService(t)
			if tt.action.Valid() && tt.action != domain.SurplusNone {
				items.EXPECT().
					FindByID(gomock.Any(), "test-project", tt.item.ID).
					Return(tt.item, nil)
			}

			quote, err := svc.ProposeDisposition(context.Background(), actor, "test-project", tt.item.ID, tt.action)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, quote.Action)
			assert.Equal(t, tt.wantMode, quote.Mode)
			assert.True(t, quote.SuggestedPrice.Equal(tt.wantPrice),
				"suggested %s want %s", quote.SuggestedPrice, tt.wantPrice)
			require.NotNil(t, quote.ResalePrice, "priced dispositions carry an editable pre-fill")
			assert.True(t, quote.ResalePrice.Equal(tt.wantPrice))
		})
	}
}

func TestSurplusService_CommitDisposition_WholeItem(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	item := helpers.CreateTestItem()
	price := decimal.NewFromFloat(4.50)

	svc, items, _, notifier := newSurplusService(t)
	items.EXPECT().
		FindByID(gomock.Any(), "test-project", item.ID).
		Return(item, nil)
	items.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.Item) error {
			assert.Equal(t, domain.SurplusMarketplace, updated.SurplusAction)
			assert.True(t, updated.Price.Equal(price))
			return nil
		})
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), ports.SeverityStockMove, domain.DepartmentProduction).
		Return(nil)

	result, err := svc.CommitDisposition(context.Background(), actor, ports.DispositionQuote{
		ProjectID:   "test-project",
		ItemID:      item.ID,
		Action:      domain.SurplusMarketplace,
		ResalePrice: &price,
	})
	require.NoError(t, err)
	assert.Nil(t, result.Split)
	assert.Equal(t, domain.SurplusMarketplace, result.Original.SurplusAction)
}

func TestSurplusService_CommitDisposition_Split(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	item := helpers.CreateTestItem(func(i *domain.Item) {
		i.QuantityStarted = 2
	})
	price := decimal.NewFromFloat(4.50)

	svc, items, _, notifier := newSurplusService(t)
	items.EXPECT().
		FindByID(gomock.Any(), "test-project", item.ID).
		Return(item, nil)
	items.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, original *domain.Item) error {
			assert.Equal(t, item.ID, original.ID)
			assert.Equal(t, 2, original.QuantityCurrent)
			assert.Equal(t, domain.SurplusNone, original.SurplusAction)
			return nil
		})
	items.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, split *domain.Item) error {
			assert.Contains(t, split.ID, item.ID+"_surplus_")
			assert.Equal(t, 8, split.QuantityCurrent)
			assert.Equal(t, domain.SurplusMarketplace, split.SurplusAction)
			return nil
		})
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), ports.SeverityStockMove, domain.DepartmentProduction).
		Return(nil)

	result, err := svc.CommitDisposition(context.Background(), actor, ports.DispositionQuote{
		ProjectID:   "test-project",
		ItemID:      item.ID,
		Action:      domain.SurplusMarketplace,
		Mode:        domain.SplitOnlyNew,
		ResalePrice: &price,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Split)
	assert.Equal(t, 10, result.Original.QuantityCurrent+result.Split.QuantityCurrent)
}

func TestSurplusService_CommitDisposition_PartialWrite(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	item := helpers.CreateTestItem(func(i *domain.Item) {
		i.QuantityStarted = 2
	})

	svc, items, _, _ := newSurplusService(t)
	items.EXPECT().
		FindByID(gomock.Any(), "test-project", item.ID).
		Return(item, nil)
	items.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)
	items.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := svc.CommitDisposition(context.Background(), actor, ports.DispositionQuote{
		ProjectID: "test-project",
		ItemID:    item.ID,
		Action:    domain.SurplusMarketplace,
		Mode:      domain.SplitOnlyNew,
	})

	var pwe *domain.PartialWriteError
	require.ErrorAs(t, err, &pwe)
	assert.Equal(t, "commit_disposition", pwe.Op)
	assert.Equal(t, []string{"update_original"}, pwe.Completed)
}

func TestSurplusService_UndoDisposition(t *testing.T) {
	tests := []struct {
		name          string
		actor         domain.Actor
		item          *domain.Item
		expectUpdate  bool
		expectedError bool
		errorContains string
	}{
		{
			name:  "department_reclaims_released_item",
			actor: helpers.CreateTestActor("test-project", domain.DepartmentGrip),
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.SurplusAction = domain.SurplusReleasedToPro
			}),
			expectUpdate: true,
		},
		{
			name:  "production_undoes_marketplace_listing",
			actor: helpers.CreateTestActor("test-project", domain.DepartmentProduction),
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.SurplusAction = domain.SurplusMarketplace
			}),
			expectUpdate: true,
		},
		{
			name:  "department_cannot_undo_listed_item",
			actor: helpers.CreateTestActor("test-project", domain.DepartmentGrip),
			item: helpers.CreateTestItem(func(i *domain.Item) {
				i.SurplusAction = domain.SurplusMarketplace
			}),
			expectedError: true,
			errorContains: "not allowed to undo",
		},
		{
			name:          "undispatched_item_rejected",
			actor:         helpers.CreateTestActor("test-project", domain.DepartmentGrip),
			item:          helpers.CreateTestItem(),
			expectedError: true,
			errorContains: "item is not dispatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, items, _, _ := newSurplusService(t)
			items.EXPECT().
				FindByID(gomock.Any(), "test-project", tt.item.ID).
				Return(tt.item, nil)
			if tt.expectUpdate {
				items.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated *domain.Item) error {
						assert.Equal(t, domain.SurplusNone, updated.SurplusAction)
						return nil
					})
			}

			item, err := svc.UndoDisposition(context.Background(), tt.actor, "test-project", tt.item.ID)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SurplusNone, item.SurplusAction)
		})
	}
}

func TestSurplusService_AdjustQuantity(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)

	t.Run("decrement_updates_item", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem()
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.AdjustQuantity(context.Background(), actor, "test-project", item.ID, -4)
		require.NoError(t, err)
		assert.Equal(t, 6, got.QuantityCurrent)
		assert.Equal(t, domain.StatusUsed, got.Status)
	})

	t.Run("exhaustion_warns_the_department", func(t *testing.T) {
		svc, items, _, notifier := newSurplusService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) {
			i.QuantityCurrent = 2
		})
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), ports.SeverityWarning, domain.DepartmentGrip).
			Return(nil)

		got, err := svc.AdjustQuantity(context.Background(), actor, "test-project", item.ID, -2)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEmpty, got.Status)
	})

	t.Run("foreign_department_rejected", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem()
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)

		_, err := svc.AdjustQuantity(context.Background(),
			helpers.CreateTestActor("test-project", domain.DepartmentSound), "test-project", item.ID, -1)
		var authErr domain.AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})
}

func TestSurplusService_MarkStarted(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)

	t.Run("opens_one_unit", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem()
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.MarkStarted(context.Background(), actor, "test-project", item.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.QuantityStarted)
	})

	t.Run("all_units_started_rejected", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) {
			i.QuantityStarted = i.QuantityCurrent
		})
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)

		_, err := svc.MarkStarted(context.Background(), actor, "test-project", item.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already started")
	})
}

func TestSurplusService_MarkBought(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	price := decimal.NewFromFloat(12.99)

	t.Run("records_order_and_price", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) {
			i.Purchased = false
		})
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.MarkBought(context.Background(), actor, "test-project", item.ID, &price)
		require.NoError(t, err)
		assert.True(t, got.IsBought)
		assert.True(t, got.Price.Equal(price))
	})

	t.Run("received_item_rejected", func(t *testing.T) {
		svc, items, _, _ := newSurplusService(t)
		item := helpers.CreateTestItem()
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)

		_, err := svc.MarkBought(context.Background(), actor, "test-project", item.ID, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already received")
	})
}

func TestSurplusService_ConfirmReceipt(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
	acquisition := decimal.NewFromFloat(10)
	finalPrice := decimal.NewFromFloat(11.50)

	svc, items, _, notifier := newSurplusService(t)
	item := helpers.CreateTestItem(func(i *domain.Item) {
		i.Purchased = false
		i.IsBought = true
		i.Price = &acquisition
	})
	items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
	items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), ports.SeveritySuccess, domain.DepartmentGrip).
		Return(nil)

	got, err := svc.ConfirmReceipt(context.Background(), actor, "test-project", item.ID, &finalPrice)
	require.NoError(t, err)
	assert.True(t, got.Purchased)
	assert.False(t, got.IsBought)
	assert.True(t, got.Price.Equal(finalPrice))
	require.NotNil(t, got.OriginalPrice)
	assert.True(t, got.OriginalPrice.Equal(acquisition),
		"first real price snapshots the acquisition price")
}

func TestSurplusService_ValidateRequest(t *testing.T) {
	production := helpers.CreateTestActor("test-project", domain.DepartmentProduction)

	t.Run("production_approves_order", func(t *testing.T) {
		svc, items, projects, notifier := newSurplusService(t)
		item := helpers.CreateTestItem(func(i *domain.Item) {
			i.Purchased = false
		})
		projects.EXPECT().
			FindByID(gomock.Any(), "test-project").
			Return(&domain.Project{ID: "test-project", RequireOrderValidation: true}, nil)
		items.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), ports.SeverityOrder, domain.DepartmentGrip).
			Return(nil)

		got, err := svc.ValidateRequest(context.Background(), production, "test-project", item.ID)
		require.NoError(t, err)
		require.NotNil(t, got.IsValidated)
		assert.True(t, *got.IsValidated)
	})

	t.Run("department_rejected", func(t *testing.T) {
		svc, _, _, _ := newSurplusService(t)
		_, err := svc.ValidateRequest(context.Background(),
			helpers.CreateTestActor("test-project", domain.DepartmentGrip), "test-project", "itm-1")
		var authErr domain.AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("gate_disabled_rejected", func(t *testing.T) {
		svc, _, projects, _ := newSurplusService(t)
		projects.EXPECT().
			FindByID(gomock.Any(), "test-project").
			Return(&domain.Project{ID: "test-project"}, nil)

		_, err := svc.ValidateRequest(context.Background(), production, "test-project", "itm-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disabled for this project")
	})
}
