// internal/core/services/buyback_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/core/services"
	"github.com/rperset/setstock/test/helpers"
	"github.com/rperset/setstock/test/mocks"
)

type buyBackMocks struct {
	board    *mocks.MockBuyBackRepository
	photos   *mocks.MockPhotoStore
	cache    *mocks.MockCacheRepository
	notifier *mocks.MockNotifier
}

func newBuyBackService(t *testing.T) (*services.BuyBackService, buyBackMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := buyBackMocks{
		board:    mocks.NewMockBuyBackRepository(ctrl),
		photos:   mocks.NewMockPhotoStore(ctrl),
		cache:    mocks.NewMockCacheRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	svc := services.NewBuyBackService(m.board, m.photos, m.cache, m.notifier, helpers.TestSlogger())
	return svc, m
}

func TestBuyBackService_Sell(t *testing.T) {
	actor := helpers.CreateTestActor("test-project", domain.DepartmentSetOps)

	t.Run("lists_with_photo", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem()
		photo := &ports.BuyBackPhoto{Data: []byte("jpeg bytes"), ContentType: "image/jpeg"}

		m.photos.EXPECT().
			Upload(gomock.Any(), "buyback/test-project/"+item.ID, gomock.Any(), "image/jpeg").
			Return("https://cdn.example.com/"+item.ID, nil)
		m.board.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *domain.BuyBackItem) error {
				assert.Equal(t, domain.BuyBackAvailable, saved.Status)
				assert.Equal(t, "https://cdn.example.com/"+item.ID, saved.Photo)
				return nil
			})
		m.cache.EXPECT().
			Increment(gomock.Any(), services.UnreadKey("test-project")).
			Return(int64(1), nil)
		m.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), ports.SeverityInfo, domain.DepartmentProduction).
			Return(nil)

		require.NoError(t, svc.Sell(context.Background(), actor, item, photo))
	})

	t.Run("photo_upload_failure_is_not_fatal", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem()
		photo := &ports.BuyBackPhoto{Data: []byte("jpeg bytes"), ContentType: "image/jpeg"}

		m.photos.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))
		m.board.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *domain.BuyBackItem) error {
				assert.Empty(t, saved.Photo, "listed without a photo")
				return nil
			})
		m.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		require.NoError(t, svc.Sell(context.Background(), actor, item, photo))
	})

	t.Run("fills_id_seller_and_date", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
			b.ID = ""
			b.SellerDepartment = ""
		})

		m.board.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved *domain.BuyBackItem) error {
				assert.NotEmpty(t, saved.ID)
				assert.Equal(t, domain.DepartmentSetOps, saved.SellerDepartment)
				assert.False(t, saved.Date.IsZero())
				return nil
			})
		m.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		require.NoError(t, svc.Sell(context.Background(), actor, item, nil))
	})

	t.Run("foreign_department_rejected", func(t *testing.T) {
		svc, _ := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem()

		grip := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
		err := svc.Sell(context.Background(), grip, item, nil)
		var authErr domain.AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})
}

func TestBuyBackService_ToggleReservation(t *testing.T) {
	buyer := helpers.CreateTestActor("test-project", domain.DepartmentCamera)

	t.Run("reserves_available_entry", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem()
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		m.board.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any(), ports.SeverityInfo, domain.DepartmentSetOps).
			Return(nil)

		got, err := svc.ToggleReservation(context.Background(), buyer, "test-project", item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BuyBackReserved, got.Status)
		require.NotNil(t, got.ReservedBy)
		assert.Equal(t, domain.DepartmentCamera, *got.ReservedBy)
	})

	t.Run("holder_cancels_own_reservation", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		held := domain.DepartmentCamera
		item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
			b.Status = domain.BuyBackReserved
			b.ReservedBy = &held
			b.ReservedByUserID = buyer.UserID
		})
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		m.board.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.ToggleReservation(context.Background(), buyer, "test-project", item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BuyBackAvailable, got.Status)
		assert.Nil(t, got.ReservedBy)
	})

	t.Run("sold_entry_rejected", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
			b.Status = domain.BuyBackSold
		})
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)

		_, err := svc.ToggleReservation(context.Background(), buyer, "test-project", item.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sold items cannot be reserved")
	})
}

func TestBuyBackService_Confirm(t *testing.T) {
	seller := helpers.CreateTestActor("test-project", domain.DepartmentSetOps)

	svc, m := newBuyBackService(t)
	held := domain.DepartmentCamera
	item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
		b.Status = domain.BuyBackReserved
		b.ReservedBy = &held
	})
	m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
	m.board.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), ports.SeveritySuccess, domain.DepartmentSetOps).
		Return(nil)

	got, err := svc.Confirm(context.Background(), seller, "test-project", item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BuyBackSold, got.Status)
	require.NotNil(t, got.ReservedBy, "sale record keeps the buyer")
}

func TestBuyBackService_Delete(t *testing.T) {
	t.Run("seller_deletes_with_photo_cleanup", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
			b.Photo = "https://cdn.example.com/photo"
		})
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		m.board.EXPECT().Delete(gomock.Any(), "test-project", item.ID).Return(nil)
		m.photos.EXPECT().
			Delete(gomock.Any(), "buyback/test-project/"+item.ID).
			Return(nil)

		seller := helpers.CreateTestActor("test-project", domain.DepartmentSetOps)
		require.NoError(t, svc.Delete(context.Background(), seller, "test-project", item.ID))
	})

	t.Run("photo_cleanup_failure_is_not_fatal", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem(func(b *domain.BuyBackItem) {
			b.Photo = "https://cdn.example.com/photo"
		})
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)
		m.board.EXPECT().Delete(gomock.Any(), "test-project", item.ID).Return(nil)
		m.photos.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(errors.New("bucket unavailable"))

		seller := helpers.CreateTestActor("test-project", domain.DepartmentSetOps)
		require.NoError(t, svc.Delete(context.Background(), seller, "test-project", item.ID))
	})

	t.Run("foreign_department_rejected", func(t *testing.T) {
		svc, m := newBuyBackService(t)
		item := helpers.CreateTestBuyBackItem()
		m.board.EXPECT().FindByID(gomock.Any(), "test-project", item.ID).Return(item, nil)

		grip := helpers.CreateTestActor("test-project", domain.DepartmentGrip)
		err := svc.Delete(context.Background(), grip, "test-project", item.ID)
		var authErr domain.AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})
}

func TestBuyBackService_List(t *testing.T) {
	svc, m := newBuyBackService(t)
	want := []domain.BuyBackItem{*helpers.CreateTestBuyBackItem()}
	m.board.EXPECT().ListByProject(gomock.Any(), "test-project").Return(want, nil)

	got, err := svc.List(context.Background(), "test-project")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
