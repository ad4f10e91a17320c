// internal/handlers/surplus_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rperset/setstock/internal/core/domain"
	"github.com/rperset/setstock/internal/core/ports"
	"github.com/rperset/setstock/internal/handlers"
	"github.com/rperset/setstock/internal/handlers/middleware"
	"github.com/rperset/setstock/test/helpers"
	"github.com/rperset/setstock/test/mocks"
)

// requestWithActor builds a request carrying path values and the acting user,
// as the routing and identity middleware would.
func requestWithActor(method, target string, body []byte, actor domain.Actor, pathValues map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	ctx := context.WithValue(req.Context(), middleware.ContextKeyActor, actor)
	return req.WithContext(ctx)
}

func TestSurplusHandler_ListItems(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockSurplusService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "returns_items_with_count",
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					ListItems(gomock.Any(), "proj-1").
					Return([]domain.Item{*helpers.CreateTestItem(), *helpers.CreateTestItem()}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Items []domain.Item `json:"items"`
					Count int           `json:"count"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 2, response.Count)
				assert.Len(t, response.Items, 2)
			},
		},
		{
			name: "service_error",
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					ListItems(gomock.Any(), "proj-1").
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Internal server error", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockSurplusService(ctrl)
			handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())
			tt.setupMocks(mockService)

			req := requestWithActor("GET", "/api/v1/projects/proj-1/items", nil,
				helpers.CreateTestActor("proj-1", domain.DepartmentGrip),
				map[string]string{"projectID": "proj-1"})
			w := httptest.NewRecorder()

			handler.ListItems(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestSurplusHandler_CreateItem(t *testing.T) {
	actor := helpers.CreateTestActor("proj-1", domain.DepartmentGrip)

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockSurplusService)
		expectedStatus int
	}{
		{
			name: "creates_item_with_defaults",
			body: `{"name":"Gaffer tape","quantity_initial":10,"unit":"roll"}`,
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					CreateItem(gomock.Any(), actor, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Actor, item *domain.Item) error {
						assert.NotEmpty(t, item.ID)
						assert.Equal(t, "proj-1", item.ProjectID)
						assert.Equal(t, domain.DepartmentGrip, item.Department,
							"department defaults to the actor's")
						assert.Equal(t, 10, item.QuantityCurrent,
							"current quantity defaults to initial")
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed_json",
			body:           `{"name":`,
			setupMocks:     func(m *mocks.MockSurplusService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "authorization_error_maps_to_403",
			body: `{"name":"Gaffer tape","department":"sound","quantity_initial":1}`,
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					CreateItem(gomock.Any(), actor, gomock.Any()).
					Return(domain.AuthorizationError{Actor: actor.Department, Action: "create items for this department"})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "validation_error_maps_to_400",
			body: `{"name":"","quantity_initial":1}`,
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					CreateItem(gomock.Any(), actor, gomock.Any()).
					Return(domain.ValidationError{Field: "name", Reason: "is required"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockSurplusService(ctrl)
			handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())
			tt.setupMocks(mockService)

			req := requestWithActor("POST", "/api/v1/projects/proj-1/items", []byte(tt.body),
				actor, map[string]string{"projectID": "proj-1"})
			w := httptest.NewRecorder()

			handler.CreateItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestSurplusHandler_ProposeDisposition(t *testing.T) {
	actor := helpers.CreateTestActor("proj-1", domain.DepartmentGrip)
	suggested := decimal.NewFromFloat(22.5)

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSurplusService(ctrl)
	handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())

	mockService.EXPECT().
		ProposeDisposition(gomock.Any(), actor, "proj-1", "itm-1", domain.SurplusBuyBack).
		Return(&ports.DispositionQuote{
			ProjectID:      "proj-1",
			ItemID:         "itm-1",
			Action:         domain.SurplusBuyBack,
			Composition:    domain.AllNew,
			SuggestedPrice: suggested,
			ResalePrice:    &suggested,
		}, nil)

	req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/dispose/quote",
		[]byte(`{"action":"buyback"}`), actor,
		map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
	w := httptest.NewRecorder()

	handler.ProposeDisposition(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	var quote ports.DispositionQuote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, domain.SurplusBuyBack, quote.Action)
	assert.True(t, quote.SuggestedPrice.Equal(suggested))
}

func TestSurplusHandler_CommitDisposition(t *testing.T) {
	actor := helpers.CreateTestActor("proj-1", domain.DepartmentGrip)

	t.Run("path_overrides_body_ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockSurplusService(ctrl)
		handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())

		mockService.EXPECT().
			CommitDisposition(gomock.Any(), actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Actor, quote ports.DispositionQuote) (*ports.DispositionResult, error) {
				assert.Equal(t, "proj-1", quote.ProjectID, "path wins over request body")
				assert.Equal(t, "itm-1", quote.ItemID)
				return &ports.DispositionResult{
					Original: domain.Item{ID: "itm-1", SurplusAction: quote.Action},
				}, nil
			})

		body := `{"project_id":"spoofed","item_id":"spoofed","action":"marketplace","resale_price":"4.5"}`
		req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/dispose",
			[]byte(body), actor,
			map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
		w := httptest.NewRecorder()

		handler.CommitDisposition(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("partial_write_maps_to_500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockSurplusService(ctrl)
		handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())

		mockService.EXPECT().
			CommitDisposition(gomock.Any(), actor, gomock.Any()).
			Return(nil, &domain.PartialWriteError{
				Op:        "commit_disposition",
				Completed: []string{"update_original"},
				Err:       errors.New("connection reset"),
			})

		req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/dispose",
			[]byte(`{"action":"marketplace"}`), actor,
			map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
		w := httptest.NewRecorder()

		handler.CommitDisposition(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Operation partially completed, contact support", response["error"])
	})
}

func TestSurplusHandler_AdjustQuantity(t *testing.T) {
	actor := helpers.CreateTestActor("proj-1", domain.DepartmentGrip)

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockSurplusService)
		expectedStatus int
	}{
		{
			name: "applies_delta",
			body: `{"delta":-3}`,
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					AdjustQuantity(gomock.Any(), actor, "proj-1", "itm-1", -3).
					Return(helpers.CreateTestItem(func(i *domain.Item) {
						i.QuantityCurrent = 7
						i.Status = domain.StatusUsed
					}), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero_delta_rejected",
			body:           `{"delta":0}`,
			setupMocks:     func(m *mocks.MockSurplusService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not_found",
			body: `{"delta":-1}`,
			setupMocks: func(m *mocks.MockSurplusService) {
				m.EXPECT().
					AdjustQuantity(gomock.Any(), actor, "proj-1", "itm-1", -1).
					Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockSurplusService(ctrl)
			handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())
			tt.setupMocks(mockService)

			req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/quantity",
				[]byte(tt.body), actor,
				map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
			w := httptest.NewRecorder()

			handler.AdjustQuantity(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestSurplusHandler_MarkBought(t *testing.T) {
	actor := helpers.CreateTestActor("proj-1", domain.DepartmentGrip)

	t.Run("with_price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockSurplusService(ctrl)
		handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())

		mockService.EXPECT().
			MarkBought(gomock.Any(), actor, "proj-1", "itm-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Actor, _, _ string, price *decimal.Decimal) (*domain.Item, error) {
				require.NotNil(t, price)
				assert.True(t, price.Equal(decimal.NewFromFloat(12.99)))
				return helpers.CreateTestItem(), nil
			})

		req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/bought",
			[]byte(`{"price":"12.99"}`), actor,
			map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
		w := httptest.NewRecorder()

		handler.MarkBought(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("empty_body_means_no_price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockSurplusService(ctrl)
		handler := handlers.NewSurplusHandler(mockService, helpers.TestSlogger())

		mockService.EXPECT().
			MarkBought(gomock.Any(), actor, "proj-1", "itm-1", gomock.Nil()).
			Return(helpers.CreateTestItem(), nil)

		req := requestWithActor("POST", "/api/v1/projects/proj-1/items/itm-1/bought",
			nil, actor, map[string]string{"projectID": "proj-1", "itemID": "itm-1"})
		w := httptest.NewRecorder()

		handler.MarkBought(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})
}
