package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storeapi/internal/model"
	"storeapi/internal/repository"
	repoMocks "storeapi/internal/repository/mocks"
)

func newStoreApp(repo *repoMocks.MockStoreRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/stores", CreateRecord[model.Store, model.StoreCreate, model.StoreUpdate](repo, storeResource))
	app.Get("/stores/:id", GetRecord[model.Store, model.StoreCreate, model.StoreUpdate](repo, storeResource))
	app.Put("/stores/:id", UpdateRecord[model.Store, model.StoreCreate, model.StoreUpdate](repo, storeResource))
	app.Delete("/stores/:id", DeleteRecord[model.Store, model.StoreCreate, model.StoreUpdate](repo, storeResource))
	return app
}

func TestCreateRecord(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(repoMocks.MockStoreRepository)
		app := newStoreApp(repo)
		in := model.StoreCreate{Name: "Main", Location: "Jakarta"}
		repo.On("Create", mock.Anything, in).Return(&model.Store{ID: 1, Name: "Main", Location: "Jakarta"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/stores", `{"name":"Main","location":"Jakarta"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id":1,"name":"Main","location":"Jakarta"}`, readBody(t, resp))
		repo.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			details map[string]string
		}{
			{"missing field", `{"name":"Main"}`, map[string]string{"location": "field required"}},
			{"empty body", ``, map[string]string{"body": "request body is required"}},
			{"malformed", `{"name":`, map[string]string{"body": "malformed JSON"}},
			{"wrong type", `{"name":1,"location":"x"}`, map[string]string{"name": "invalid type, expected string"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(repoMocks.MockStoreRepository)
				app := newStoreApp(repo)

				resp, _ := app.Test(jsonRequest(http.MethodPost, "/stores", tt.body))

				assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
				body := decodeError(t, resp)
				assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
				assert.Equal(t, tt.details, body.Error.Details)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("storage errors", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"constraint", &repository.ConstraintError{Kind: repository.ConstraintCheck}, http.StatusBadRequest, "CONSTRAINT_VIOLATION"},
			{"unavailable", fmt.Errorf("create stores: %w", repository.ErrStorageUnavailable), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
			{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(repoMocks.MockStoreRepository)
				app := newStoreApp(repo)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

				resp, _ := app.Test(jsonRequest(http.MethodPost, "/stores", `{"name":"Main","location":"Jakarta"}`))

				assert.Equal(t, tt.wantStatus, resp.StatusCode)
				body := decodeError(t, resp)
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotContains(t, body.Error.Message, "disk")
			})
		}
	})
}

func TestCreateRecordDates(t *testing.T) {
	repo := new(repoMocks.MockStoreInspectionRepository)
	app := fiber.New()
	app.Post("/store-inspections", CreateRecord[model.StoreInspection, model.StoreInspectionCreate, model.StoreInspectionUpdate](repo, storeInspectionResource))

	t.Run("parses the date", func(t *testing.T) {
		in := model.StoreInspectionCreate{StoreID: 2, InspectionDate: model.NewDate(2024, 3, 1), Result: "pass"}
		repo.On("Create", mock.Anything, in).
			Return(&model.StoreInspection{ID: 9, StoreID: 2, InspectionDate: in.InspectionDate, Result: "pass"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/store-inspections", `{"store_id":2,"inspection_date":"2024-03-01","result":"pass"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id":9,"store_id":2,"inspection_date":"2024-03-01","result":"pass"}`, readBody(t, resp))
	})

	t.Run("rejects a bad date", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/store-inspections", `{"store_id":2,"inspection_date":"2024-13-01","result":"pass"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, map[string]string{"inspection_date": msgDate}, decodeError(t, resp).Error.Details)
	})

	t.Run("requires the date", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/store-inspections", `{"store_id":2,"result":"pass"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "field required", decodeError(t, resp).Error.Details["inspection_date"])
	})

	repo.AssertExpectations(t)
}

func TestGetRecord(t *testing.T) {
	repo := new(repoMocks.MockStoreRepository)
	app := newStoreApp(repo)

	t.Run("found", func(t *testing.T) {
		repo.On("Get", mock.Anything, int64(1)).Return(&model.Store{ID: 1, Name: "Main", Location: "Jakarta"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/stores/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.Store
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Main", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("Get", mock.Anything, int64(42)).Return(nil, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/stores/42", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "Store not found", body.Error.Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/stores/abc", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "must be an integer", decodeError(t, resp).Error.Details["id"])
	})

	t.Run("storage unavailable", func(t *testing.T) {
		repo.On("Get", mock.Anything, int64(7)).Return(nil, repository.ErrStorageUnavailable).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/stores/7", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	repo.AssertExpectations(t)
}

func TestUpdateRecord(t *testing.T) {
	t.Run("applies present fields", func(t *testing.T) {
		repo := new(repoMocks.MockStoreRepository)
		app := newStoreApp(repo)
		existing := &model.Store{ID: 1, Name: "Main", Location: "Jakarta"}
		repo.On("Get", mock.Anything, int64(1)).Return(existing, nil).Once()
		repo.On("Update", mock.Anything, existing, mock.MatchedBy(func(in model.StoreUpdate) bool {
			return in.Name == nil && in.Location != nil && *in.Location == "Bandung"
		})).Return(&model.Store{ID: 1, Name: "Main", Location: "Bandung"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/stores/1", `{"location":"Bandung"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id":1,"name":"Main","location":"Bandung"}`, readBody(t, resp))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(repoMocks.MockStoreRepository)
		app := newStoreApp(repo)
		repo.On("Get", mock.Anything, int64(5)).Return(nil, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/stores/5", `{"name":"X"}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Store not found", decodeError(t, resp).Error.Message)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty string rejected", func(t *testing.T) {
		repo := new(repoMocks.MockStoreRepository)
		app := newStoreApp(repo)

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/stores/1", `{"name":""}`))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "must be at least 1 characters", decodeError(t, resp).Error.Details["name"])
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestUpdateRecordUniqueEmail(t *testing.T) {
	repo := new(repoMocks.MockCustomerRepository)
	app := fiber.New()
	app.Put("/customers/:id", UpdateRecord[model.Customer, model.CustomerCreate, model.CustomerUpdate](repo, customerResource))

	existing := &model.Customer{ID: 3, Name: "Ann", Email: "ann@example.com"}
	repo.On("Get", mock.Anything, int64(3)).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing, mock.Anything).
		Return(nil, &repository.ConstraintError{Kind: repository.ConstraintUnique, Constraint: "idx_customers_email"}).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/customers/3", `{"email":"bob@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body.Error.Code)
	assert.Equal(t, "email already registered", body.Error.Message)
	repo.AssertExpectations(t)
}

func TestDeleteRecord(t *testing.T) {
	repo := new(repoMocks.MockStoreRepository)
	app := newStoreApp(repo)

	t.Run("returns the removed record", func(t *testing.T) {
		repo.On("Delete", mock.Anything, int64(1)).Return(&model.Store{ID: 1, Name: "Main", Location: "Jakarta"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/stores/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id":1,"name":"Main","location":"Jakarta"}`, readBody(t, resp))
	})

	t.Run("not found", func(t *testing.T) {
		repo.On("Delete", mock.Anything, int64(2)).Return(nil, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/stores/2", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("still referenced", func(t *testing.T) {
		repo.On("Delete", mock.Anything, int64(3)).
			Return(nil, &repository.ConstraintError{Kind: repository.ConstraintForeignKey}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/stores/3", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, msgReferenced, decodeError(t, resp).Error.Message)
	})

	repo.AssertExpectations(t)
}

func TestConstraintMessage(t *testing.T) {
	tests := []struct {
		kind     repository.ConstraintKind
		res      Resource
		deleting bool
		want     string
	}{
		{repository.ConstraintUnique, customerResource, false, "email already registered"},
		{repository.ConstraintUnique, storeResource, false, "record already exists"},
		{repository.ConstraintForeignKey, purchaseResource, false, msgMissingTarget},
		{repository.ConstraintForeignKey, productResource, true, msgReferenced},
		{repository.ConstraintCheck, productArrivalResource, false, "value out of range"},
		{repository.ConstraintNotNull, storeResource, false, "constraint violation"},
	}
	for _, tt := range tests {
		got := tt.res.constraintMessage(&repository.ConstraintError{Kind: tt.kind}, tt.deleting)
		assert.Equal(t, tt.want, got, "%s on %s", tt.kind, tt.res.Label)
	}
}

func TestUpdateRecordBadDate(t *testing.T) {
	repo := new(repoMocks.MockProductArrivalRepository)
	app := fiber.New()
	app.Put("/product-arrivals/:id", UpdateRecord[model.ProductArrival, model.ProductArrivalCreate, model.ProductArrivalUpdate](repo, productArrivalResource))

	for _, body := range []string{`{"arrival_date":"2024-02-30"}`, `{"arrival_date":7}`} {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/product-arrivals/1", body))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, body)
		assert.Equal(t, map[string]string{"arrival_date": msgDate}, decodeError(t, resp).Error.Details, body)
	}
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
