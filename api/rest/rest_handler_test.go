package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vibhuti270/virtual-herbal-backend/api/rest"
	eventmocks "github.com/Vibhuti270/virtual-herbal-backend/events/mocks"
	"github.com/Vibhuti270/virtual-herbal-backend/models"
	"github.com/Vibhuti270/virtual-herbal-backend/service"
	"github.com/Vibhuti270/virtual-herbal-backend/store"
	storemocks "github.com/Vibhuti270/virtual-herbal-backend/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupHandler(t *testing.T) (*rest.Handler, *storemocks.MockStore) {
	mockStore := new(storemocks.MockStore)
	mockPublisher := new(eventmocks.MockPublisher)
	mockPublisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc, err := service.NewService(mockStore, mockStore, mockPublisher)
	assert.NoError(t, err)

	return rest.NewHandler(svc), mockStore
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	msg, _ := body["error"].(string)
	return msg
}

func TestHandleHome_RecordsVisit(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("GetVisitCounter", mock.Anything).Return(models.VisitCounter{Count: 9}, nil)
	mockStore.On("IncrementVisitCount", mock.Anything, 1).Return(10, nil)

	rec := httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API of the Virtual Herbal Garden", rec.Body.String())
	mockStore.AssertExpectations(t)
}

func TestHandleHome_Failure(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("GetVisitCounter", mock.Anything).Return(models.VisitCounter{}, store.ErrItemNotFound)
	mockStore.On("CreateVisitCounter", mock.Anything, 1).Return(errors.New("permission denied"))

	rec := httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to increment visit count", decodeError(t, rec))
	assert.NotContains(t, rec.Body.String(), "API of the Virtual Herbal Garden")
	assert.NotContains(t, rec.Body.String(), "permission denied")
}

func TestHandleHome_MethodNotAllowed(t *testing.T) {
	h, mockStore := setupHandler(t)

	rec := httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	mockStore.AssertNotCalled(t, "GetVisitCounter", mock.Anything)
}

func TestHandleVisitCount(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("GetVisitCounter", mock.Anything).Return(models.VisitCounter{Count: 12}, nil)

	rec := httptest.NewRecorder()
	h.HandleVisitCount(rec, httptest.NewRequest(http.MethodGet, "/api/visit-count", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"visitCount":12}`, rec.Body.String())
	mockStore.AssertNotCalled(t, "IncrementVisitCount", mock.Anything, mock.Anything)
}

func TestHandleVisitCount_NoCounterYet(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("GetVisitCounter", mock.Anything).Return(models.VisitCounter{}, store.ErrItemNotFound)

	rec := httptest.NewRecorder()
	h.HandleVisitCount(rec, httptest.NewRequest(http.MethodGet, "/api/visit-count", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"visitCount":0}`, rec.Body.String())
}

func TestHandleVisitCount_Failure(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("GetVisitCounter", mock.Anything).Return(models.VisitCounter{}, context.DeadlineExceeded)

	rec := httptest.NewRecorder()
	h.HandleVisitCount(rec, httptest.NewRequest(http.MethodGet, "/api/visit-count", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch visit count", decodeError(t, rec))
}

func TestHandleUsers(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("ListAccounts", mock.Anything, int32(1000), "").Return(models.AccountPage{
		Accounts: []models.Account{
			{Uid: "u1", Email: "neem@example.com", DisplayName: "Neem"},
			{Uid: "u2"},
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.HandleUsers(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalUsers": 2,
		"users": [
			{"uid": "u1", "email": "neem@example.com", "displayName": "Neem"},
			{"uid": "u2", "displayName": "Anonymous"}
		]
	}`, rec.Body.String())
}

func TestHandleUsers_Empty(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("ListAccounts", mock.Anything, int32(1000), "").Return(models.AccountPage{}, nil)

	rec := httptest.NewRecorder()
	h.HandleUsers(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":0,"users":[]}`, rec.Body.String())
}

func TestHandleUsers_Failure(t *testing.T) {
	h, mockStore := setupHandler(t)

	mockStore.On("ListAccounts", mock.Anything, int32(1000), "").Return(models.AccountPage{}, errors.New("boom"))

	rec := httptest.NewRecorder()
	h.HandleUsers(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch users", decodeError(t, rec))
	assert.NotContains(t, rec.Body.String(), "boom")
}
