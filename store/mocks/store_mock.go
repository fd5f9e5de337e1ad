package mocks

import (
	"context"

	"github.com/Vibhuti270/virtual-herbal-backend/models"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetVisitCounter(ctx context.Context) (models.VisitCounter, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.VisitCounter), args.Error(1)
}

func (m *MockStore) CreateVisitCounter(ctx context.Context, count int) error {
	args := m.Called(ctx, count)
	return args.Error(0)
}

func (m *MockStore) IncrementVisitCount(ctx context.Context, delta int) (int, error) {
	args := m.Called(ctx, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) ListAccounts(ctx context.Context, maxResults int32, pageToken string) (models.AccountPage, error) {
	args := m.Called(ctx, maxResults, pageToken)
	return args.Get(0).(models.AccountPage), args.Error(1)
}
