package service_test

import (
	"testing"

	eventmocks "github.com/Vibhuti270/virtual-herbal-backend/events/mocks"
	"github.com/Vibhuti270/virtual-herbal-backend/service"
	storemocks "github.com/Vibhuti270/virtual-herbal-backend/store/mocks"
	"github.com/stretchr/testify/assert"
)

func setupService(t *testing.T) (*service.Service, *storemocks.MockStore, *eventmocks.MockPublisher) {
	mockStore := new(storemocks.MockStore)
	mockPublisher := new(eventmocks.MockPublisher)

	svc, err := service.NewService(mockStore, mockStore, mockPublisher)
	assert.NoError(t, err)

	return svc, mockStore, mockPublisher
}

func TestNewService_RequiresStores(t *testing.T) {
	mockStore := new(storemocks.MockStore)

	_, err := service.NewService(nil, mockStore, nil)
	assert.Error(t, err)

	_, err = service.NewService(mockStore, nil, nil)
	assert.Error(t, err)

	svc, err := service.NewService(mockStore, mockStore, nil)
	assert.NoError(t, err)
	assert.Nil(t, svc.Events)
}
