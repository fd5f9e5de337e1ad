package service

import (
	"errors"

	"github.com/Vibhuti270/virtual-herbal-backend/events"
	"github.com/Vibhuti270/virtual-herbal-backend/store"
)

type Service struct {
	Stats    store.StatsStore
	Accounts store.AccountDirectory
	// Events is optional; visits are still recorded when it is nil
	Events events.Publisher
}

func NewService(
	stats store.StatsStore,
	accounts store.AccountDirectory,
	publisher events.Publisher,
) (*Service, error) {
	if stats == nil {
		return nil, errors.New("stats store is required")
	}
	if accounts == nil {
		return nil, errors.New("account directory is required")
	}

	return &Service{
		Stats:    stats,
		Accounts: accounts,
		Events:   publisher,
	}, nil
}
