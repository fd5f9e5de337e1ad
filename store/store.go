package store

import (
	"context"
	"errors"

	"github.com/Vibhuti270/virtual-herbal-backend/models"
)

type StatsStore interface {
	GetVisitCounter(ctx context.Context) (models.VisitCounter, error)
	// CreateVisitCounter fails with ErrConditionFailed if the counter already exists
	CreateVisitCounter(ctx context.Context, count int) error
	// IncrementVisitCount atomically adds delta and returns the new count.
	// Fails with ErrItemNotFound if the counter does not exist.
	IncrementVisitCount(ctx context.Context, delta int) (int, error)
}

type AccountDirectory interface {
	ListAccounts(ctx context.Context, maxResults int32, pageToken string) (models.AccountPage, error)
}

// Custom error types for clarity
var (
	ErrItemNotFound    = errors.New("item does not exist")
	ErrConditionFailed = errors.New("condition not met")
	ErrInvalidCursor   = errors.New("invalid page token")
)
