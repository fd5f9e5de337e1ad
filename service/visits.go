package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vibhuti270/virtual-herbal-backend/events"
	"github.com/Vibhuti270/virtual-herbal-backend/store"
)

// RecordVisit creates the visit counter at 1 or atomically increments it,
// returning the count after this visit.
func (s *Service) RecordVisit(ctx context.Context) (int, error) {
	count, err := s.incrementOrCreate(ctx)
	if err != nil {
		return 0, fmt.Errorf("record visit: %w", err)
	}

	s.publishVisitCount(ctx, count)
	return count, nil
}

func (s *Service) incrementOrCreate(ctx context.Context) (int, error) {
	_, err := s.Stats.GetVisitCounter(ctx)
	if err == nil {
		return s.Stats.IncrementVisitCount(ctx, 1)
	}
	if !errors.Is(err, store.ErrItemNotFound) {
		return 0, err
	}

	err = s.Stats.CreateVisitCounter(ctx, 1)
	if err == nil {
		return 1, nil
	}
	if errors.Is(err, store.ErrConditionFailed) {
		// Another request created it between our read and write
		return s.Stats.IncrementVisitCount(ctx, 1)
	}
	return 0, err
}

// GetVisitCount returns the current count, or 0 before the first visit
func (s *Service) GetVisitCount(ctx context.Context) (int, error) {
	counter, err := s.Stats.GetVisitCounter(ctx)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get visit count: %w", err)
	}
	return counter.Count, nil
}

func (s *Service) publishVisitCount(ctx context.Context, count int) {
	if s.Events == nil {
		return
	}

	msg, err := json.Marshal(events.VisitEvent{VisitCount: count, At: time.Now().Unix()})
	if err != nil {
		slog.Warn("failed to encode visit event", "error", err)
		return
	}
	if err := s.Events.Publish(ctx, events.VisitCountChannel, msg); err != nil {
		slog.Warn("failed to publish visit event", "error", err, "visitCount", count)
	}
}
