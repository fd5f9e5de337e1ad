package events

import "context"

// Channel carrying the visit count after every recorded visit
const VisitCountChannel = "stats:visitCount"

type VisitEvent struct {
	VisitCount int   `json:"visitCount"`
	At         int64 `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, channel string, message []byte) error
	Close() error
}
