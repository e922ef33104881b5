package service

import (
	"context"
)

// Connection event actions.
const (
	ConnectionActionConnected    = "connected"
	ConnectionActionDisconnected = "disconnected"
)

// ConnectionEvent is published after every confirmed connect/disconnect so
// other views of the relationship can refetch instead of trusting a cache.
type ConnectionEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventID      string `json:"event_id"`
	PlayerID     string `json:"player_id"`
	RetailerID   string `json:"retailer_id"`
	RetailerName string `json:"retailer_name"`
	Action       string `json:"action"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConnectionEvent publishes a connection change for async processing
	PublishConnectionEvent(ctx context.Context, event *ConnectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
