// Package events publishes ledger changes to a message broker so other
// consumers (reminders, reporting) can react without polling the database.
package events

import (
	"context"
	"encoding/json"
	"time"

	"wisenkap/internal/logger"
)

// Event types.
const (
	BudgetCreated   = "budget.created"
	BudgetDeleted   = "budget.deleted"
	PostingRecorded = "posting.recorded"
)

// Event is the message body published for every committed ledger change.
type Event struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id"`
	BudgetID   uint      `json:"budget_id"`
	Kind       string    `json:"kind,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Balance    string    `json:"balance,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(_ context.Context, event Event) error {
	logger.Get().Debugw("event dropped, no broker configured", "type", event.Type, "budget_id", event.BudgetID)
	return nil
}

// Recorder keeps published events in memory. Tests use it to assert on what
// a service emitted.
type Recorder struct {
	ch chan Event
}

// NewRecorder creates a Recorder holding up to size events.
func NewRecorder(size int) *Recorder {
	return &Recorder{ch: make(chan Event, size)}
}

// Publish implements Publisher.
func (r *Recorder) Publish(_ context.Context, event Event) error {
	select {
	case r.ch <- event:
	default:
	}
	return nil
}

// Events drains the events recorded so far.
func (r *Recorder) Events() []Event {
	var out []Event
	for {
		select {
		case e := <-r.ch:
			out = append(out, e)
		default:
			return out
		}
	}
}
