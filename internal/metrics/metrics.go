// Package metrics records recruiting activity events for offline
// reporting. Recording is fire-and-forget: the HTTP path never blocks
// on the warehouse, and a full queue drops the event.
package metrics

import (
	"context"
	"time"
)

// Event is a single recruiting activity record.
type Event struct {
	ID         string
	Type       string // job.published, interview.scheduled, ...
	SubjectID  string
	Actor      string
	Payload    string // JSON detail blob
	OccurredAt time.Time
}

type Recorder interface {
	Record(ctx context.Context, event Event)

	Close(ctx context.Context) error
}

// NopRecorder is used when no warehouse is configured.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}

func (NopRecorder) Close(context.Context) error { return nil }
