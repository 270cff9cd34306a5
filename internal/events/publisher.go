// Package events publishes the ATS's outbound collaborator messages:
// job distribution, interview invitations, template delivery, and
// integration connections all leave the service as NATS events.
package events

import (
	"context"

	"github.com/Sortedsinghal/URE-HR/internal/models"
)

const (
	JobPublishedSubject         = "ats.jobs.published"
	InterviewScheduledSubject   = "ats.interviews.scheduled"
	TemplateDeliverySubject     = "ats.templates.delivery"
	IntegrationConnectedSubject = "ats.integrations.connected"
)

// TemplateDelivery is handed to the delivery collaborator with the
// placeholders already resolved.
type TemplateDelivery struct {
	TemplateID string                 `json:"template_id"`
	Channel    models.TemplateChannel `json:"channel"`
	Recipient  string                 `json:"recipient"`
	Subject    string                 `json:"subject,omitempty"`
	Content    string                 `json:"content"`
}

type IntegrationConnected struct {
	IntegrationID string `json:"integration_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
}

type Publisher interface {
	JobPublished(ctx context.Context, job models.Job) error
	InterviewScheduled(ctx context.Context, interview models.Interview) error
	TemplateDelivery(ctx context.Context, delivery TemplateDelivery) error
	IntegrationConnected(ctx context.Context, connected IntegrationConnected) error
	Close()
}

// NopPublisher discards every event. Used in tests and when no broker
// is configured.
type NopPublisher struct{}

func (NopPublisher) JobPublished(context.Context, models.Job) error                 { return nil }
func (NopPublisher) InterviewScheduled(context.Context, models.Interview) error     { return nil }
func (NopPublisher) TemplateDelivery(context.Context, TemplateDelivery) error       { return nil }
func (NopPublisher) IntegrationConnected(context.Context, IntegrationConnected) error {
	return nil
}
func (NopPublisher) Close() {}
