package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/config"
	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
)

var tracer = telemetry.GetTracer("urehr/events")

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, cfg *config.Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("urehr-ats"),
		nats.RetryOnFailedConnect(true),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) publish(ctx context.Context, subject string, payload interface{}) error {
	_, span := tracer.Start(ctx, "events.publish")
	defer span.End()

	data, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling event", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", subject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(subject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish event",
			zap.String("subject", subject),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published event", zap.String("subject", subject))
	return nil
}

func (p *natsPublisher) JobPublished(ctx context.Context, job models.Job) error {
	return p.publish(ctx, JobPublishedSubject, job)
}

func (p *natsPublisher) InterviewScheduled(ctx context.Context, interview models.Interview) error {
	return p.publish(ctx, InterviewScheduledSubject, interview)
}

func (p *natsPublisher) TemplateDelivery(ctx context.Context, delivery TemplateDelivery) error {
	return p.publish(ctx, TemplateDeliverySubject, delivery)
}

func (p *natsPublisher) IntegrationConnected(ctx context.Context, connected IntegrationConnected) error {
	return p.publish(ctx, IntegrationConnectedSubject, connected)
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
