// Package templates handles message-template authoring: cursor-aware
// placeholder insertion, placeholder rendering, and the send flow that
// hands rendered messages to the delivery collaborator.
package templates

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
)

var tracer = telemetry.GetTracer("urehr/templates")

// Splice inserts text at the editor's current selection, replacing the
// selected range. Offsets are rune positions; out-of-range or inverted
// selections are clamped rather than rejected. Returns the new text
// and the cursor position just after the insertion.
func Splice(text string, selStart, selEnd int, insertion string) (string, int) {
	runes := []rune(text)
	n := len(runes)

	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > n {
			return n
		}
		return v
	}
	selStart, selEnd = clamp(selStart), clamp(selEnd)
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}

	ins := []rune(insertion)
	out := make([]rune, 0, n-(selEnd-selStart)+len(ins))
	out = append(out, runes[:selStart]...)
	out = append(out, ins...)
	out = append(out, runes[selEnd:]...)
	return string(out), selStart + len(ins)
}

// Render substitutes {{token}} placeholders from data. Tokens without
// a binding are left intact so a preview makes the gap visible.
func Render(text string, data map[string]string) string {
	for token, value := range data {
		text = strings.ReplaceAll(text, "{{"+token+"}}", value)
	}
	return text
}

type SendRequest struct {
	TemplateID string            `json:"template_id"`
	Recipient  string            `json:"recipient"`
	Data       map[string]string `json:"data"`
}

type SendResult struct {
	TemplateID string `json:"template_id"`
	Channel    string `json:"channel"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject,omitempty"`
	Body       string `json:"body"`
	Usage      int    `json:"usage"`
}

type Service struct {
	store     *store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(st *store.Store, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{store: st, publisher: publisher, logger: logger}
}

// Send renders the template against the supplied data, bumps its usage
// counter and emits the delivery event. Delivery failures are logged
// but do not fail the request; the counter has already advanced.
func (s *Service) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	ctx, span := tracer.Start(ctx, "templates.Send")
	defer span.End()

	if req.Recipient == "" {
		return SendResult{}, errors.InvalidInput("recipient is required", nil)
	}

	tpl, err := s.store.GetTemplate(req.TemplateID)
	if err != nil {
		return SendResult{}, err
	}

	body := Render(tpl.Content, req.Data)
	subject := ""
	if tpl.Channel == models.ChannelEmail {
		subject = Render(tpl.Subject, req.Data)
	}

	updated, err := s.store.IncrementTemplateUsage(tpl.ID)
	if err != nil {
		return SendResult{}, err
	}

	delivery := events.TemplateDelivery{
		TemplateID: tpl.ID,
		Channel:    tpl.Channel,
		Recipient:  req.Recipient,
		Subject:    subject,
		Content:    body,
	}
	if err := s.publisher.TemplateDelivery(ctx, delivery); err != nil {
		span.RecordError(err)
		s.logger.Error("failed to publish template delivery",
			zap.String("template_id", tpl.ID),
			zap.Error(err))
	}

	s.logger.Info("template sent",
		zap.String("template_id", tpl.ID),
		zap.String("channel", string(tpl.Channel)),
		zap.String("recipient", req.Recipient))

	return SendResult{
		TemplateID: tpl.ID,
		Channel:    string(tpl.Channel),
		Recipient:  req.Recipient,
		Subject:    subject,
		Body:       body,
		Usage:      updated.Usage,
	}, nil
}
