package templates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/store"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		insertion  string
		wantText   string
		wantCursor int
	}{
		{"empty text", "", 0, 0, "{{candidate.name}}", "{{candidate.name}}", 18},
		{"cursor mid-text", "Dear ,", 5, 5, "{{candidate.name}}", "Dear {{candidate.name}},", 23},
		{"replaces selection", "Dear NAME,", 5, 9, "{{candidate.name}}", "Dear {{candidate.name}},", 23},
		{"inverted selection normalized", "Dear NAME,", 9, 5, "{{candidate.name}}", "Dear {{candidate.name}},", 23},
		{"offsets clamped", "Hi", -3, 99, "X", "X", 1},
		{"appends at end", "Hi", 2, 2, "!", "Hi!", 3},
		{"rune safe", "héllo", 2, 2, "X", "héXllo", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotCursor := Splice(tt.text, tt.start, tt.end, tt.insertion)
			assert.Equal(t, tt.wantText, gotText)
			assert.Equal(t, tt.wantCursor, gotCursor)
		})
	}
}

func TestRender(t *testing.T) {
	text := "Hi {{candidate.name}}, interview for {{job.title}} at {{interview.time}}."
	got := Render(text, map[string]string{
		"candidate.name": "Sarah Johnson",
		"job.title":      "Senior Frontend Developer",
	})

	assert.Equal(t, "Hi Sarah Johnson, interview for Senior Frontend Developer at {{interview.time}}.", got)
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	got := Render("{{mystery.token}}", map[string]string{"candidate.name": "x"})
	assert.Equal(t, "{{mystery.token}}", got)
}

type recordingPublisher struct {
	events.NopPublisher
	deliveries []events.TemplateDelivery
}

func (r *recordingPublisher) TemplateDelivery(_ context.Context, d events.TemplateDelivery) error {
	r.deliveries = append(r.deliveries, d)
	return nil
}

func TestSendRendersAndCountsUsage(t *testing.T) {
	st := store.New()
	pub := &recordingPublisher{}
	svc := NewService(st, pub, zap.NewNop())

	before, err := st.GetTemplate("3")
	require.NoError(t, err)

	result, err := svc.Send(context.Background(), SendRequest{
		TemplateID: "3",
		Recipient:  "+1 (555) 123-4567",
		Data: map[string]string{
			"candidate.name": "Sarah Johnson",
			"interview.time": "10:00",
			"job.title":      "Senior Frontend Developer",
			"interview.link": "https://meet.example.com/abc",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "sms", result.Channel)
	assert.Empty(t, result.Subject, "sms has no subject")
	assert.Contains(t, result.Body, "Sarah Johnson")
	assert.NotContains(t, result.Body, "{{")
	assert.Equal(t, before.Usage+1, result.Usage)

	after, err := st.GetTemplate("3")
	require.NoError(t, err)
	assert.Equal(t, before.Usage+1, after.Usage)

	require.Len(t, pub.deliveries, 1)
	assert.Equal(t, result.Body, pub.deliveries[0].Content)
	assert.Equal(t, "+1 (555) 123-4567", pub.deliveries[0].Recipient)
}

func TestSendEmailRendersSubject(t *testing.T) {
	st := store.New()
	svc := NewService(st, events.NopPublisher{}, zap.NewNop())

	result, err := svc.Send(context.Background(), SendRequest{
		TemplateID: "2",
		Recipient:  "sarah.johnson@email.com",
		Data: map[string]string{
			"candidate.name":   "Sarah Johnson",
			"job.title":        "Senior Frontend Developer",
			"review.timeframe": "5 business days",
			"company.name":     "URE HR",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Thank you for your application - Senior Frontend Developer", result.Subject)
	assert.Contains(t, result.Body, "within 5 business days")
}

func TestSendValidation(t *testing.T) {
	st := store.New()
	svc := NewService(st, events.NopPublisher{}, zap.NewNop())

	_, err := svc.Send(context.Background(), SendRequest{TemplateID: "1"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))

	_, err = svc.Send(context.Background(), SendRequest{TemplateID: "nope", Recipient: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))
}
