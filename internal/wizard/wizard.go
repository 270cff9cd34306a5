// Package wizard implements the three-step job-creation flow as a
// server-side draft resource with a linear state machine: details,
// description, distribution, then a terminal submitted state.
package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
)

var tracer = telemetry.GetTracer("urehr/wizard")

type Step int

const (
	StepDetails Step = iota + 1
	StepDescription
	StepDistribution
)

const lastStep = StepDistribution

// Channel is one entry of the fixed distribution catalog. Recommended
// channels start enabled on every new draft.
type Channel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended"`
	Enabled     bool   `json:"enabled"`
}

func defaultChannels() []Channel {
	return []Channel{
		{Name: "LinkedIn", Description: "Professional network", Recommended: true, Enabled: true},
		{Name: "Indeed", Description: "Job search engine", Recommended: true, Enabled: true},
		{Name: "AngelList", Description: "Startup jobs", Recommended: false},
		{Name: "Stack Overflow", Description: "Developer community", Recommended: false},
	}
}

type Draft struct {
	ID        string         `json:"id"`
	Step      Step           `json:"step"`
	Submitted bool           `json:"submitted"`
	Form      models.JobForm `json:"form"`
	Channels  []Channel      `json:"channels"`
	JobID     string         `json:"job_id,omitempty"`
}

// FieldUpdates carries field-level edits; nil fields are left as they
// are, so each step only touches its own subset of the form record.
type FieldUpdates struct {
	Title           *string `json:"title"`
	Location        *string `json:"location"`
	JobType         *string `json:"job_type"`
	Department      *string `json:"department"`
	ExperienceLevel *string `json:"experience_level"`
	Description     *string `json:"description"`
	Requirements    *string `json:"requirements"`
	Benefits        *string `json:"benefits"`
}

type Service struct {
	mu        sync.Mutex
	drafts    map[string]*Draft
	store     *store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(st *store.Store, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{
		drafts:    make(map[string]*Draft),
		store:     st,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) CreateDraft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &Draft{
		ID:       uuid.NewString(),
		Step:     StepDetails,
		Channels: defaultChannels(),
	}
	s.drafts[d.ID] = d
	return *d
}

func (s *Service) GetDraft(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.find(id)
	if err != nil {
		return Draft{}, err
	}
	return *d, nil
}

func (s *Service) find(id string) (*Draft, error) {
	if d, ok := s.drafts[id]; ok {
		return d, nil
	}
	return nil, errors.NotFound("draft not found", nil)
}

func (s *Service) UpdateFields(id string, u FieldUpdates) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.find(id)
	if err != nil {
		return Draft{}, err
	}
	if d.Submitted {
		return Draft{}, errors.InvalidInput("draft already submitted", nil)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&d.Form.Title, u.Title)
	apply(&d.Form.Location, u.Location)
	apply(&d.Form.JobType, u.JobType)
	apply(&d.Form.Department, u.Department)
	apply(&d.Form.ExperienceLevel, u.ExperienceLevel)
	apply(&d.Form.Description, u.Description)
	apply(&d.Form.Requirements, u.Requirements)
	apply(&d.Form.Benefits, u.Benefits)
	return *d, nil
}

// Next advances one step. Leaving the details step requires both title
// and location; the description step has no gate. Steps are never
// skipped.
func (s *Service) Next(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.find(id)
	if err != nil {
		return Draft{}, err
	}
	if d.Submitted {
		return Draft{}, errors.InvalidInput("draft already submitted", nil)
	}
	if d.Step >= lastStep {
		return Draft{}, errors.InvalidInput("already on the last step", nil)
	}
	if d.Step == StepDetails && (d.Form.Title == "" || d.Form.Location == "") {
		return Draft{}, errors.InvalidInput("title and location are required", nil)
	}
	d.Step++
	return *d, nil
}

// Back moves one step earlier and is never available on the first.
func (s *Service) Back(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.find(id)
	if err != nil {
		return Draft{}, err
	}
	if d.Submitted {
		return Draft{}, errors.InvalidInput("draft already submitted", nil)
	}
	if d.Step <= StepDetails {
		return Draft{}, errors.InvalidInput("already on the first step", nil)
	}
	d.Step--
	return *d, nil
}

func (s *Service) SetChannel(id, name string, enabled bool) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.find(id)
	if err != nil {
		return Draft{}, err
	}
	if d.Submitted {
		return Draft{}, errors.InvalidInput("draft already submitted", nil)
	}
	for i := range d.Channels {
		if d.Channels[i].Name == name {
			d.Channels[i].Enabled = enabled
			return *d, nil
		}
	}
	return Draft{}, errors.InvalidInput("unknown distribution channel", nil)
}

// Publish turns a completed draft into an active job posting. The
// enabled channel toggles are merged into the posting and a
// publication event is emitted for the distribution service.
func (s *Service) Publish(ctx context.Context, id string) (models.Job, error) {
	ctx, span := tracer.Start(ctx, "wizard.Publish")
	defer span.End()

	s.mu.Lock()
	d, err := s.find(id)
	if err != nil {
		s.mu.Unlock()
		return models.Job{}, err
	}
	if d.Submitted {
		s.mu.Unlock()
		return models.Job{}, errors.InvalidInput("draft already submitted", nil)
	}
	if d.Step != lastStep {
		s.mu.Unlock()
		return models.Job{}, errors.InvalidInput("draft is not on the distribution step", nil)
	}
	if d.Form.Title == "" || d.Form.Location == "" {
		s.mu.Unlock()
		return models.Job{}, errors.InvalidInput("title and location are required", nil)
	}

	var channels []string
	for _, c := range d.Channels {
		if c.Enabled {
			channels = append(channels, c.Name)
		}
	}

	job := models.Job{
		ID:              uuid.NewString(),
		Title:           d.Form.Title,
		Location:        d.Form.Location,
		Type:            d.Form.JobType,
		Department:      d.Form.Department,
		ExperienceLevel: d.Form.ExperienceLevel,
		Status:          models.JobActive,
		CreatedAt:       time.Now().UTC(),
		Channels:        channels,
		Description:     d.Form.Description,
		Requirements:    d.Form.Requirements,
		Benefits:        d.Form.Benefits,
	}
	d.Submitted = true
	d.JobID = job.ID
	s.mu.Unlock()

	s.store.CreateJob(job)

	if err := s.publisher.JobPublished(ctx, job); err != nil {
		span.RecordError(err)
		s.logger.Error("failed to publish job posting event",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}

	span.SetAttributes(
		telemetry.String("job.id", job.ID),
		telemetry.Int("job.channels", len(channels)),
	)
	s.logger.Info("job posting published",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
		zap.Strings("channels", channels))

	return job, nil
}
