// Package scheduling books candidate interviews: it validates the
// composite scheduling form, rejects double-booked interviewers, and
// emits the invitation event for the calendar collaborator.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
	"github.com/Sortedsinghal/URE-HR/internal/telemetry"
)

var tracer = telemetry.GetTracer("urehr/scheduling")

// TimeSlots is the fixed half-hour grid offered by the scheduling
// form, skipping the lunch hour.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

var durations = map[int]bool{30: true, 45: true, 60: true, 90: true}

type Request struct {
	CandidateID     string               `json:"candidate_id"`
	Date            string               `json:"date"` // YYYY-MM-DD
	Time            string               `json:"time"` // HH:MM
	DurationMinutes int                  `json:"duration_minutes"`
	Type            models.InterviewType `json:"type"`
	InterviewerIDs  []string             `json:"interviewer_ids"`
	Notes           string               `json:"notes"`
}

// Summary mirrors the confirmation panel: it is derivable from the
// request alone and is only produced once every field validates.
type Summary struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	DurationMinutes int      `json:"duration_minutes"`
	Type            string   `json:"type"`
	Interviewers    []string `json:"interviewers"`
}

type Service struct {
	store     *store.Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(st *store.Store, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{
		store:     st,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// NewServiceAt pins the clock, for tests.
func NewServiceAt(st *store.Store, publisher events.Publisher, logger *zap.Logger, now func() time.Time) *Service {
	s := NewService(st, publisher, logger)
	s.now = now
	return s
}

func slotValid(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// validate checks the five mutually required fields and their value
// ranges, returning the interviewer names on success.
func (s *Service) validate(req Request) ([]string, error) {
	if req.CandidateID == "" {
		return nil, errors.InvalidInput("please select a candidate", nil)
	}
	if req.Date == "" {
		return nil, errors.InvalidInput("please select an interview date", nil)
	}
	if req.Time == "" {
		return nil, errors.InvalidInput("please select a time slot", nil)
	}
	if req.Type == "" {
		return nil, errors.InvalidInput("please select an interview type", nil)
	}
	if len(req.InterviewerIDs) == 0 {
		return nil, errors.InvalidInput("please select at least one interviewer", nil)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.InvalidInput("invalid interview date", err)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, errors.InvalidInput("interview date must be today or later", nil)
	}
	if !slotValid(req.Time) {
		return nil, errors.InvalidInput("time is not an offered slot", nil)
	}
	if !durations[req.DurationMinutes] {
		return nil, errors.InvalidInput("duration must be 30, 45, 60 or 90 minutes", nil)
	}
	if !req.Type.IsValid() {
		return nil, errors.InvalidInput("interview type must be video, phone or in-person", nil)
	}

	names := make([]string, 0, len(req.InterviewerIDs))
	for _, id := range req.InterviewerIDs {
		iv, ok := s.store.GetInterviewer(id)
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("unknown interviewer %q", id), nil)
		}
		names = append(names, iv.Name)
	}
	return names, nil
}

func slotMinutes(t string) int {
	var h, m int
	fmt.Sscanf(t, "%d:%d", &h, &m)
	return h*60 + m
}

func overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// findConflict reports the first already-scheduled interview on the
// requested date that shares an interviewer and an overlapping time
// range.
func (s *Service) findConflict(req Request, names []string) *models.Interview {
	start := slotMinutes(req.Time)
	for _, existing := range s.store.ScheduledOn(req.Date) {
		if !overlaps(start, req.DurationMinutes, slotMinutes(existing.Time), existing.DurationMinutes) {
			continue
		}
		for _, booked := range existing.Interviewers {
			for _, name := range names {
				if booked == name {
					e := existing
					return &e
				}
			}
		}
	}
	return nil
}

func (s *Service) Schedule(ctx context.Context, req Request) (models.Interview, Summary, error) {
	ctx, span := tracer.Start(ctx, "scheduling.Schedule")
	defer span.End()

	names, err := s.validate(req)
	if err != nil {
		span.RecordError(err)
		return models.Interview{}, Summary{}, err
	}

	candidate, err := s.store.GetCandidate(req.CandidateID)
	if err != nil {
		return models.Interview{}, Summary{}, err
	}

	if conflict := s.findConflict(req, names); conflict != nil {
		err := errors.Conflict(
			fmt.Sprintf("interviewer already booked at %s %s", conflict.Date, conflict.Time), nil)
		span.RecordError(err)
		return models.Interview{}, Summary{}, err
	}

	interview := models.Interview{
		ID:              uuid.NewString(),
		CandidateID:     candidate.ID,
		CandidateName:   candidate.Name,
		Position:        candidate.Position,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Status:          models.InterviewScheduled,
		Interviewers:    names,
		Notes:           req.Notes,
	}
	s.store.CreateInterview(interview)

	if err := s.publisher.InterviewScheduled(ctx, interview); err != nil {
		span.RecordError(err)
		s.logger.Error("failed to publish interview event",
			zap.String("interview_id", interview.ID),
			zap.Error(err))
	}

	span.SetAttributes(
		telemetry.String("interview.id", interview.ID),
		telemetry.Int("interview.interviewers", len(names)),
	)
	s.logger.Info("interview scheduled",
		zap.String("interview_id", interview.ID),
		zap.String("candidate", candidate.Name),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	summary := Summary{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Type:            string(req.Type),
		Interviewers:    names,
	}
	return interview, summary, nil
}
