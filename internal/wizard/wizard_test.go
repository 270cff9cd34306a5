package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/events"
	"github.com/Sortedsinghal/URE-HR/internal/models"
	"github.com/Sortedsinghal/URE-HR/internal/store"
)

type recordingPublisher struct {
	events.NopPublisher
	published []models.Job
}

func (r *recordingPublisher) JobPublished(_ context.Context, job models.Job) error {
	r.published = append(r.published, job)
	return nil
}

func newTestService() (*Service, *store.Store, *recordingPublisher) {
	st := store.New()
	pub := &recordingPublisher{}
	return NewService(st, pub, zap.NewNop()), st, pub
}

func TestCreateDraftStartsAtDetails(t *testing.T) {
	svc, _, _ := newTestService()

	d := svc.CreateDraft()

	assert.Equal(t, StepDetails, d.Step)
	assert.False(t, d.Submitted)
	require.Len(t, d.Channels, 4)
	assert.True(t, d.Channels[0].Enabled, "LinkedIn is pre-checked")
	assert.True(t, d.Channels[1].Enabled, "Indeed is pre-checked")
	assert.False(t, d.Channels[2].Enabled)
	assert.False(t, d.Channels[3].Enabled)
}

func TestNextRequiresTitleAndLocation(t *testing.T) {
	title := "Backend Engineer"
	location := "Berlin"

	tests := []struct {
		name    string
		updates FieldUpdates
		wantErr bool
	}{
		{"both empty", FieldUpdates{}, true},
		{"title only", FieldUpdates{Title: &title}, true},
		{"location only", FieldUpdates{Location: &location}, true},
		{"both set", FieldUpdates{Title: &title, Location: &location}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			d := svc.CreateDraft()

			_, err := svc.UpdateFields(d.ID, tt.updates)
			require.NoError(t, err)

			got, err := svc.Next(d.ID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
				current, gerr := svc.GetDraft(d.ID)
				require.NoError(t, gerr)
				assert.Equal(t, StepDetails, current.Step, "rejected Next must not advance")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StepDescription, got.Step)
		})
	}
}

func TestBackNeverLeavesFirstStep(t *testing.T) {
	svc, _, _ := newTestService()
	d := svc.CreateDraft()

	_, err := svc.Back(d.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
}

func TestBackDecrements(t *testing.T) {
	svc, _, _ := newTestService()
	d := advanceToDistribution(t, svc)

	got, err := svc.Back(d.ID)
	require.NoError(t, err)
	assert.Equal(t, StepDescription, got.Step)
}

func TestUpdateFieldsPreservesOthers(t *testing.T) {
	svc, _, _ := newTestService()
	d := svc.CreateDraft()

	title := "Data Engineer"
	_, err := svc.UpdateFields(d.ID, FieldUpdates{Title: &title})
	require.NoError(t, err)

	dept := "Platform"
	got, err := svc.UpdateFields(d.ID, FieldUpdates{Department: &dept})
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", got.Form.Title)
	assert.Equal(t, "Platform", got.Form.Department)
}

func TestSetChannelUnknownName(t *testing.T) {
	svc, _, _ := newTestService()
	d := svc.CreateDraft()

	_, err := svc.SetChannel(d.ID, "Monster", true)
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
}

func advanceToDistribution(t *testing.T, svc *Service) Draft {
	t.Helper()

	d := svc.CreateDraft()
	title := "Senior Go Engineer"
	location := "Remote"
	_, err := svc.UpdateFields(d.ID, FieldUpdates{Title: &title, Location: &location})
	require.NoError(t, err)

	_, err = svc.Next(d.ID)
	require.NoError(t, err)
	got, err := svc.Next(d.ID)
	require.NoError(t, err)
	require.Equal(t, StepDistribution, got.Step)
	return got
}

func TestPublishMergesEnabledChannels(t *testing.T) {
	svc, st, pub := newTestService()
	d := advanceToDistribution(t, svc)

	_, err := svc.SetChannel(d.ID, "Indeed", false)
	require.NoError(t, err)
	_, err = svc.SetChannel(d.ID, "Stack Overflow", true)
	require.NoError(t, err)

	job, err := svc.Publish(context.Background(), d.ID)
	require.NoError(t, err)

	assert.Equal(t, models.JobActive, job.Status)
	assert.ElementsMatch(t, []string{"LinkedIn", "Stack Overflow"}, job.Channels)

	stored, err := st.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", stored.Title)

	require.Len(t, pub.published, 1)
	assert.Equal(t, job.ID, pub.published[0].ID)

	current, err := svc.GetDraft(d.ID)
	require.NoError(t, err)
	assert.True(t, current.Submitted)
	assert.Equal(t, job.ID, current.JobID)
}

func TestPublishOnlyFromDistributionStep(t *testing.T) {
	svc, _, pub := newTestService()
	d := svc.CreateDraft()

	_, err := svc.Publish(context.Background(), d.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
	assert.Empty(t, pub.published)
}

func TestPublishTwiceRejected(t *testing.T) {
	svc, _, _ := newTestService()
	d := advanceToDistribution(t, svc)

	_, err := svc.Publish(context.Background(), d.ID)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), d.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeInvalidInput, errors.TypeOf(err))
}

func TestGetDraftUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetDraft("nope")
	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeNotFound, errors.TypeOf(err))
}
