package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type stubDeriver struct {
	record *models.ResourceRecord
	err    error
	calls  int
}

func (d *stubDeriver) DeriveRecord(models.ResourceDraft) (*models.ResourceRecord, error) {
	d.calls++
	return d.record, d.err
}

type stubInserter struct {
	err     error
	calls   int
	release chan struct{}
	entered chan struct{}
}

func (i *stubInserter) Insert(ctx context.Context, record *models.ResourceRecord) error {
	i.calls++
	if i.entered != nil {
		close(i.entered)
	}
	if i.release != nil {
		<-i.release
	}
	return i.err
}

func TestSubmitSuccessHoldsRecordUntilAcknowledged(t *testing.T) {
	record := &models.ResourceRecord{ID: "r1", Title: "T", Year: "2nd Year"}
	deriver := &stubDeriver{record: record}
	inserter := &stubInserter{}
	svc := NewSubmissionService(deriver, inserter, nil, nil, time.Second)

	status, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSucceeded, status.State)
	assert.Equal(t, record, status.Record)
	assert.Equal(t, 1, inserter.calls)

	// The outcome stays visible until explicitly acknowledged.
	again := svc.Status("u1")
	assert.Equal(t, models.SubmissionSucceeded, again.State)
	assert.Equal(t, record, again.Record)

	acked, err := svc.Acknowledge("u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, acked.State)
	assert.Nil(t, svc.Status("u1").Record)
}

func TestSubmitValidationFailureNeverReachesStorage(t *testing.T) {
	deriver := &stubDeriver{err: appErrors.Clone(appErrors.ErrValidation, "bad draft")}
	inserter := &stubInserter{}
	svc := NewSubmissionService(deriver, inserter, nil, nil, time.Second)

	_, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.Error(t, err)
	assert.Equal(t, 0, inserter.calls)
	assert.Equal(t, models.SubmissionFailed, svc.Status("u1").State)
}

func TestSubmitSurfacesCollaboratorMessageVerbatim(t *testing.T) {
	deriver := &stubDeriver{record: &models.ResourceRecord{ID: "r1"}}
	inserter := &stubInserter{err: errors.New("pq: relation vanished")}
	svc := NewSubmissionService(deriver, inserter, nil, nil, time.Second)

	_, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrSubmitFailed.Code, appErr.Code)
	assert.Equal(t, "pq: relation vanished", appErr.Message)

	status := svc.Status("u1")
	assert.Equal(t, models.SubmissionFailed, status.State)
	assert.Equal(t, "pq: relation vanished", status.Error)
	assert.Nil(t, status.Record)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	deriver := &stubDeriver{record: &models.ResourceRecord{ID: "r1"}}
	inserter := &stubInserter{
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	svc := NewSubmissionService(deriver, inserter, nil, nil, time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
		assert.NoError(t, err)
	}()

	<-inserter.entered
	_, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.ErrorIs(t, err, appErrors.ErrSubmissionInFlight)

	close(inserter.release)
	wg.Wait()
	assert.Equal(t, 1, inserter.calls)
}

func TestSubmitStatesAreIsolatedPerUser(t *testing.T) {
	deriver := &stubDeriver{record: &models.ResourceRecord{ID: "r1"}}
	svc := NewSubmissionService(deriver, &stubInserter{}, nil, nil, time.Second)

	_, err := svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionSucceeded, svc.Status("u1").State)
	assert.Equal(t, models.SubmissionIdle, svc.Status("u2").State)
}

func TestAcknowledgeRequiresSettledState(t *testing.T) {
	svc := NewSubmissionService(&stubDeriver{}, &stubInserter{}, nil, nil, time.Second)

	_, err := svc.Acknowledge("u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAcknowledgeResetsFailedState(t *testing.T) {
	deriver := &stubDeriver{err: appErrors.Clone(appErrors.ErrValidation, "bad draft")}
	svc := NewSubmissionService(deriver, &stubInserter{}, nil, nil, time.Second)

	_, _ = svc.Submit(context.Background(), "u1", models.ResourceDraft{})
	require.Equal(t, models.SubmissionFailed, svc.Status("u1").State)

	acked, err := svc.Acknowledge("u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, acked.State)
	assert.Empty(t, svc.Status("u1").Error)
}
