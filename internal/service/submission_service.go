package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type recordDeriver interface {
	DeriveRecord(draft models.ResourceDraft) (*models.ResourceRecord, error)
}

type resourceInserter interface {
	Insert(ctx context.Context, record *models.ResourceRecord) error
}

// SubmissionStatus is a point-in-time view of one submission controller.
type SubmissionStatus struct {
	State models.SubmissionState `json:"state"`
	// Record holds the last successfully submitted record until the caller
	// acknowledges, so the console can still show what was just stored.
	Record *models.ResourceRecord `json:"record,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type submissionState struct {
	state  models.SubmissionState
	busy   bool
	record *models.ResourceRecord
	errMsg string
}

// SubmissionService orchestrates the submit lifecycle: validate through the
// classification engine, issue exactly one insert, then hold the outcome
// until acknowledged. One controller state exists per authenticated user and
// at most one submission may be in flight per controller.
type SubmissionService struct {
	deriver       recordDeriver
	repo          resourceInserter
	metrics       *MetricsService
	logger        *zap.Logger
	insertTimeout time.Duration

	mu     sync.Mutex
	states map[string]*submissionState
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(deriver recordDeriver, repo resourceInserter, metrics *MetricsService, logger *zap.Logger, insertTimeout time.Duration) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if insertTimeout <= 0 {
		insertTimeout = 10 * time.Second
	}
	return &SubmissionService{
		deriver:       deriver,
		repo:          repo,
		metrics:       metrics,
		logger:        logger,
		insertTimeout: insertTimeout,
		states:        make(map[string]*submissionState),
	}
}

// Submit runs the pipeline for one draft. A validation failure never reaches
// the storage collaborator; a collaborator failure keeps the draft intact on
// the caller's side and surfaces the collaborator message verbatim.
func (s *SubmissionService) Submit(ctx context.Context, userID string, draft models.ResourceDraft) (*SubmissionStatus, error) {
	s.mu.Lock()
	st := s.ensureState(userID)
	if st.busy {
		s.mu.Unlock()
		return nil, appErrors.ErrSubmissionInFlight
	}
	st.busy = true
	st.state = models.SubmissionValidating
	st.record = nil
	st.errMsg = ""
	s.mu.Unlock()

	record, err := s.deriver.DeriveRecord(draft)
	if err != nil {
		s.fail(userID, err.Error())
		if s.metrics != nil {
			s.metrics.RecordSubmission("rejected")
		}
		return nil, err
	}

	s.setState(userID, models.SubmissionSubmitting)

	insertCtx, cancel := context.WithTimeout(ctx, s.insertTimeout)
	defer cancel()

	if err := s.repo.Insert(insertCtx, record); err != nil {
		s.logger.Warn("resource insert failed", zap.String("user_id", userID), zap.Error(err))
		s.fail(userID, err.Error())
		if s.metrics != nil {
			s.metrics.RecordSubmission("failed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSubmitFailed.Code, appErrors.ErrSubmitFailed.Status, err.Error())
	}

	s.mu.Lock()
	st = s.ensureState(userID)
	st.state = models.SubmissionSucceeded
	st.record = record
	st.busy = false
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordSubmission("succeeded")
	}

	s.logger.Info("resource submitted",
		zap.String("user_id", userID),
		zap.String("resource_id", record.ID),
		zap.String("year", record.Year),
		zap.String("resource_type", record.ResourceType),
	)

	return s.Status(userID), nil
}

// Status returns the controller state for a user.
func (s *SubmissionService) Status(userID string) *SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureState(userID)
	return &SubmissionStatus{State: st.state, Record: st.record, Error: st.errMsg}
}

// Acknowledge resets a settled controller back to idle. The held record is
// discarded here, not on success, so the confirmation stays visible until
// the caller closes it.
func (s *SubmissionService) Acknowledge(userID string) (*SubmissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureState(userID)
	if st.busy {
		return nil, appErrors.ErrSubmissionInFlight
	}
	if st.state != models.SubmissionSucceeded && st.state != models.SubmissionFailed {
		return nil, appErrors.Clone(appErrors.ErrConflict, "nothing to acknowledge")
	}
	st.state = models.SubmissionIdle
	st.record = nil
	st.errMsg = ""
	return &SubmissionStatus{State: st.state}, nil
}

func (s *SubmissionService) ensureState(userID string) *submissionState {
	st, ok := s.states[userID]
	if !ok {
		st = &submissionState{state: models.SubmissionIdle}
		s.states[userID] = st
	}
	return st
}

func (s *SubmissionService) setState(userID string, state models.SubmissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureState(userID).state = state
}

func (s *SubmissionService) fail(userID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.ensureState(userID)
	st.state = models.SubmissionFailed
	st.errMsg = message
	st.busy = false
}
