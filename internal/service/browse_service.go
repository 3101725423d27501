package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/acehive/acehive-admin-api/internal/dto"
	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type tableReader interface {
	SelectAll(ctx context.Context, table string) ([]models.TableRow, error)
}

// BrowseServiceConfig tunes table fetching behaviour.
type BrowseServiceConfig struct {
	AllowedTables []string
	FetchTimeout  time.Duration
	// CacheEnabled gates snapshot caching separately from the shared cache
	// client: a fresh submit must be visible on the next select unless the
	// operator opted into the staleness window.
	CacheEnabled bool
	CacheTTL     time.Duration
}

type browseSession struct {
	table          string
	generation     uint64
	fetching       bool
	snapshot       *models.TableSnapshot
	query          models.BrowseQuery
	filtered       []models.TableRow
	filtersApplied bool
}

// BrowseService serves the generic table viewer. It fetches whole tables
// through the reader, infers the column set from the first returned row,
// keeps one immutable snapshot per user session and recomputes the filtered
// view from that snapshot on every filter or search action.
type BrowseService struct {
	repo    tableReader
	policy  *ColumnPolicy
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	allowed map[string]struct{}
	cfg     BrowseServiceConfig

	mu       sync.Mutex
	sessions map[string]*browseSession
}

// NewBrowseService constructs a BrowseService.
func NewBrowseService(repo tableReader, policy *ColumnPolicy, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg BrowseServiceConfig) *BrowseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == nil {
		policy = NewColumnPolicy(nil)
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if len(cfg.AllowedTables) == 0 {
		cfg.AllowedTables = []string{"resources", "feedback", "collaborations", "auth"}
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedTables))
	for _, t := range cfg.AllowedTables {
		allowed[t] = struct{}{}
	}
	return &BrowseService{
		repo:     repo,
		policy:   policy,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		allowed:  allowed,
		cfg:      cfg,
		sessions: make(map[string]*browseSession),
	}
}

// SelectTable fetches the named table and replaces the user's snapshot
// wholesale. Selecting a different table while a fetch is in flight
// supersedes it: the slow response is discarded when it finally lands.
func (s *BrowseService) SelectTable(ctx context.Context, userID, table string) (*dto.BrowseView, error) {
	if _, ok := s.allowed[table]; !ok {
		return nil, appErrors.Clone(appErrors.ErrTableNotAllowed, fmt.Sprintf("table %q is not browsable", table))
	}

	s.mu.Lock()
	sess := s.ensureSession(userID)
	if sess.fetching && sess.table == table {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("a fetch for table %q is already in progress", table))
	}
	sess.generation++
	gen := sess.generation
	sess.table = table
	sess.fetching = true
	s.mu.Unlock()

	rows, err := s.fetchRows(ctx, table)
	if s.metrics != nil {
		s.metrics.RecordTableFetch(table, err == nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess = s.ensureSession(userID)
	if sess.generation != gen {
		// A newer table selection superseded this fetch; drop the result.
		s.logger.Debug("discarding stale table fetch", zap.String("table", table), zap.String("user_id", userID))
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("selection of table %q was superseded", table))
	}
	sess.fetching = false

	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, fmt.Sprintf("failed to fetch table %q: %v", table, err))
	}

	sess.snapshot = &models.TableSnapshot{
		Table:     table,
		Columns:   inferColumns(rows),
		Rows:      rows,
		FetchedAt: time.Now().UTC(),
	}
	sess.query = models.BrowseQuery{}
	sess.filtered = rows
	sess.filtersApplied = false

	return s.viewLocked(sess), nil
}

// ApplyFilters recomputes the filtered set from the full snapshot and raises
// the filters-applied indicator. The table must match the current selection.
func (s *BrowseService) ApplyFilters(userID, table string, query models.BrowseQuery) (*dto.BrowseView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureSession(userID)
	if err := s.checkSelectionLocked(sess, table); err != nil {
		return nil, err
	}
	sess.query = query
	sess.filtered = ApplyBrowseQuery(sess.snapshot.Rows, query)
	sess.filtersApplied = true
	return s.viewLocked(sess), nil
}

// Search is the live search mode: it always recomputes from the full
// snapshot using only the search text, so clearing the box restores all rows
// regardless of what the other filter fields show.
func (s *BrowseService) Search(userID, table, text string) (*dto.BrowseView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureSession(userID)
	if err := s.checkSelectionLocked(sess, table); err != nil {
		return nil, err
	}
	sess.query.SearchText = text
	sess.filtered = ApplyBrowseQuery(sess.snapshot.Rows, models.BrowseQuery{SearchText: text})
	return s.viewLocked(sess), nil
}

// ResetFilters clears every filter field and restores the full row set.
func (s *BrowseService) ResetFilters(userID, table string) (*dto.BrowseView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureSession(userID)
	if err := s.checkSelectionLocked(sess, table); err != nil {
		return nil, err
	}
	sess.query = models.BrowseQuery{}
	sess.filtered = sess.snapshot.Rows
	sess.filtersApplied = false
	return s.viewLocked(sess), nil
}

// View returns the current state of the user's browsing session.
func (s *BrowseService) View(userID string) (*dto.BrowseView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureSession(userID)
	if sess.snapshot == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "no table selected")
	}
	return s.viewLocked(sess), nil
}

func (s *BrowseService) fetchRows(ctx context.Context, table string) ([]models.TableRow, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	cacheKey := "browse:" + table
	if s.cfg.CacheEnabled && s.cache.Enabled() {
		var cached []models.TableRow
		if hit, err := s.cache.Get(fetchCtx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.repo.SelectAll(fetchCtx, table)
	if err != nil {
		return nil, err
	}

	if s.cfg.CacheEnabled && s.cache.Enabled() {
		_ = s.cache.Set(fetchCtx, cacheKey, rows, s.cfg.CacheTTL)
	}

	return rows, nil
}

// viewLocked renders the session through the column policy. Headers and row
// values are projected with the same visible column list so they can never
// diverge. Caller must hold s.mu.
func (s *BrowseService) viewLocked(sess *browseSession) *dto.BrowseView {
	visible := s.policy.VisibleColumns(sess.snapshot.Table, sess.snapshot.Columns)
	return &dto.BrowseView{
		Table:          sess.snapshot.Table,
		Columns:        visible,
		Rows:           projectRows(sess.filtered, visible),
		TotalRows:      len(sess.snapshot.Rows),
		FilteredRows:   len(sess.filtered),
		FiltersApplied: sess.filtersApplied,
		Empty:          len(sess.filtered) == 0,
		FetchedAt:      sess.snapshot.FetchedAt,
	}
}

// checkSelectionLocked verifies a snapshot exists and that the caller is
// acting on the table it actually selected. Caller must hold s.mu.
func (s *BrowseService) checkSelectionLocked(sess *browseSession, table string) error {
	if sess.snapshot == nil {
		return appErrors.Clone(appErrors.ErrConflict, "no table selected")
	}
	if sess.snapshot.Table != table {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("current selection is table %q, not %q", sess.snapshot.Table, table))
	}
	return nil
}

func (s *BrowseService) ensureSession(userID string) *browseSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &browseSession{}
		s.sessions[userID] = sess
	}
	return sess
}

// inferColumns derives the column set from the first returned row. An empty
// result set yields an empty column set; no schema is assumed up front. Keys
// are sorted for a deterministic header order.
func inferColumns(rows []models.TableRow) []string {
	if len(rows) == 0 {
		return []string{}
	}
	columns := make([]string, 0, len(rows[0]))
	for column := range rows[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// projectRows restricts each row to the visible columns.
func projectRows(rows []models.TableRow, visible []string) []models.TableRow {
	out := make([]models.TableRow, len(rows))
	for i, row := range rows {
		projected := make(models.TableRow, len(visible))
		for _, column := range visible {
			if value, ok := row[column]; ok {
				projected[column] = value
			}
		}
		out[i] = projected
	}
	return out
}
