package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/acehive/acehive-admin-api/internal/dto"
	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type tableCounter interface {
	Count(ctx context.Context, table string) (int, error)
	CountBy(ctx context.Context, table, column string, value interface{}) (int, error)
}

const dashboardCacheKey = "dash:summary"

// DashboardService composes the aggregate count widgets: one total per
// browsable table plus the resources table broken down by year and resource
// type. Results are cached with a short TTL.
type DashboardService struct {
	repo   tableCounter
	cache  *CacheService
	logger *zap.Logger
	tables []string
	ttl    time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo tableCounter, cache *CacheService, logger *zap.Logger, tables []string, ttl time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(tables) == 0 {
		tables = []string{"resources", "feedback", "collaborations", "auth"}
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DashboardService{repo: repo, cache: cache, logger: logger, tables: tables, ttl: ttl}
}

// Summary returns the dashboard counts and whether the cache served them.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	if s.cache.Enabled() {
		var cached dto.DashboardResponse
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	summary := &dto.DashboardResponse{
		TableCounts:     make(map[string]int, len(s.tables)),
		ResourcesByYear: make(map[string]int, len(models.Years)),
		ResourcesByType: make(map[string]int, len(models.ResourceTypes)),
	}

	for _, table := range s.tables {
		count, err := s.repo.Count(ctx, table)
		if err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to count table "+table)
		}
		summary.TableCounts[table] = count
	}

	for _, year := range models.Years {
		count, err := s.repo.CountBy(ctx, "resources", "year", year)
		if err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to count resources by year")
		}
		summary.ResourcesByYear[year] = count
	}

	for _, resourceType := range models.ResourceTypes {
		count, err := s.repo.CountBy(ctx, "resources", "resource_type", resourceType)
		if err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "failed to count resources by type")
		}
		summary.ResourcesByType[resourceType] = count
	}

	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, dashboardCacheKey, summary, s.ttl)
	}

	return summary, false, nil
}

// Taxonomy exposes the static classification options the submission form
// cascades over.
func (s *DashboardService) Taxonomy() *dto.TaxonomyResponse {
	return &dto.TaxonomyResponse{
		Years:           models.Years,
		Degrees:         models.Degrees,
		Specialisations: models.Taxonomy,
		ResourceTypes:   models.ResourceTypes,
	}
}
