package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type stubTableCounter struct {
	counts   map[string]int
	byColumn map[string]int
	err      error
}

func (c *stubTableCounter) Count(ctx context.Context, table string) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.counts[table], nil
}

func (c *stubTableCounter) CountBy(ctx context.Context, table, column string, value interface{}) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.byColumn[column+":"+value.(string)], nil
}

func TestDashboardSummaryComposesCounts(t *testing.T) {
	counter := &stubTableCounter{
		counts: map[string]int{"resources": 42, "feedback": 7, "collaborations": 3, "auth": 2},
		byColumn: map[string]int{
			"year:1st Year":                10,
			"year:2nd Year":                20,
			"year:3rd Year":                12,
			"resource_type:CT Paper":       15,
			"resource_type:Sem Paper":      11,
			"resource_type:Study Material": 16,
		},
	}
	svc := NewDashboardService(counter, nil, nil, nil, time.Minute)

	summary, cacheHit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 42, summary.TableCounts["resources"])
	assert.Equal(t, 2, summary.TableCounts["auth"])
	assert.Equal(t, 20, summary.ResourcesByYear["2nd Year"])
	assert.Equal(t, 16, summary.ResourcesByType["Study Material"])
}

func TestDashboardSummaryWrapsCounterFailure(t *testing.T) {
	counter := &stubTableCounter{err: errors.New("timeout")}
	svc := NewDashboardService(counter, nil, nil, nil, time.Minute)

	_, _, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrFetchFailed.Code, appErrors.FromError(err).Code)
}

func TestDashboardTaxonomyMatchesCatalog(t *testing.T) {
	svc := NewDashboardService(&stubTableCounter{}, nil, nil, nil, time.Minute)

	taxonomy := svc.Taxonomy()
	assert.Equal(t, []string{"1st Year", "2nd Year", "3rd Year"}, taxonomy.Years)
	assert.Len(t, taxonomy.Degrees, 7)
	assert.Contains(t, taxonomy.Specialisations["Mechanical"], "Robotics")
	assert.Equal(t, []string{"CT Paper", "Sem Paper", "Study Material"}, taxonomy.ResourceTypes)
}
