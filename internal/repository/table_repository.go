package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/acehive/acehive-admin-api/internal/models"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// TableRepository reads whole tables without a fixed schema registry. Table
// names are interpolated, so every caller must pass a vetted identifier; the
// browse service enforces its allow-list before reaching this layer.
type TableRepository struct {
	db *sqlx.DB
}

// NewTableRepository creates a new instance of TableRepository.
func NewTableRepository(db *sqlx.DB) *TableRepository {
	return &TableRepository{db: db}
}

// SelectAll fetches every row of the named table as dynamically shaped rows.
func (r *TableRepository) SelectAll(ctx context.Context, table string) ([]models.TableRow, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table identifier %q", table)
	}

	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(table))
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select all from %s: %w", table, err)
	}
	defer rows.Close()

	var result []models.TableRow
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", table, err)
		}
		result = append(result, normalizeRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows from %s: %w", table, err)
	}

	return result, nil
}

// CountBy returns the number of rows whose column equals the given value.
func (r *TableRepository) CountBy(ctx context.Context, table, column string, value interface{}) (int, error) {
	if !identifierPattern.MatchString(table) {
		return 0, fmt.Errorf("invalid table identifier %q", table)
	}
	if !identifierPattern.MatchString(column) {
		return 0, fmt.Errorf("invalid column identifier %q", column)
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", pq.QuoteIdentifier(table), pq.QuoteIdentifier(column))
	var count int
	if err := r.db.GetContext(ctx, &count, query, value); err != nil {
		return 0, fmt.Errorf("count %s by %s: %w", table, column, err)
	}
	return count, nil
}

// Count returns the total number of rows in the named table.
func (r *TableRepository) Count(ctx context.Context, table string) (int, error) {
	if !identifierPattern.MatchString(table) {
		return 0, fmt.Errorf("invalid table identifier %q", table)
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(table))
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// normalizeRow converts driver-specific scan values into the variant types
// the viewer works with: string, number, bool, nil or time.
func normalizeRow(raw map[string]interface{}) models.TableRow {
	row := make(models.TableRow, len(raw))
	for column, value := range raw {
		row[column] = normalizeValue(value)
	}
	return row
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC()
	default:
		return v
	}
}
