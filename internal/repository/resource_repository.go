package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/acehive/acehive-admin-api/internal/models"
)

// ResourceRepository writes derived resource records to the resources table.
type ResourceRepository struct {
	db *sqlx.DB
}

// NewResourceRepository creates a new instance of ResourceRepository.
func NewResourceRepository(db *sqlx.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Insert stores a single derived record. Records are append-only: the console
// never updates or deletes them.
func (r *ResourceRepository) Insert(ctx context.Context, record *models.ResourceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO resources (id, title, description, year, degree, specialisation, subject, elective, tags, resource_type, file_urls, created_at)
		VALUES (:id, :title, :description, :year, :degree, :specialisation, :subject, :elective, :tags, :resource_type, :file_urls, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}
