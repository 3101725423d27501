package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/acehive/acehive-admin-api/internal/models"
)

// AuthRepository checks credentials against the auth table.
type AuthRepository struct {
	db *sqlx.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sqlx.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindByUsername returns the credential row for a username. The column is
// literally named "user" in the legacy schema, hence the quoting.
func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*models.Credential, error) {
	const query = `SELECT id, "user", pwd, created_at FROM auth WHERE "user" = $1 LIMIT 1`
	var cred models.Credential
	if err := r.db.GetContext(ctx, &cred, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find credential by username: %w", err)
	}
	return &cred, nil
}
