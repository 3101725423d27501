package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByUsername(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuthRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user", "pwd", "created_at"}).
		AddRow("u1", "admin", "$2a$10$hash", now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, "user", pwd, created_at FROM auth WHERE "user" = $1 LIMIT 1`)).
		WithArgs("admin").
		WillReturnRows(rows)

	cred, err := repo.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "u1", cred.ID)
	assert.Equal(t, "admin", cred.Username)
	assert.Equal(t, "$2a$10$hash", cred.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuthRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, "user", pwd, created_at FROM auth WHERE "user" = $1 LIMIT 1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, sql.ErrNoRows)
}
