package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehive/acehive-admin-api/internal/models"
)

func sampleRecord() *models.ResourceRecord {
	subject := "Thermo"
	return &models.ResourceRecord{
		Title:          "Thermodynamics CT",
		Description:    "Class test paper",
		Year:           "2nd Year",
		Degree:         "Mechanical",
		Specialisation: "Core",
		Subject:        &subject,
		Tags:           []string{"2nd Year", "Mechanical", "Thermo", "CT Paper"},
		ResourceType:   "CT Paper",
		FileURLs:       []string{"a.pdf"},
	}
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	mock.ExpectExec("INSERT INTO resources").WillReturnResult(sqlmock.NewResult(0, 1))

	record := sampleRecord()
	err := repo.Insert(context.Background(), record)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertKeepsProvidedID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	mock.ExpectExec("INSERT INTO resources").WillReturnResult(sqlmock.NewResult(0, 1))

	record := sampleRecord()
	record.ID = "fixed-id"
	err := repo.Insert(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", record.ID)
}

func TestInsertPropagatesDriverError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResourceRepository(db)

	mock.ExpectExec("INSERT INTO resources").WillReturnError(errors.New("pq: relation vanished"))

	err := repo.Insert(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pq: relation vanished")
}
