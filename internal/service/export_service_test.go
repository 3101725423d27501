package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehive/acehive-admin-api/internal/dto"
	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type stubBrowseViewer struct {
	view *dto.BrowseView
	err  error
}

func (v *stubBrowseViewer) View(userID string) (*dto.BrowseView, error) {
	return v.view, v.err
}

func exportView() *dto.BrowseView {
	return &dto.BrowseView{
		Table:   "resources",
		Columns: []string{"title", "year"},
		Rows: []models.TableRow{
			{"title": "Thermodynamics CT", "year": "2nd Year"},
			{"title": "Physics, Notes", "year": "1st Year"},
		},
		TotalRows:    2,
		FilteredRows: 2,
	}
}

func TestExportCSVRendersCurrentView(t *testing.T) {
	svc := NewExportService(&stubBrowseViewer{view: exportView()}, nil, 0)

	result, err := svc.Export("u1", "resources", ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.Filename, "resources-")

	csv := string(result.Body)
	assert.Contains(t, csv, "title,year")
	assert.Contains(t, csv, "Thermodynamics CT,2nd Year")
	// Values containing the delimiter come back quoted.
	assert.Contains(t, csv, `"Physics, Notes",1st Year`)
}

func TestExportPDFRendersCurrentView(t *testing.T) {
	svc := NewExportService(&stubBrowseViewer{view: exportView()}, nil, 0)

	result, err := svc.Export("u1", "resources", ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, len(result.Body) > 0)
	assert.Equal(t, "%PDF", string(result.Body[:4]))
}

func TestExportRejectsEmptyView(t *testing.T) {
	view := &dto.BrowseView{Table: "feedback", Columns: []string{}}
	svc := NewExportService(&stubBrowseViewer{view: view}, nil, 0)

	_, err := svc.Export("u1", "feedback", ExportCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestExportEnforcesRowLimit(t *testing.T) {
	view := exportView()
	svc := NewExportService(&stubBrowseViewer{view: view}, nil, 1)

	_, err := svc.Export("u1", "resources", ExportCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&stubBrowseViewer{view: exportView()}, nil, 0)

	_, err := svc.Export("u1", "resources", ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportRejectsMismatchedTable(t *testing.T) {
	svc := NewExportService(&stubBrowseViewer{view: exportView()}, nil, 0)

	_, err := svc.Export("u1", "feedback", ExportCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestExportPropagatesViewError(t *testing.T) {
	svc := NewExportService(&stubBrowseViewer{err: appErrors.Clone(appErrors.ErrConflict, "no table selected")}, nil, 0)

	_, err := svc.Export("u1", "resources", ExportCSV)
	require.Error(t, err)
}

func TestRenderCell(t *testing.T) {
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "", renderCell(nil))
	assert.Equal(t, "plain", renderCell("plain"))
	assert.Equal(t, "2026-01-02T03:04:05Z", renderCell(when))
	assert.Equal(t, "a, b", renderCell([]string{"a", "b"}))
	assert.Equal(t, "42", renderCell(42))
}
