package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/acehive/acehive-admin-api/internal/dto"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
	"github.com/acehive/acehive-admin-api/pkg/export"
)

type browseViewer interface {
	View(userID string) (*dto.BrowseView, error)
}

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult carries the rendered bytes plus transport metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the user's current browse view (sanitized columns,
// filtered rows) as CSV or PDF.
type ExportService struct {
	browse  browseViewer
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	maxRows int
}

// NewExportService constructs an ExportService.
func NewExportService(browse browseViewer, logger *zap.Logger, maxRows int) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRows <= 0 {
		maxRows = 5000
	}
	return &ExportService{
		browse:  browse,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		maxRows: maxRows,
	}
}

// Export renders the current view in the requested format. The table must
// match the session's current selection.
func (s *ExportService) Export(userID, table string, format ExportFormat) (*ExportResult, error) {
	view, err := s.browse.View(userID)
	if err != nil {
		return nil, err
	}
	if view.Table != table {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("current selection is table %q, not %q", view.Table, table))
	}
	if len(view.Columns) == 0 {
		return nil, appErrors.Clone(appErrors.ErrConflict, "nothing to export: the selected table has no rows")
	}
	if len(view.Rows) > s.maxRows {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("export limited to %d rows, current view has %d", s.maxRows, len(view.Rows)))
	}

	dataset := export.Dataset{
		Headers: view.Columns,
		Rows:    make([]map[string]string, len(view.Rows)),
	}
	for i, row := range view.Rows {
		rendered := make(map[string]string, len(view.Columns))
		for _, column := range view.Columns {
			rendered[column] = renderCell(row[column])
		}
		dataset.Rows[i] = rendered
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	switch format {
	case ExportCSV:
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.csv", view.Table, stamp),
			ContentType: "text/csv",
			Body:        body,
		}, nil
	case ExportPDF:
		body, err := s.pdf.Render(dataset, view.Table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.pdf", view.Table, stamp),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+string(format))
	}
}

func renderCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
