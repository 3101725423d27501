package dto

import (
	"time"

	"github.com/acehive/acehive-admin-api/internal/models"
)

// BrowseView is the rendered state of one table browsing session: sanitized
// columns, the currently filtered rows and the indicator flags the console
// shows alongside them.
type BrowseView struct {
	Table          string            `json:"table"`
	Columns        []string          `json:"columns"`
	Rows           []models.TableRow `json:"rows"`
	TotalRows      int               `json:"total_rows"`
	FilteredRows   int               `json:"filtered_rows"`
	FiltersApplied bool              `json:"filters_applied"`
	Empty          bool              `json:"empty"`
	FetchedAt      time.Time         `json:"fetched_at"`
}
