package service

import (
	"strings"

	"github.com/acehive/acehive-admin-api/internal/models"
)

// ApplyBrowseQuery filters a row set by the AND of the query's active
// predicates: year equality, resource type equality and a case-insensitive
// substring match on title. The input is never mutated; every call derives a
// fresh slice from the rows it is given.
func ApplyBrowseQuery(rows []models.TableRow, query models.BrowseQuery) []models.TableRow {
	if query.IsZero() {
		out := make([]models.TableRow, len(rows))
		copy(out, rows)
		return out
	}

	needle := strings.ToLower(query.SearchText)
	out := make([]models.TableRow, 0, len(rows))
	for _, row := range rows {
		if query.YearFilter != "" && !fieldEquals(row, "year", query.YearFilter) {
			continue
		}
		if query.ResourceTypeFilter != "" && !fieldEquals(row, "resource_type", query.ResourceTypeFilter) {
			continue
		}
		if query.SearchText != "" && !titleContains(row, needle) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// fieldEquals matches on string equality; rows missing the field never match.
func fieldEquals(row models.TableRow, field, want string) bool {
	value, ok := row[field]
	if !ok {
		return false
	}
	str, ok := value.(string)
	return ok && str == want
}

// titleContains reports a case-insensitive substring match on the title
// field; rows lacking a title never match.
func titleContains(row models.TableRow, needle string) bool {
	value, ok := row["title"]
	if !ok || value == nil {
		return false
	}
	title, ok := value.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(title), needle)
}
