package dto

// DashboardResponse aggregates the count widgets shown on the console's
// landing page.
type DashboardResponse struct {
	TableCounts     map[string]int `json:"table_counts"`
	ResourcesByYear map[string]int `json:"resources_by_year"`
	ResourcesByType map[string]int `json:"resources_by_type"`
}

// TaxonomyResponse exposes the static degree taxonomy so the form can build
// its cascading selects.
type TaxonomyResponse struct {
	Years           []string            `json:"years"`
	Degrees         []string            `json:"degrees"`
	Specialisations map[string][]string `json:"specialisations"`
	ResourceTypes   []string            `json:"resource_types"`
}
