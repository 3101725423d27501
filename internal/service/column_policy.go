package service

// Per-table column hiding. The resources table hides internal identifiers and
// long-text fields before display; every other table hides the id column,
// except auth which is shown as-is so operators can audit credential rows.

const (
	tableResources = "resources"
	tableAuth      = "auth"
)

var defaultResourcesHidden = []string{"id", "description", "file_urls", "tags", "created_at"}

// ColumnPolicy decides which inferred columns are visible per table. It is a
// pure lookup: the same policy must drive both header generation and row
// value extraction so the two never diverge.
type ColumnPolicy struct {
	hidden map[string]map[string]struct{}
}

// NewColumnPolicy builds the policy. resourcesOverride, when non-empty,
// replaces the default drop-set for the resources table.
func NewColumnPolicy(resourcesOverride []string) *ColumnPolicy {
	resourcesHidden := defaultResourcesHidden
	if len(resourcesOverride) > 0 {
		resourcesHidden = resourcesOverride
	}

	hidden := map[string]map[string]struct{}{
		tableResources: toSet(resourcesHidden),
		tableAuth:      {},
	}
	return &ColumnPolicy{hidden: hidden}
}

// VisibleColumns filters the inferred column list for a table, preserving
// the inferred order.
func (p *ColumnPolicy) VisibleColumns(table string, columns []string) []string {
	dropped := p.droppedFor(table)
	visible := make([]string, 0, len(columns))
	for _, column := range columns {
		if _, hide := dropped[column]; hide {
			continue
		}
		visible = append(visible, column)
	}
	return visible
}

func (p *ColumnPolicy) droppedFor(table string) map[string]struct{} {
	if set, ok := p.hidden[table]; ok {
		return set
	}
	// Every table without an explicit policy hides its id column.
	return map[string]struct{}{"id": {}}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
