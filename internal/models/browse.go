package models

import "time"

// TableRow is a dynamically shaped row: column name to variant value. The
// storage collaborator owns the schema, so no fixed struct exists per table.
type TableRow map[string]interface{}

// TableSnapshot is the immutable result of one table fetch. Columns are
// inferred once from the first row and treated as metadata alongside the rows.
type TableSnapshot struct {
	Table     string     `json:"table"`
	Columns   []string   `json:"columns"`
	Rows      []TableRow `json:"rows"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// Empty reports whether the fetch returned no rows.
func (s *TableSnapshot) Empty() bool {
	return s == nil || len(s.Rows) == 0
}

// BrowseQuery drives a pure filter pass over a fetched snapshot. Empty
// fields are inactive predicates.
type BrowseQuery struct {
	YearFilter         string `json:"year" form:"year"`
	ResourceTypeFilter string `json:"resource_type" form:"resource_type"`
	SearchText         string `json:"search" form:"search"`
}

// IsZero reports whether no predicate is set.
func (q BrowseQuery) IsZero() bool {
	return q.YearFilter == "" && q.ResourceTypeFilter == "" && q.SearchText == ""
}
