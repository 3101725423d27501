package models

import (
	"time"

	"github.com/lib/pq"
)

// SentinelNone is stored when a taxonomy-dependent field has no applicable
// value, e.g. first-year resources carry no degree.
const SentinelNone = "None"

// Year values accepted by the classification pipeline.
const (
	YearFirst  = "1st Year"
	YearSecond = "2nd Year"
	YearThird  = "3rd Year"
)

// SubjectType selects which storage column the subject text lands in.
const (
	SubjectTypeSubject  = "Subject"
	SubjectTypeElective = "Elective/Language"
)

// Resource types recognised by the catalog.
const (
	ResourceTypeCTPaper       = "CT Paper"
	ResourceTypeSemPaper      = "Sem Paper"
	ResourceTypeStudyMaterial = "Study Material"
)

// Years lists the accepted year labels in presentation order.
var Years = []string{YearFirst, YearSecond, YearThird}

// ResourceTypes lists the accepted resource type labels.
var ResourceTypes = []string{ResourceTypeCTPaper, ResourceTypeSemPaper, ResourceTypeStudyMaterial}

// ResourceDraft is an in-progress, unvalidated submission. FileURLs is the
// raw comma-delimited input; it is parsed during derivation.
type ResourceDraft struct {
	Year           string `json:"year" validate:"required,oneof='1st Year' '2nd Year' '3rd Year'"`
	Degree         string `json:"degree"`
	Specialisation string `json:"specialisation"`
	Subject        string `json:"subject"`
	SubjectType    string `json:"subject_type" validate:"required,oneof=Subject Elective/Language"`
	ResourceType   string `json:"resource_type" validate:"required,oneof='CT Paper' 'Sem Paper' 'Study Material'"`
	FileURLs       string `json:"file_urls" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
}

// ResourceRecord is the validated, derived representation persisted to the
// resources table. Exactly one of Subject and Elective is non-nil.
type ResourceRecord struct {
	ID             string         `db:"id" json:"id,omitempty"`
	Title          string         `db:"title" json:"title"`
	Description    string         `db:"description" json:"description"`
	Year           string         `db:"year" json:"year"`
	Degree         string         `db:"degree" json:"degree"`
	Specialisation string         `db:"specialisation" json:"specialisation"`
	Subject        *string        `db:"subject" json:"subject"`
	Elective       *string        `db:"elective" json:"elective"`
	Tags           pq.StringArray `db:"tags" json:"tags"`
	ResourceType   string         `db:"resource_type" json:"resource_type"`
	FileURLs       pq.StringArray `db:"file_urls" json:"file_urls"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at,omitempty"`
}
