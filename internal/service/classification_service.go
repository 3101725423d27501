package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acehive/acehive-admin-api/internal/models"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

// ClassificationService validates a draft against the degree taxonomy and
// derives the storage record: column routing, sentinel substitution, tag set
// and file URL parsing. It performs no I/O; every failure it returns is a
// validation error raised before any insert is attempted.
type ClassificationService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassificationService constructs a ClassificationService.
func NewClassificationService(validate *validator.Validate, logger *zap.Logger) *ClassificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassificationService{validator: validate, logger: logger}
}

// DeriveRecord turns a draft into a persistable record or a validation error.
func (s *ClassificationService) DeriveRecord(draft models.ResourceDraft) (*models.ResourceRecord, error) {
	if err := s.validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resource draft")
	}

	// First-year records carry no degree or specialisation. Clearing the
	// draft fields here, not just at column mapping, keeps stale taxonomy
	// selections out of the derived tags as well.
	if draft.Year == models.YearFirst {
		draft.Degree = ""
		draft.Specialisation = ""
	} else {
		if draft.Degree == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "degree is required for non first-year resources")
		}
		if _, ok := models.Taxonomy[draft.Degree]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown degree: "+draft.Degree)
		}
		if !models.IsAllowedSpecialisation(draft.Degree, draft.Specialisation) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "specialisation is not offered for degree "+draft.Degree)
		}
	}

	if draft.SubjectType == models.SubjectTypeElective && strings.TrimSpace(draft.Subject) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "subject text is required for electives")
	}

	record := &models.ResourceRecord{
		Title:          draft.Title,
		Description:    draft.Description,
		Year:           draft.Year,
		Degree:         orSentinel(draft.Degree),
		Specialisation: orSentinel(draft.Specialisation),
		Tags:           deriveTags(draft),
		ResourceType:   draft.ResourceType,
		FileURLs:       parseFileURLs(draft.FileURLs),
	}

	// Exactly one destination column receives the subject text.
	if draft.SubjectType == models.SubjectTypeElective {
		elective := draft.Subject
		record.Elective = &elective
	} else {
		subject := draft.Subject
		if subject == "" {
			subject = models.SentinelNone
		}
		record.Subject = &subject
	}

	return record, nil
}

// deriveTags builds the denormalized search-aid tag set: the non-empty
// members of [year, degree, subject, resourceType], order preserved.
func deriveTags(draft models.ResourceDraft) []string {
	candidates := []string{draft.Year, draft.Degree, draft.Subject, draft.ResourceType}
	tags := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			tags = append(tags, c)
		}
	}
	return tags
}

// parseFileURLs splits the raw comma-delimited input and trims each segment.
// Empty segments are kept: a trailing comma yields a trailing empty URL,
// matching the stored shape the legacy console produced.
func parseFileURLs(raw string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, len(parts))
	for i, p := range parts {
		urls[i] = strings.TrimSpace(p)
	}
	return urls
}

func orSentinel(value string) string {
	if value == "" {
		return models.SentinelNone
	}
	return value
}
