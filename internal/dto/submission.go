package dto

import "github.com/acehive/acehive-admin-api/internal/models"

// SubmitResourceRequest mirrors the submission form fields. FileURLs is the
// raw comma-delimited string the console collects.
type SubmitResourceRequest struct {
	Year           string `json:"year"`
	Degree         string `json:"degree"`
	Specialisation string `json:"specialisation"`
	Subject        string `json:"subject"`
	SubjectType    string `json:"subject_type"`
	ResourceType   string `json:"resource_type"`
	FileURLs       string `json:"file_urls"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

// Draft converts the request into the controller's working draft.
func (r SubmitResourceRequest) Draft() models.ResourceDraft {
	return models.ResourceDraft{
		Year:           r.Year,
		Degree:         r.Degree,
		Specialisation: r.Specialisation,
		Subject:        r.Subject,
		SubjectType:    r.SubjectType,
		ResourceType:   r.ResourceType,
		FileURLs:       r.FileURLs,
		Title:          r.Title,
		Description:    r.Description,
	}
}
