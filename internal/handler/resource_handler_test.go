package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acehive/acehive-admin-api/internal/middleware"
	"github.com/acehive/acehive-admin-api/internal/models"
	"github.com/acehive/acehive-admin-api/internal/service"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
)

type fakeSubmissionSrv struct {
	status    *service.SubmissionStatus
	err       error
	lastUser  string
	lastDraft models.ResourceDraft
}

func (f *fakeSubmissionSrv) Submit(_ context.Context, userID string, draft models.ResourceDraft) (*service.SubmissionStatus, error) {
	f.lastUser = userID
	f.lastDraft = draft
	return f.status, f.err
}

func (f *fakeSubmissionSrv) Status(userID string) *service.SubmissionStatus {
	f.lastUser = userID
	return f.status
}

func (f *fakeSubmissionSrv) Acknowledge(userID string) (*service.SubmissionStatus, error) {
	f.lastUser = userID
	return f.status, f.err
}

func authedContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1", Username: "admin"})
	return c, rec
}

func TestResourceHandlerSubmitSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSubmissionSrv{status: &service.SubmissionStatus{State: models.SubmissionSucceeded}}
	handler := NewResourceHandler(srv)

	body := `{"year":"2nd Year","degree":"Mechanical","specialisation":"Core","subject":"Thermo","subject_type":"Subject","resource_type":"CT Paper","file_urls":"a.pdf","title":"T","description":"D"}`
	c, rec := authedContext(t, http.MethodPost, "/resources", body)

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u1", srv.lastUser)
	assert.Equal(t, "Mechanical", srv.lastDraft.Degree)
	assert.Equal(t, "a.pdf", srv.lastDraft.FileURLs)
}

func TestResourceHandlerSubmitRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(&fakeSubmissionSrv{})

	c, rec := authedContext(t, http.MethodPost, "/resources", "{not-json")
	handler.Submit(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResourceHandlerSubmitRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(&fakeSubmissionSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/resources", strings.NewReader("{}"))

	handler.Submit(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResourceHandlerSubmitMapsServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSubmissionSrv{err: appErrors.ErrSubmissionInFlight}
	handler := NewResourceHandler(srv)

	body := `{"year":"2nd Year"}`
	c, rec := authedContext(t, http.MethodPost, "/resources", body)
	handler.Submit(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var envelope struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrSubmissionInFlight.Code, envelope.Error.Code)
}

func TestResourceHandlerStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSubmissionSrv{status: &service.SubmissionStatus{State: models.SubmissionFailed, Error: "bad draft"}}
	handler := NewResourceHandler(srv)

	c, rec := authedContext(t, http.MethodGet, "/resources/status", "")
	handler.Status(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data service.SubmissionStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.SubmissionFailed, envelope.Data.State)
	assert.Equal(t, "bad draft", envelope.Data.Error)
}

func TestResourceHandlerAcknowledge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSubmissionSrv{status: &service.SubmissionStatus{State: models.SubmissionIdle}}
	handler := NewResourceHandler(srv)

	c, rec := authedContext(t, http.MethodPost, "/resources/acknowledge", "")
	handler.Acknowledge(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", srv.lastUser)
}
