package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubWorkflowService struct {
	session    *models.BookingWorkflowSession
	initErr    error
	submitResp *models.BookingConfirmation
	submitErr  error
	cancelErr  error

	lastWorkflowID string
	lastCandidate  models.BookingCandidate
}

func (s *stubWorkflowService) InitiateWorkflow(userID string) (*models.BookingWorkflowSession, error) {
	if s.initErr != nil {
		return nil, s.initErr
	}
	return s.session, nil
}

func (s *stubWorkflowService) Submit(workflowID, userID string, candidate models.BookingCandidate) (*models.BookingConfirmation, error) {
	s.lastWorkflowID = workflowID
	s.lastCandidate = candidate
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResp, nil
}

func (s *stubWorkflowService) CancelWorkflow(workflowID, userID string) error {
	s.lastWorkflowID = workflowID
	return s.cancelErr
}

func newBookingRouter(svc *stubWorkflowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "user-1") })
	r.POST("/api/booking/session", h.StartWorkflow)
	r.POST("/api/booking/session/:workflowID/submit", h.SubmitBooking)
	r.DELETE("/api/booking/session/:workflowID", h.CancelWorkflow)
	return r
}

func submitBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(models.BookingCandidate{
		FullName:        "Jane Patient",
		PhoneNumber:     "9999999999",
		ServiceID:       "svc-1",
		AppointmentDate: "2999-01-01",
		AppointmentTime: "09:00 AM - 10:00 AM",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestStartWorkflowResponse(t *testing.T) {
	svc := &stubWorkflowService{
		session: &models.BookingWorkflowSession{
			ID:     "wf-1",
			UserID: "user-1",
			State:  models.WorkflowEditing,
			Catalog: []models.Service{
				{ID: "svc-1", Name: "ECG", Category: "Cardiology", PriceRange: "₹300 - ₹600"},
			},
		},
	}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/session", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "wf-1", resp["workflowID"])
	assert.Equal(t, string(models.WorkflowEditing), resp["state"])
	assert.Len(t, resp["tests"], 1)
	assert.Len(t, resp["timeSlots"], 8)
	assert.NotContains(t, resp, "warning")
}

func TestStartWorkflowCatalogWarning(t *testing.T) {
	svc := &stubWorkflowService{
		session: &models.BookingWorkflowSession{
			ID:                "wf-1",
			UserID:            "user-1",
			State:             models.WorkflowEditing,
			CatalogLoadFailed: true,
		},
	}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/session", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load tests")
}

func TestStartWorkflowUnauthorized(t *testing.T) {
	svc := &stubWorkflowService{initErr: booking.NewAuthorizationError()}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/session", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/auth")
}

func TestSubmitBookingSuccess(t *testing.T) {
	svc := &stubWorkflowService{
		submitResp: &models.BookingConfirmation{
			BookingNumber:   "BK-TEST0001",
			FullName:        "Jane Patient",
			ServiceName:     "ECG",
			Confirmation:    "Booking confirmed",
			CreatedAt:       time.Now(),
			AppointmentDate: "2999-01-01",
			AppointmentTime: "09:00 AM - 10:00 AM",
		},
	}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/wf-1/submit", submitBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wf-1", svc.lastWorkflowID)
	assert.Equal(t, "Jane Patient", svc.lastCandidate.FullName)
	assert.Contains(t, w.Body.String(), "BK-TEST0001")
}

func TestSubmitBookingMalformedJSON(t *testing.T) {
	svc := &stubWorkflowService{}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/wf-1/submit", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBookingErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			"validation error",
			&booking.ValidationError{Field: "fullName", Message: "Name must be between 2 and 100 characters"},
			http.StatusBadRequest,
			"fullName",
		},
		{
			"authorization error",
			booking.NewAuthorizationError(),
			http.StatusUnauthorized,
			"/auth",
		},
		{
			"submission in flight",
			&booking.SubmitConflictError{WorkflowID: "wf-1"},
			http.StatusConflict,
			"already in progress",
		},
		{
			"workflow not found",
			&booking.WorkflowNotFoundError{WorkflowID: "wf-1"},
			http.StatusNotFound,
			"",
		},
		{
			"already confirmed",
			&booking.WorkflowStateError{State: models.WorkflowConfirmed},
			http.StatusConflict,
			"already confirmed",
		},
		{
			"store failure",
			&booking.PersistenceError{Err: errors.New("connection reset")},
			http.StatusInternalServerError,
			"Failed to create booking",
		},
		{
			"unexpected failure",
			errors.New("boom"),
			http.StatusInternalServerError,
			"Failed to create booking",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubWorkflowService{submitErr: tc.err}
			router := newBookingRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/session/wf-1/submit", submitBody(t))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Contains(t, w.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestCancelWorkflowResponses(t *testing.T) {
	svc := &stubWorkflowService{}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/booking/session/wf-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wf-1", svc.lastWorkflowID)

	svc.cancelErr = &booking.WorkflowNotFoundError{WorkflowID: "wf-1"}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/booking/session/wf-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
