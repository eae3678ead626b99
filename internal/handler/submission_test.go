package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-tracker/internal/models"
	"delivery-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionService is a mock implementation of the SubmissionService interface
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Create(ctx context.Context, req models.NewSubmission) (models.Submission, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *MockSubmissionService) ListAll(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionService) ListPending(ctx context.Context) ([]models.Submission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionService) Get(ctx context.Context, id int64) (models.Submission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *MockSubmissionService) Review(ctx context.Context, id int64, patch models.ReviewPatch) (models.Submission, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *MockSubmissionService) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubmissionService) MapPoints(ctx context.Context) ([]models.MapPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MapPoint), args.Error(1)
}

func (m *MockSubmissionService) AdvanceForm(state models.FormState) models.FormState {
	args := m.Called(state)
	return args.Get(0).(models.FormState)
}

func (m *MockSubmissionService) SubmitForm(ctx context.Context, state models.FormState) (models.Submission, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(models.Submission), args.Error(1)
}

// MockNoteSummarizer is a mock implementation of the NoteSummarizer interface
type MockNoteSummarizer struct {
	mock.Mock
}

func (m *MockNoteSummarizer) Summarize(ctx context.Context, lat, lon float64, note string) (string, error) {
	args := m.Called(ctx, lat, lon, note)
	return args.String(0), args.Error(1)
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmissionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lat, lon := 13.75, 100.5
	validReq := models.NewSubmission{
		Latitude: &lat, Longitude: &lon,
		PlaceName: "Baan Somchai", Note: "near gate 4",
	}
	stored := models.Submission{
		ID: 1, Latitude: "13.75", Longitude: "100.5",
		PlaceName: "Baan Somchai", Note: "near gate 4",
		ReviewStatus: models.StatusPending,
	}

	tests := []struct {
		name           string
		body           any
		mockStored     models.Submission
		mockErr        error
		summary        string
		summaryErr     error
		expectedStatus int
	}{
		{
			name:           "valid submission with AI summary",
			body:           validReq,
			mockStored:     stored,
			summary:        "Delivery point near gate 4.",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "summary failure still creates",
			body:           validReq,
			mockStored:     stored,
			summaryErr:     assert.AnError,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation failure",
			body:           models.NewSubmission{PlaceName: "Baan Somchai"},
			mockErr:        service.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "store failure",
			body:           validReq,
			mockErr:        assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSubmissionService)
			mockSvc.On("Create", mock.Anything, mock.AnythingOfType("models.NewSubmission")).
				Return(tt.mockStored, tt.mockErr)
			mockSum := new(MockNoteSummarizer)
			mockSum.On("Summarize", mock.Anything, 13.75, 100.5, "near gate 4").
				Return(tt.summary, tt.summaryErr).Maybe()
			h := NewSubmissionHandler(mockSvc, mockSum)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(t, http.MethodPost, "/submissions", tt.body)

			h.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var body struct {
					Submission models.Submission `json:"submission"`
					AISummary  string            `json:"ai_summary"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.mockStored.ID, body.Submission.ID)
				assert.Equal(t, tt.summary, body.AISummary)
			}
		})
	}
}

func TestSubmissionHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reviewed := models.StatusReviewed
	patch := models.ReviewPatch{
		Classification: &models.TaxonomyPath{Gate: "Gate 1"},
		ReviewStatus:   &reviewed,
	}

	tests := []struct {
		name           string
		id             string
		mockErr        error
		expectedStatus int
	}{
		{
			name:           "successful review",
			id:             "7",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			id:             "seven",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown submission",
			id:             "7",
			mockErr:        service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "classification outside taxonomy",
			id:             "7",
			mockErr:        service.ErrUnknownClassification,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSubmissionService)
			mockSvc.On("Review", mock.Anything, int64(7), patch).
				Return(models.Submission{ID: 7, ReviewStatus: models.StatusReviewed}, tt.mockErr).Maybe()
			h := NewSubmissionHandler(mockSvc, new(MockNoteSummarizer))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}
			c.Request = jsonRequest(t, http.MethodPatch, "/submissions/"+tt.id, patch)

			h.Review(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSubmissionHandler_SubmitForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lat, lon := 13.75, 100.5
	state := models.FormState{
		Step: models.StepSave, Latitude: &lat, Longitude: &lon,
		PlaceName: "Baan Somchai",
	}

	tests := []struct {
		name           string
		mockErr        error
		expectedStatus int
	}{
		{
			name:           "clean state is persisted",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "incomplete state is rejected",
			mockErr:        service.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSubmissionService)
			mockSvc.On("SubmitForm", mock.Anything, state).
				Return(models.Submission{ID: 3, PlaceName: "Baan Somchai"}, tt.mockErr)
			h := NewSubmissionHandler(mockSvc, new(MockNoteSummarizer))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = jsonRequest(t, http.MethodPost, "/submissions/form", state)

			h.SubmitForm(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var got models.Submission
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, int64(3), got.ID)
			}
		})
	}
}

func TestSubmissionHandler_MapPoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	points := []models.MapPoint{{Latitude: 13.75, Longitude: 100.5, Label: "Baan Somchai"}}
	mockSvc := new(MockSubmissionService)
	mockSvc.On("MapPoints", mock.Anything).Return(points, nil)
	h := NewSubmissionHandler(mockSvc, new(MockNoteSummarizer))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/submissions/map", nil)

	h.MapPoints(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.MapPoint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, points, got)
}

func TestSubmissionHandler_List_EmptyStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockSubmissionService)
	mockSvc.On("ListAll", mock.Anything).Return([]models.Submission(nil), nil)
	h := NewSubmissionHandler(mockSvc, new(MockNoteSummarizer))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/submissions", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
