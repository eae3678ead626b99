package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string) ([]models.Submission, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Submission), args.Error(1)
}

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockResults    []models.Submission
		mockErr        error
		expectedStatus int
		expectedLen    int
	}{
		{
			name:  "ranked results",
			query: "gate 4",
			mockResults: []models.Submission{
				{ID: 1, PlaceName: "Baan Somchai"},
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "empty query browses all",
			query:          "",
			mockResults:    []models.Submission{{ID: 1}, {ID: 2}},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "service error",
			query:          "gate 4",
			mockErr:        assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSearchService)
			mockSvc.On("Search", mock.Anything, tt.query).Return(tt.mockResults, tt.mockErr)
			h := NewSearchHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodGet, "/search", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			c.Request = req

			h.Search(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []models.Submission
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}
