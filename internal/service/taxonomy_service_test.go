package service

import (
	"context"
	"testing"

	"delivery-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTaxonomyRepository is a mock implementation of the TaxonomyRepository interface
type MockTaxonomyRepository struct {
	mock.Mock
}

// ListAll implements TaxonomyRepository.
func (m *MockTaxonomyRepository) ListAll(ctx context.Context) ([]models.TaxonomyPath, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TaxonomyPath), args.Error(1)
}

// Append implements TaxonomyRepository.
func (m *MockTaxonomyRepository) Append(ctx context.Context, p models.TaxonomyPath) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// RemoveAt implements TaxonomyRepository.
func (m *MockTaxonomyRepository) RemoveAt(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

func fixturePaths() []models.TaxonomyPath {
	return []models.TaxonomyPath{
		{Gate: "Gate 1", Road: "North Rd", RoadSide: "Left", MainAlley: "Alley 3", MainAlleySide: "-", SubAlley: "-", SubAlleySide: "-"},
		{Gate: "Gate 1", Road: "North Rd", RoadSide: "Right", MainAlley: "Alley 5", MainAlleySide: "-", SubAlley: "-", SubAlleySide: "-"},
		{Gate: "Gate 1", Road: "South Rd", RoadSide: "-", MainAlley: "Alley 3", MainAlleySide: "Odd", SubAlley: "Sub 1", SubAlleySide: "-"},
		{Gate: "Gate 4", Road: "-", RoadSide: "-", MainAlley: "-", MainAlleySide: "-", SubAlley: "-", SubAlleySide: "-"},
	}
}

func TestTaxonomyService_ListChildren(t *testing.T) {
	tests := []struct {
		name     string
		paths    []models.TaxonomyPath
		prefix   []string
		expected []string
	}{
		{
			name:     "empty prefix lists gates",
			paths:    fixturePaths(),
			prefix:   nil,
			expected: []string{"Gate 1", "Gate 4"},
		},
		{
			name:     "roads below a gate",
			paths:    fixturePaths(),
			prefix:   []string{"Gate 1"},
			expected: []string{"North Rd", "South Rd"},
		},
		{
			name:     "placeholder values are not candidates",
			paths:    fixturePaths(),
			prefix:   []string{"Gate 4"},
			expected: []string{},
		},
		{
			name:     "narrower prefix never widens candidates",
			paths:    fixturePaths(),
			prefix:   []string{"Gate 1", "North Rd"},
			expected: []string{"Left", "Right"},
		},
		{
			name:     "unmatched prefix yields empty list",
			paths:    fixturePaths(),
			prefix:   []string{"Gate 9"},
			expected: []string{},
		},
		{
			name:     "empty store yields empty list",
			paths:    nil,
			prefix:   nil,
			expected: []string{},
		},
		{
			name:     "full prefix has no next level",
			paths:    fixturePaths(),
			prefix:   []string{"Gate 1", "North Rd", "Left", "Alley 3", "-", "-", "-"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaxonomyRepository)
			mockRepo.On("ListAll", mock.Anything).Return(tt.paths, nil)
			service := NewTaxonomyService(mockRepo)

			result, err := service.ListChildren(context.Background(), tt.prefix)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTaxonomyService_ListChildren_Idempotent(t *testing.T) {
	mockRepo := new(MockTaxonomyRepository)
	mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil).Once()
	service := NewTaxonomyService(mockRepo)

	first, err := service.ListChildren(context.Background(), []string{"Gate 1"})
	assert.NoError(t, err)
	second, err := service.ListChildren(context.Background(), []string{"Gate 1"})
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	// The snapshot also means only one store read happened.
	mockRepo.AssertExpectations(t)
}

func TestTaxonomyService_ListChildren_Monotonic(t *testing.T) {
	mockRepo := new(MockTaxonomyRepository)
	mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil)
	service := NewTaxonomyService(mockRepo)
	ctx := context.Background()

	// Candidates two levels down, with the middle level unconstrained,
	// collected by unioning over every candidate at the middle level.
	roads, err := service.ListChildren(ctx, []string{"Gate 1"})
	assert.NoError(t, err)

	union := map[string]struct{}{}
	for _, road := range roads {
		sides, err := service.ListChildren(ctx, []string{"Gate 1", road})
		assert.NoError(t, err)
		for _, s := range sides {
			union[s] = struct{}{}
		}
	}

	// Fixing the road can only narrow the side candidates.
	sides, err := service.ListChildren(ctx, []string{"Gate 1", "North Rd"})
	assert.NoError(t, err)
	for _, s := range sides {
		assert.Contains(t, union, s)
	}
}

func TestTaxonomyService_Append(t *testing.T) {
	tests := []struct {
		name        string
		path        models.TaxonomyPath
		expectedErr error
		stored      *models.TaxonomyPath
	}{
		{
			name:        "missing gate is rejected",
			path:        models.TaxonomyPath{Road: "North Rd"},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "duplicate path is rejected",
			path:        models.TaxonomyPath{Gate: "Gate 4"},
			expectedErr: ErrDuplicatePath,
		},
		{
			name: "new path is normalized and stored",
			path: models.TaxonomyPath{Gate: "Gate 2", Road: "East Rd"},
			stored: &models.TaxonomyPath{
				Gate: "Gate 2", Road: "East Rd", RoadSide: "-",
				MainAlley: "-", MainAlleySide: "-", SubAlley: "-", SubAlleySide: "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaxonomyRepository)
			mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil)
			if tt.stored != nil {
				mockRepo.On("Append", mock.Anything, *tt.stored).Return(nil)
			}
			service := NewTaxonomyService(mockRepo)

			err := service.Append(context.Background(), tt.path)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaxonomyService_Append_InvalidatesCache(t *testing.T) {
	mockRepo := new(MockTaxonomyRepository)
	newPath := models.TaxonomyPath{Gate: "Gate 2"}.Normalized()

	mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil).Twice()
	mockRepo.On("Append", mock.Anything, newPath).Return(nil)
	service := NewTaxonomyService(mockRepo)
	ctx := context.Background()

	_, err := service.ListChildren(ctx, nil)
	assert.NoError(t, err)

	// Append reuses the warm snapshot for its duplicate check, then
	// invalidates, so the next read goes back to the store.
	assert.NoError(t, service.Append(ctx, newPath))
	_, err = service.ListChildren(ctx, nil)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestTaxonomyService_BulkInsert(t *testing.T) {
	tests := []struct {
		name             string
		req              models.BulkTaxonomyRequest
		expectedInserted int
		expectedSkipped  int
		expectedErr      error
	}{
		{
			name:        "missing gate is rejected",
			req:         models.BulkTaxonomyRequest{Entries: []models.MainAlleyEntry{{MainAlley: "Alley 1"}}},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "unnamed main alley is rejected",
			req: models.BulkTaxonomyRequest{
				Gate:    "Gate 1",
				Entries: []models.MainAlleyEntry{{MainAlley: "  "}},
			},
			expectedErr: ErrInvalidInput,
		},
		{
			name: "tree is flattened into one path per leaf",
			req: models.BulkTaxonomyRequest{
				Gate: "Gate 1",
				Road: "North Rd",
				Entries: []models.MainAlleyEntry{
					{
						MainAlley:     "Alley 7",
						MainAlleySide: "Even",
						SubAlleys: []models.SubAlleyEntry{
							{SubAlley: "Sub A"},
							{SubAlley: "Sub B"},
						},
					},
					{MainAlley: "Alley 9"},
				},
			},
			expectedInserted: 3,
			expectedSkipped:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaxonomyRepository)
			mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil).Maybe()
			mockRepo.On("Append", mock.Anything, mock.AnythingOfType("models.TaxonomyPath")).Return(nil).Maybe()
			service := NewTaxonomyService(mockRepo)

			inserted, skipped, err := service.BulkInsert(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedInserted, inserted)
			assert.Equal(t, tt.expectedSkipped, skipped)
		})
	}
}

func TestTaxonomyService_BulkInsert_SkipsStoredDuplicate(t *testing.T) {
	// The fixture's "Gate 1 / North Rd / Left / Alley 3" row includes a
	// road side, so a bulk entry without one is a distinct path. This
	// request repeats its own first entry instead.
	req := models.BulkTaxonomyRequest{
		Gate: "Gate 1",
		Road: "West Rd",
		Entries: []models.MainAlleyEntry{
			{MainAlley: "Alley 9"},
			{MainAlley: "Alley 9"},
		},
	}

	mockRepo := new(MockTaxonomyRepository)
	mockRepo.On("ListAll", mock.Anything).Return(fixturePaths(), nil)
	mockRepo.On("Append", mock.Anything, mock.AnythingOfType("models.TaxonomyPath")).Return(nil).Once()
	service := NewTaxonomyService(mockRepo)

	inserted, skipped, err := service.BulkInsert(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, skipped)
	mockRepo.AssertExpectations(t)
}
