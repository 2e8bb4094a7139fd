package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s *models.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, s *models.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate(t *testing.T) {
	repo := new(MockRepository)
	uc := New(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Service")).Return(nil)

	s, err := uc.Create(context.Background(), CreateInput{Name: "Corte", Description: "Corte masculino", Price: 40})
	require.NoError(t, err)
	assert.Equal(t, 40.0, s.Price)
	assert.Nil(t, s.ImageURL)
}

func TestCreate_RejectsNonPositivePrice(t *testing.T) {
	repo := new(MockRepository)
	uc := New(repo)

	for _, price := range []float64{0, -10} {
		_, err := uc.Create(context.Background(), CreateInput{Name: "Corte", Price: price})
		assert.True(t, httperr.IsBusiness(err, "invalid_price"))
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_Partial(t *testing.T) {
	repo := new(MockRepository)
	uc := New(repo)

	repo.On("GetByID", mock.Anything, uint(2)).Return(&models.Service{ID: 2, Name: "Barba", Description: "Navalha", Price: 30}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	price := 35.0
	s, err := uc.Update(context.Background(), 2, UpdateInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 35.0, s.Price)
	assert.Equal(t, "Barba", s.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockRepository)
	uc := New(repo)

	repo.On("GetByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	name := "x"
	_, err := uc.Update(context.Background(), 2, UpdateInput{Name: &name})
	assert.True(t, httperr.IsNotFound(err))
}
