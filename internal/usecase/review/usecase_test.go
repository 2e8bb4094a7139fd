package review

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// MockRepository implementa domain.Repository; WithBarberLock executa fn no próprio mock.
// As notas ficam em scores (id da avaliação -> nota): Create, Update e Delete
// alteram o mapa e ScoresByBarber lê dele, então a ordem das chamadas importa.
type MockRepository struct {
	mock.Mock
	scores map[uint]int
	nextID uint
}

func newRepo(existing map[uint]int) *MockRepository {
	m := &MockRepository{scores: map[uint]int{}, nextID: 100}
	for id, score := range existing {
		m.scores[id] = score
	}
	return m
}

func (m *MockRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) BarberExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ServiceExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) WithBarberLock(ctx context.Context, barberID uint, fn func(tx domain.Repository) error) error {
	args := m.Called(ctx, barberID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockRepository) ScoresByBarber(ctx context.Context, barberID uint) ([]int, error) {
	if err := m.Called(ctx, barberID).Error(0); err != nil {
		return nil, err
	}

	out := make([]int, 0, len(m.scores))
	for _, score := range m.scores {
		out = append(out, score)
	}
	return out, nil
}

func (m *MockRepository) SetBarberAverage(ctx context.Context, barberID uint, avg float64) error {
	args := m.Called(ctx, barberID, avg)
	return args.Error(0)
}

func (m *MockRepository) Create(ctx context.Context, rv *models.Review) error {
	if err := m.Called(ctx, rv).Error(0); err != nil {
		return err
	}
	m.nextID++
	rv.ID = m.nextID
	m.scores[rv.ID] = rv.Score
	return nil
}

func (m *MockRepository) List(ctx context.Context, f domain.Filter) ([]models.Review, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	args := m.Called(ctx, id)
	rv, _ := args.Get(0).(*models.Review)
	return rv, args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	args := m.Called(ctx, id)
	rv, _ := args.Get(0).(*models.Review)
	return rv, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, rv *models.Review) error {
	if err := m.Called(ctx, rv).Error(0); err != nil {
		return err
	}
	m.scores[rv.ID] = rv.Score
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	if err := m.Called(ctx, id).Error(0); err != nil {
		return err
	}
	delete(m.scores, id)
	return nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func expectReferences(repo *MockRepository) {
	repo.On("ClientExists", mock.Anything, uint(1)).Return(true, nil)
	repo.On("BarberExists", mock.Anything, uint(2)).Return(true, nil)
	repo.On("ServiceExists", mock.Anything, uint(3)).Return(true, nil)
}

// ======================================================
// CREATE
// ======================================================

func TestCreate_UpdatesBarberAverageWithNewScore(t *testing.T) {
	// notas anteriores [4,5] + nova 3
	repo := newRepo(map[uint]int{1: 4, 2: 5})
	sink := &recordingSink{}
	uc := New(repo, sink, zaptest.NewLogger(t))

	expectReferences(repo)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	repo.On("ScoresByBarber", mock.Anything, uint(2)).Return(nil)
	repo.On("SetBarberAverage", mock.Anything, uint(2), 4.0).Return(nil)

	rv, err := uc.Create(context.Background(), CreateInput{
		ClientID: 1, BarberID: 2, ServiceID: 3, Score: 3, Comment: "Bom corte",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, rv.Score)
	assert.Len(t, repo.scores, 3)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "review_created", sink.events[0].Action)
	repo.AssertExpectations(t)
}

func TestCreate_MissingBarberWritesNothing(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	repo.On("ClientExists", mock.Anything, uint(1)).Return(true, nil)
	repo.On("BarberExists", mock.Anything, uint(2)).Return(false, nil)

	_, err := uc.Create(context.Background(), CreateInput{ClientID: 1, BarberID: 2, ServiceID: 3, Score: 5})

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	repo.AssertNotCalled(t, "WithBarberLock", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidScore(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	_, err := uc.Create(context.Background(), CreateInput{ClientID: 1, BarberID: 2, ServiceID: 3, Score: 6})

	assert.True(t, httperr.IsBusiness(err, "invalid_score"))
	repo.AssertExpectations(t)
}

func TestCreate_BarberRemovedBeforeLock(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	expectReferences(repo)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)

	_, err := uc.Create(context.Background(), CreateInput{ClientID: 1, BarberID: 2, ServiceID: 3, Score: 4})

	// referência sumida é erro de negócio (400), não 404
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	assert.False(t, httperr.IsNotFound(err))
	assert.Empty(t, repo.scores)
}

// ======================================================
// READ
// ======================================================

func TestGetAll_PassesFilter(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	barberID := uint(2)
	f := domain.Filter{BarberID: &barberID}
	repo.On("List", mock.Anything, f).Return([]models.Review{{ID: 1, BarberID: 2, Score: 5}}, nil)

	out, err := uc.GetAll(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Nota)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	repo.On("GetByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetByID(context.Background(), 3)
	assert.True(t, httperr.IsNotFound(err))
}

// ======================================================
// UPDATE / REMOVE
// ======================================================

func TestUpdate_ScoreChangeRecomputesAndKeepsForeignKeys(t *testing.T) {
	// outra avaliação com 4; a 9 passa de 5 para 1 -> média 2.5
	repo := newRepo(map[uint]int{8: 4, 9: 5})
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	current := &models.Review{ID: 9, ClientID: 1, BarberID: 2, ServiceID: 3, Score: 5, Comment: "ok"}
	repo.On("FindByID", mock.Anything, uint(9)).Return(current, nil)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(rv *models.Review) bool {
		return rv.ClientID == 1 && rv.BarberID == 2 && rv.ServiceID == 3 && rv.Score == 1
	})).Return(nil)
	repo.On("ScoresByBarber", mock.Anything, uint(2)).Return(nil)
	repo.On("SetBarberAverage", mock.Anything, uint(2), 2.5).Return(nil)

	rv, err := uc.Update(context.Background(), 9, UpdateInput{Score: intPtr(1), Comment: strPtr("mudou")})

	require.NoError(t, err)
	assert.Equal(t, "mudou", rv.Comment)
	repo.AssertExpectations(t)
}

func TestUpdate_CommentOnlyKeepsAverage(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	repo.On("FindByID", mock.Anything, uint(9)).Return(&models.Review{ID: 9, BarberID: 2, Score: 4}, nil)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Update(context.Background(), 9, UpdateInput{Comment: strPtr("texto")})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "SetBarberAverage", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemove_RecomputesAverage(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	repo.On("FindByID", mock.Anything, uint(9)).Return(&models.Review{ID: 9, BarberID: 2, Score: 4}, nil)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(nil)
	repo.On("Delete", mock.Anything, uint(9)).Return(nil)
	repo.On("ScoresByBarber", mock.Anything, uint(2)).Return([]int{}, nil)
	repo.On("SetBarberAverage", mock.Anything, uint(2), 0.0).Return(nil)

	require.NoError(t, uc.Remove(context.Background(), 9))
	repo.AssertExpectations(t)
}

func TestRemove_LastReviewResetsAverage(t *testing.T) {
	repo := newRepo(map[uint]int{9: 5})

	repo.On("FindByID", mock.Anything, uint(9)).Return(&models.Review{ID: 9, BarberID: 2, Score: 5}, nil)
	repo.On("WithBarberLock", mock.Anything, uint(2)).Return(nil)
	repo.On("Delete", mock.Anything, uint(9)).Return(nil)
	repo.On("ScoresByBarber", mock.Anything, uint(2)).Return(nil)
	repo.On("SetBarberAverage", mock.Anything, uint(2), 0.0).Return(nil)

	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))
	require.NoError(t, uc.Remove(context.Background(), 9))
	repo.AssertExpectations(t)
}

func TestRemove_NotFound(t *testing.T) {
	repo := newRepo(nil)
	uc := New(repo, &recordingSink{}, zaptest.NewLogger(t))

	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	assert.True(t, httperr.IsNotFound(uc.Remove(context.Background(), 9)))
}
