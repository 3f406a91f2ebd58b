package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/match"
)

// MockMatchService mocks match.Service
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Create(ctx context.Context, req match.CreateRequest) (*domain.Match, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchService) Get(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchService) List(ctx context.Context, limit int) ([]domain.MatchSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchSummary), args.Error(1)
}

func (m *MockMatchService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMatchService) ApplyMove(ctx context.Context, id uuid.UUID, move string, moveArgs []any) (*match.MoveResult, error) {
	args := m.Called(ctx, id, move, moveArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.MoveResult), args.Error(1)
}

// newMatchRouter mounts the match routes the same way the server does so
// chi fills in {id}
func newMatchRouter(svc match.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/matches", func(r chi.Router) {
		r.Get("/", HandleListMatches(svc))
		r.Post("/", HandleCreateMatch(svc))
		r.Get("/{id}", HandleGetMatch(svc))
		r.Delete("/{id}", HandleDeleteMatch(svc))
		r.Post("/{id}/moves", HandleApplyMove(svc))
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		var buf bytes.Buffer
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req = httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
