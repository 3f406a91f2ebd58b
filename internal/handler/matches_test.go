package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/database/memory"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/match"
)

func testMatch(id uuid.UUID) *domain.Match {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Match{
		ID:        id,
		Label:     "greenhouse",
		State:     &domain.GameState{Seed: 7, Money: 5000},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestHandleCreateMatch(t *testing.T) {
	InitValidator()
	seed := int64(99)

	tests := []struct {
		name           string
		body           any
		setupMock      func(*MockMatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success With Seed",
			body: CreateMatchRequest{Label: "greenhouse", Seed: &seed},
			setupMock: func(m *MockMatchService) {
				m.On("Create", mock.Anything, match.CreateRequest{Label: "greenhouse", Seed: &seed}).
					Return(testMatch(uuid.New()), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Empty Body Uses Defaults",
			body: nil,
			setupMock: func(m *MockMatchService) {
				m.On("Create", mock.Anything, match.CreateRequest{}).Return(testMatch(uuid.New()), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed JSON",
			body:           `{"label":`,
			setupMock:      func(m *MockMatchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Label Too Long",
			body:           CreateMatchRequest{Label: strings.Repeat("a", 101)},
			setupMock:      func(m *MockMatchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSummary,
		},
		{
			name: "Store Failure",
			body: CreateMatchRequest{Label: "x"},
			setupMock: func(m *MockMatchService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("save: %w", domain.ErrDatabaseError))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockMatchService{}
			tt.setupMock(svc)

			w := doRequest(t, newMatchRouter(svc), http.MethodPost, "/matches/", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetMatch(t *testing.T) {
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("Get", mock.Anything, id).Return(testMatch(id), nil)

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/"+id.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.Match](t, w)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, 5000.0, got.State.Money)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("Get", mock.Anything, id).Return(nil, domain.ErrMatchNotFound)

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMatchNotFoundError)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		svc := &MockMatchService{}

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidMatchID)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestHandleListMatches(t *testing.T) {
	summaries := []domain.MatchSummary{{ID: uuid.New(), GameTime: 3, Money: 4200}}

	t.Run("Default Limit", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("List", mock.Anything, match.DefaultListLimit).Return(summaries, nil)

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[MatchListResponse](t, w)
		assert.Len(t, got.Matches, 1)
		svc.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("List", mock.Anything, 5).Return([]domain.MatchSummary{}, nil)

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/?limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"matches":[]}`, w.Body.String())
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		svc := &MockMatchService{}

		w := doRequest(t, newMatchRouter(svc), http.MethodGet, "/matches/?limit=ten", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}

func TestHandleDeleteMatch(t *testing.T) {
	id := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("Delete", mock.Anything, id).Return(nil)

		w := doRequest(t, newMatchRouter(svc), http.MethodDelete, "/matches/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgMatchDeleted)
	})

	t.Run("Missing", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("Delete", mock.Anything, id).Return(domain.ErrMatchNotFound)

		w := doRequest(t, newMatchRouter(svc), http.MethodDelete, "/matches/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleApplyMove(t *testing.T) {
	InitValidator()
	id := uuid.New()
	target := "/matches/" + id.String() + "/moves"

	t.Run("Success Keeps Numbers Exact", func(t *testing.T) {
		svc := &MockMatchService{}
		state := &domain.GameState{Money: 4900, MoveCount: 1}
		svc.On("ApplyMove", mock.Anything, id, domain.MoveBuyFish, []any{"tilapia", json.Number("5")}).
			Return(&match.MoveResult{
				MatchID: id,
				Result:  &domain.ActionResult{Type: domain.MoveBuyFish, Success: true, Cost: 100},
				State:   state,
			}, nil)

		w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, `{"move":"buyFish","args":["tilapia",5]}`)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[match.MoveResult](t, w)
		assert.True(t, got.Result.Success)
		assert.Equal(t, 4900.0, got.State.Money)
		svc.AssertExpectations(t)
	})

	t.Run("Rejected Move Returns Result", func(t *testing.T) {
		svc := &MockMatchService{}
		rejectErr := fmt.Errorf("%w: need $900.00, have $10.00", domain.ErrInsufficientFunds)
		svc.On("ApplyMove", mock.Anything, id, domain.MoveBuyEquipment, []any{"biofilter"}).
			Return(&match.MoveResult{
				MatchID: id,
				Result: &domain.ActionResult{
					Type:   domain.MoveBuyEquipment,
					Reason: domain.ReasonInsufficientFunds,
					Error:  rejectErr.Error(),
				},
				State: &domain.GameState{Money: 10, MoveCount: 3},
			}, rejectErr)

		w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, ApplyMoveRequest{Move: domain.MoveBuyEquipment, Args: []any{"biofilter"}})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		got := decodeBody[match.MoveResult](t, w)
		assert.False(t, got.Result.Success)
		assert.Equal(t, domain.ReasonInsufficientFunds, got.Result.Reason)
		assert.Equal(t, 3, got.State.MoveCount)
	})

	t.Run("Unknown Move Suggests", func(t *testing.T) {
		svc := &MockMatchService{}
		err := fmt.Errorf("%w (did you mean %q?)", fmt.Errorf("%w: %s", domain.ErrMoveNotFound, "buyFsh"), "buyFish")
		svc.On("ApplyMove", mock.Anything, id, "buyFsh", []any(nil)).Return(nil, err)

		w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, `{"move":"buyFsh"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "buyFish")
	})

	t.Run("Missing Move Name", func(t *testing.T) {
		svc := &MockMatchService{}

		w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, `{"args":[1]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, "This field is required", resp.Fields["move"])
		svc.AssertNotCalled(t, "ApplyMove", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Match Not Found", func(t *testing.T) {
		svc := &MockMatchService{}
		svc.On("ApplyMove", mock.Anything, id, domain.MoveSkipTurn, []any(nil)).Return(nil, domain.ErrMatchNotFound)

		w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, `{"move":"skipTurn"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMatchNotFoundError)
	})
}

func TestHandleApplyMove_FeedWithoutFlockReturnsUnchangedState(t *testing.T) {
	InitValidator()
	ctx := context.Background()
	svc := match.NewService(memory.NewMatchRepository(), game.NewEngine(catalog.MustDefault()))
	m, err := svc.Create(ctx, match.CreateRequest{Label: "empty tank"})
	require.NoError(t, err)

	target := "/matches/" + m.ID.String() + "/moves"
	w := doRequest(t, newMatchRouter(svc), http.MethodPost, target, `{"move":"feedFish","args":[5,3]}`)

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[match.MoveResult](t, w)
	require.NotNil(t, got.Result)
	require.NotNil(t, got.State)
	assert.Equal(t, domain.MoveFeedFish, got.Result.Type)
	assert.True(t, got.Result.Success)
	assert.Zero(t, got.Result.Quantity)
	assert.Equal(t, m.State.Money, got.State.Money)
	assert.Equal(t, m.State.FishFood, got.State.FishFood)
	assert.Zero(t, got.State.GameTime)
	assert.Nil(t, got.State.LastAction)
	require.NotNil(t, got.State.System)
	assert.Empty(t, got.State.System.Log, "no tick ran")
}
