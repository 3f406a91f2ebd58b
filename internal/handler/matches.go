package handler

import (
	"net/http"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/match"
)

// CreateMatchRequest starts a new farm. The body is optional.
type CreateMatchRequest struct {
	Label string `json:"label" validate:"max=100,excludesall=\x00\n\r\t"`
	Seed  *int64 `json:"seed,omitempty"`
}

// ApplyMoveRequest names one move and its positional arguments
type ApplyMoveRequest struct {
	Move string `json:"move" validate:"required,max=64"`
	Args []any  `json:"args"`
}

// MatchListResponse wraps the match summaries
type MatchListResponse struct {
	Matches []domain.MatchSummary `json:"matches"`
}

// HandleCreateMatch creates a farm and returns its initial state
func HandleCreateMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMatchRequest
		if hasBody(r) {
			if err := DecodeAndValidateRequest(r, w, &req, "Create match"); err != nil {
				return
			}
		}

		m, err := svc.Create(r.Context(), match.CreateRequest{Label: req.Label, Seed: req.Seed})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateMatchFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Match created", "match_id", m.ID, "seed", m.State.Seed)
		respondJSON(w, http.StatusCreated, m)
	}
}

// HandleListMatches lists stored matches, most recently played first
func HandleListMatches(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getOptionalIntParam(w, r, "limit", match.DefaultListLimit, ErrMsgInvalidLimit)
		if !ok {
			return
		}

		matches, err := svc.List(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListMatchesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, MatchListResponse{Matches: matches})
	}
}

// HandleGetMatch returns a match with its full state
func HandleGetMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		m, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMatchFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

// HandleDeleteMatch removes a match
func HandleDeleteMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgDeleteMatchFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMatchDeleted})
	}
}

// HandleApplyMove applies one move. A rejected move answers 422 but still
// carries the result and state, since the attempt is recorded on the match.
func HandleApplyMove(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := matchIDParam(w, r)
		if !ok {
			return
		}

		var req ApplyMoveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply move"); err != nil {
			return
		}

		res, err := svc.ApplyMove(r.Context(), id, req.Move, req.Args)
		switch {
		case err == nil:
			respondJSON(w, http.StatusOK, res)
		case res != nil && domain.IsRejection(err):
			logger.FromContext(r.Context()).Info("Move rejected", "match_id", id, "move", req.Move, "reason", res.Result.Reason)
			respondJSON(w, http.StatusUnprocessableEntity, res)
		default:
			respondServiceError(w, r, ErrMsgApplyMoveFailed, err)
		}
	}
}
