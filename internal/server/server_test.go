package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/database/memory"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/handler"
	"github.com/osse101/AquaponicsSim_Go/internal/match"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	c := catalog.MustDefault()
	engine := game.NewEngine(c)

	simCfg := simulation.DefaultConfig()
	simCfg.MaxTurns = 5
	simCfg.Workers = 1

	return NewRouter(
		Options{APIKey: testAPIKey, MaxBodyBytes: 1 << 16},
		Deps{
			Matches:     match.NewService(memory.NewMatchRepository(), engine),
			Catalog:     c,
			Simulations: handler.NewSimulationHandler(engine, simCfg, 5, nil),
		},
	)
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PlayAMatch(t *testing.T) {
	r := newTestRouter(t)

	rec := call(t, r, http.MethodPost, "/api/v1/matches", `{"label":"demo","seed":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	base := "/api/v1/matches/" + created.ID.String()

	rec = call(t, r, http.MethodPost, base+"/moves", `{"move":"buyFish","args":["tilapia",5]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var moved match.MoveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
	assert.True(t, moved.Result.Success)
	assert.Less(t, moved.State.Money, game.StartingMoney)

	rec = call(t, r, http.MethodPost, base+"/moves", `{"move":"buyFish","args":["goldfish",1]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ReasonUnknownSpecies)

	rec = call(t, r, http.MethodPost, base+"/moves", `{"move":"progressTrun"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.MoveProgressTurn)

	rec = call(t, r, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded domain.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, 2, loaded.State.MoveCount, "the unknown move is not counted")

	rec = call(t, r, http.MethodGet, "/api/v1/matches", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())

	rec = call(t, r, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CatalogAndSimulations(t *testing.T) {
	r := newTestRouter(t)

	rec := call(t, r, http.MethodGet, "/api/v1/catalog", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), catalog.FishTilapia)

	rec = call(t, r, http.MethodGet, "/api/v1/catalog/equipment/biofiltr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), catalog.EquipmentBiofilter)

	rec = call(t, r, http.MethodPost, "/api/v1/simulations", `{"games":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_games":2`)
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	r := newTestRouter(t)
	label := strings.Repeat("a", 1<<17)

	rec := call(t, r, http.MethodPost, "/api/v1/matches", `{"label":"`+label+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_EchoesRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(okHandler)

	req := httptest.NewRequest("GET", "/api/v1/matches", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_SkipsHealthChecks(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))

	assert.Empty(t, buf.String())
}
