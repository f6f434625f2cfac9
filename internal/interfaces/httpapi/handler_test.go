package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/external/cricbuzz"
	"github.com/cricstats/livestats/internal/infrastructure/repository/sqlite"
	"github.com/cricstats/livestats/internal/platform/logging"
	"github.com/cricstats/livestats/internal/usecase"
)

type fakeAPI struct {
	enabled bool
	matches map[string]map[string]any
}

func (f *fakeAPI) Enabled() bool { return f.enabled }

func (f *fakeAPI) Matches(_ context.Context, state string) (map[string]any, error) {
	if payload, ok := f.matches[state]; ok {
		return payload, nil
	}
	return nil, cricbuzz.ErrUnrecognizedShape
}

func (f *fakeAPI) Scorecard(_ context.Context, _ string) (map[string]any, error) {
	return nil, cricbuzz.ErrUnrecognizedShape
}

func (f *fakeAPI) MatchInfo(_ context.Context, matchID string) (map[string]any, error) {
	return map[string]any{"matchId": matchID}, nil
}

func (f *fakeAPI) Commentary(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{"commentaryList": []any{}}, nil
}

func (f *fakeAPI) PlayerBatting(_ context.Context, _ string) (map[string]any, error) {
	return nil, cricbuzz.ErrUnrecognizedShape
}

func (f *fakeAPI) PlayerBowling(_ context.Context, _ string) (map[string]any, error) {
	return nil, cricbuzz.ErrUnrecognizedShape
}

func (f *fakeAPI) TrendingPlayers(_ context.Context) ([]cricbuzz.PlayerRef, error) {
	return nil, cricbuzz.ErrUnrecognizedShape
}

func (f *fakeAPI) Rankings(_ context.Context, category, format string) (map[string]any, error) {
	return map[string]any{"category": category, "format": format, "rank": []any{}}, nil
}

func newTestServer(t *testing.T, api usecase.CricketAPI) *httptest.Server {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	logger := logging.NewNop()
	if err := sqlite.EnsureSchema(ctx, db, logger); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := sqlite.BootstrapSeed(ctx, db, logger); err != nil {
		t.Fatalf("seed: %v", err)
	}

	playerRepo := sqlite.NewPlayerRepository(db)
	matchRepo := sqlite.NewMatchRepository(db)

	handler := NewHandler(
		usecase.NewStatsService(playerRepo, matchRepo),
		usecase.NewPlayerLoader(api, playerRepo, logger),
		usecase.NewMatchLoader(api, matchRepo, sqlite.NewVenueRepository(db), sqlite.NewSeriesRepository(db), sqlite.NewInningsRepository(db), logger),
		usecase.NewLiveService(api),
		usecase.NewQueryService(sqlite.NewQueryRunner(db)),
		usecase.NewTableService(sqlite.NewTableAdmin(db)),
		logger,
	)

	server := httptest.NewServer(NewRouter(handler, logger, []string{"*"}))
	t.Cleanup(server.Close)
	return server
}

func getEnvelope(t *testing.T, url string) (int, googleResponseEnvelope) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	var envelope googleResponseEnvelope
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, envelope
}

func doJSON(t *testing.T, method, url, body string) (int, googleResponseEnvelope) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var envelope googleResponseEnvelope
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, envelope
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{})
	status, envelope := getEnvelope(t, server.URL+"/healthz")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected api version %q", envelope.APIVersion)
	}
	if envelope.Error != nil {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestHandler_ListPlayers(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{})
	status, envelope := getEnvelope(t, server.URL+"/v1/players")
	if status != http.StatusOK {
		t.Fatalf("unexpected status %d", status)
	}
	items, ok := envelope.Data.([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected seeded players, got %T", envelope.Data)
	}
}

func TestHandler_ListMatches_InvalidStatus(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{})
	status, envelope := getEnvelope(t, server.URL+"/v1/matches?status=ancient")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if envelope.Error == nil || envelope.Error.Status != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestHandler_IngestWithoutKey(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{enabled: false})

	status, envelope := doJSON(t, http.MethodPost, server.URL+"/v1/ingest/players", `{"playerIds":["8733"]}`)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
	if envelope.Error == nil || envelope.Error.Status != "UNAVAILABLE" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}

	status, _ = doJSON(t, http.MethodPost, server.URL+"/v1/ingest/matches", ``)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for matches, got %d", status)
	}
}

func TestHandler_LiveRoutes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{
		enabled: true,
		matches: map[string]map[string]any{"live": {"typeMatches": []any{}}},
	})

	status, _ := getEnvelope(t, server.URL+"/v1/live/matches/live")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	status, envelope := getEnvelope(t, server.URL+"/v1/live/matches/ancient")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad state, got %d", status)
	}
	if envelope.Error == nil || envelope.Error.Errors[0].Reason != "invalidInput" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}

	status, _ = getEnvelope(t, server.URL+"/v1/live/rankings/batsmen?format=odi")
	if status != http.StatusOK {
		t.Fatalf("expected 200 for rankings, got %d", status)
	}

	status, _ = getEnvelope(t, server.URL+"/v1/live/rankings/keepers")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad rankings category, got %d", status)
	}
}

func TestHandler_Queries(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{})

	status, envelope := getEnvelope(t, server.URL+"/v1/queries")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	catalog, ok := envelope.Data.([]any)
	if !ok || len(catalog) != 26 {
		t.Fatalf("expected 26 catalog entries, got %T len %d", envelope.Data, len(catalog))
	}

	status, _ = doJSON(t, http.MethodPost, server.URL+"/v1/queries/top-run-scorers/run", ``)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for canned query, got %d", status)
	}

	status, _ = doJSON(t, http.MethodPost, server.URL+"/v1/queries/nope/run", ``)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown query, got %d", status)
	}

	status, _ = doJSON(t, http.MethodPost, server.URL+"/v1/queries/run", `{"sql":"DELETE FROM players"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for mutating SQL, got %d", status)
	}

	status, envelope = doJSON(t, http.MethodPost, server.URL+"/v1/queries/run", `{"sql":"SELECT COUNT(*) AS n FROM players"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for custom SELECT, got %d", status)
	}
	if envelope.Data == nil {
		t.Fatalf("expected query result data")
	}
}

func TestHandler_TableCRUD(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &fakeAPI{})

	status, envelope := getEnvelope(t, server.URL+"/v1/tables")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if tables, ok := envelope.Data.([]any); !ok || len(tables) == 0 {
		t.Fatalf("expected tables, got %T", envelope.Data)
	}

	status, _ = getEnvelope(t, server.URL+"/v1/tables/droids")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown table, got %d", status)
	}

	status, _ = doJSON(t, http.MethodPost, server.URL+"/v1/tables/venues/rows", `{"venue_id":"900","name":"Galle International Stadium","city":"Galle","capacity":35000}`)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	status, _ = doJSON(t, http.MethodPut, server.URL+"/v1/tables/venues/rows/900", `{"country":"Sri Lanka"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for update, got %d", status)
	}

	status, _ = doJSON(t, http.MethodDelete, server.URL+"/v1/tables/venues/rows/900", ``)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", status)
	}

	status, _ = doJSON(t, http.MethodDelete, server.URL+"/v1/tables/venues/rows/900", ``)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", status)
	}
}
