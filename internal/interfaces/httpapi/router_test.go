package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/livefeed"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type testServer struct {
	router   http.Handler
	store    *memory.Store
	sessions *usecase.SessionService
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	st := memory.NewStore()
	if err := st.Seed(context.Background(), memory.SeedRoster()); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
	repos := st.Repositories()
	feed := livefeed.NewBroker(livefeed.DefaultBuffer)

	sessions := usecase.NewSessionService(st, repos, feed, 5)
	handler := NewHandler(Services{
		Players:      usecase.NewPlayerService(repos.Players),
		Matches:      usecase.NewMatchService(repos.Matches, repos.Events),
		Formations:   usecase.NewFormationService(st, repos.Formations, repos.Matches),
		Sessions:     sessions,
		Convocations: usecase.NewConvocationService(st, repos.Convocations),
		Attendances:  usecase.NewAttendanceService(st, repos.Attendances),
		Stats:        usecase.NewStatsService(repos, 2),
		Admin:        usecase.NewAdminService(st),
	}, feed, logging.NewNop())

	return testServer{
		router:   NewRouter(handler, logging.NewNop(), false, []string{"*"}),
		store:    st,
		sessions: sessions,
	}
}

func (ts testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return envelope.Data
}

func errorStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error struct {
			Status string `json:"status"`
		} `json:"error"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal error body %q: %v", rec.Body.String(), err)
	}
	return envelope.Error.Status
}

// setupMatch creates a match and lines up the first eleven roster players.
func (ts testServer) setupMatch(t *testing.T) (matchID int64, players []playerDTO) {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/matches", `{"opponent":"Virtus","matchDate":"2026-03-01","isHome":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create match: %d %s", rec.Code, rec.Body.String())
	}
	created := decodeData[matchDTO](t, rec)
	if created.Phase != "NOT_STARTED" {
		t.Fatalf("unexpected phase %q", created.Phase)
	}

	players = decodeData[[]playerDTO](t, ts.do(t, http.MethodGet, "/players", ""))
	if len(players) < 16 {
		t.Fatalf("expected seeded roster, got %d players", len(players))
	}

	var body bytes.Buffer
	body.WriteString(`{"matchId":` + strconv.FormatInt(created.ID, 10) + `,"formations":[`)
	for i, p := range players[:16] {
		if i > 0 {
			body.WriteByte(',')
		}
		status := "BENCH"
		if i < 11 {
			status = "STARTER"
		}
		body.WriteString(`{"playerId":` + strconv.FormatInt(p.ID, 10) + `,"status":"` + status + `"}`)
	}
	body.WriteString(`]}`)

	rec = ts.do(t, http.MethodPost, "/formations", body.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("save formation: %d %s", rec.Code, rec.Body.String())
	}
	return created.ID, players
}

func TestRouter_PlayerCRUD(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/players", `{"name":"Nuovo Acquisto","shirtNumber":30,"position":"MID"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player: %d %s", rec.Code, rec.Body.String())
	}
	created := decodeData[playerDTO](t, rec)
	if created.ConvocationStatus != "Disponibile" {
		t.Fatalf("expected default convocation status, got %q", created.ConvocationStatus)
	}

	path := "/players/" + strconv.FormatInt(created.ID, 10)
	rec = ts.do(t, http.MethodPatch, path, `{"convocationStatus":"Infortunato","isConvocato":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update player: %d %s", rec.Code, rec.Body.String())
	}
	updated := decodeData[playerDTO](t, rec)
	if updated.IsConvocato {
		t.Fatalf("injured player must not stay convocato")
	}

	if rec := ts.do(t, http.MethodDelete, path, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete player: %d %s", rec.Code, rec.Body.String())
	}
	rec = ts.do(t, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	if got := errorStatus(t, rec); got != "NOT_FOUND" {
		t.Fatalf("unexpected error status %q", got)
	}
}

func TestRouter_RejectsMalformedRequests(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "formation without match", method: http.MethodPost, path: "/formations", body: `{"formations":[{"playerId":1,"status":"STARTER"}]}`},
		{name: "formation without entries", method: http.MethodPost, path: "/formations", body: `{"matchId":1,"formations":[]}`},
		{name: "formation entry without status", method: http.MethodPost, path: "/formations", body: `{"matchId":1,"formations":[{"playerId":1}]}`},
		{name: "unknown field", method: http.MethodPost, path: "/players", body: `{"name":"X","position":"MID","nickname":"x"}`},
		{name: "bad id", method: http.MethodGet, path: "/matches/abc", body: ""},
		{name: "bad date", method: http.MethodPost, path: "/attendances", body: `{"date":"03/02/2026","attendances":[{"playerId":1,"status":"Present"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_LiveMatchFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	matchID, players := ts.setupMatch(t)
	base := "/matches/" + strconv.FormatInt(matchID, 10)

	if rec := ts.do(t, http.MethodPost, base+"/halftime", ""); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for half time before kickoff, got %d", rec.Code)
	}

	if rec := ts.do(t, http.MethodPost, base+"/start", ""); rec.Code != http.StatusOK {
		t.Fatalf("start: %d %s", rec.Code, rec.Body.String())
	}

	scorer := strconv.FormatInt(players[9].ID, 10)
	rec := ts.do(t, http.MethodPost, base+"/events", `{"eventType":"GOAL","playerId":`+scorer+`,"minute":12,"half":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("append goal: %d %s", rec.Code, rec.Body.String())
	}

	bench := strconv.FormatInt(players[12].ID, 10)
	rec = ts.do(t, http.MethodPost, base+"/events", `{"eventType":"GOAL","playerId":`+bench+`,"minute":20,"half":1}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a goal from the bench, got %d %s", rec.Code, rec.Body.String())
	}

	for _, step := range []string{"/halftime", "/second-half"} {
		if rec := ts.do(t, http.MethodPost, base+step, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s: %d %s", step, rec.Code, rec.Body.String())
		}
	}

	out := strconv.FormatInt(players[9].ID, 10)
	rec = ts.do(t, http.MethodPost, base+"/events", `{"eventType":"SUBSTITUTION","playerId":`+out+`,"secondPlayerId":`+bench+`,"minute":15,"half":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("append substitution: %d %s", rec.Code, rec.Body.String())
	}

	live := decodeData[liveStateDTO](t, ts.do(t, http.MethodGet, base+"/live", ""))
	if live.Phase != "SECOND_HALF" || live.GoalsFor != 1 || live.SubstitutionsUsed != 1 || live.SubstitutionsLeft != 4 {
		t.Fatalf("unexpected live state: %+v", live)
	}

	rec = ts.do(t, http.MethodPost, base+"/end", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("end match: %d %s", rec.Code, rec.Body.String())
	}
	ended := decodeData[matchDTO](t, rec)
	if ended.Phase != "FINISHED" || ended.Result != "W" || ended.FinalizedAt == nil {
		t.Fatalf("unexpected ended match: %+v", ended)
	}

	formations := decodeData[[]formationDTO](t, ts.do(t, http.MethodGet, "/formations/"+strconv.FormatInt(matchID, 10), ""))
	minutesByPlayer := make(map[int64]int, len(formations))
	for _, f := range formations {
		if f.MinutesPlayed != nil {
			minutesByPlayer[f.PlayerID] = *f.MinutesPlayed
		}
	}
	if minutesByPlayer[players[9].ID] != 60 || minutesByPlayer[players[12].ID] != 30 || minutesByPlayer[players[0].ID] != 90 {
		t.Fatalf("unexpected minutes: %+v", minutesByPlayer)
	}

	record := decodeData[teamRecordDTO](t, ts.do(t, http.MethodGet, "/stats/team", ""))
	if record.Played != 1 || record.Wins != 1 || record.GoalsFor != 1 {
		t.Fatalf("unexpected team record: %+v", record)
	}

	report := decodeData[matchReportDTO](t, ts.do(t, http.MethodGet, "/stats/matches/"+strconv.FormatInt(matchID, 10), ""))
	if len(report.Goals) != 1 || len(report.Substitutions) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRouter_PurgeEventsEmptiesTimeline(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	matchID, players := ts.setupMatch(t)
	base := "/matches/" + strconv.FormatInt(matchID, 10)

	scorer := strconv.FormatInt(players[9].ID, 10)
	for _, body := range []string{
		`{"eventType":"NOTE","description":"kick-off delayed","minute":0,"half":1}`,
		`{"eventType":"GOAL","playerId":` + scorer + `,"minute":5,"half":1}`,
	} {
		if rec := ts.do(t, http.MethodPost, base+"/events", body); rec.Code != http.StatusCreated {
			t.Fatalf("append event: %d %s", rec.Code, rec.Body.String())
		}
	}
	if items := decodeData[[]eventDTO](t, ts.do(t, http.MethodGet, base+"/events", "")); len(items) != 2 {
		t.Fatalf("expected 2 events before purge, got %d", len(items))
	}

	rec := ts.do(t, http.MethodDelete, base+"/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("purge events: %d %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[map[string]int](t, rec); got["deleted"] != 2 {
		t.Fatalf("unexpected purge result: %+v", got)
	}

	rec = ts.do(t, http.MethodGet, base+"/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list events: %d %s", rec.Code, rec.Body.String())
	}
	if items := decodeData[[]eventDTO](t, rec); len(items) != 0 {
		t.Fatalf("expected empty timeline after purge, got %+v", items)
	}

	if rec := ts.do(t, http.MethodDelete, "/matches/999999/events", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 purging an unknown match, got %d", rec.Code)
	}
}

func TestRouter_CompleteDeletion(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	matchID, _ := ts.setupMatch(t)
	id := strconv.FormatInt(matchID, 10)

	rec := ts.do(t, http.MethodDelete, "/admin/matches/"+id+"/complete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete deletion: %d %s", rec.Code, rec.Body.String())
	}
	if rec := ts.do(t, http.MethodGet, "/matches/"+id, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected match to be gone, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodDelete, "/admin/matches/"+id+"/complete", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second deletion, got %d", rec.Code)
	}
}

func TestRouter_LiveFeedWebsocket(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	matchID, _ := ts.setupMatch(t)
	base := "/matches/" + strconv.FormatInt(matchID, 10)

	if rec := ts.do(t, http.MethodPost, base+"/start", ""); rec.Code != http.StatusOK {
		t.Fatalf("start: %d %s", rec.Code, rec.Body.String())
	}

	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + base + "/live/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial live feed: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first struct {
		Kind string `json:"kind"`
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read state frame: %v", err)
	}
	if err := sonic.Unmarshal(raw, &first); err != nil || first.Kind != "state" {
		t.Fatalf("unexpected first frame %s: %v", raw, err)
	}

	if _, err := ts.sessions.BreakHalf(context.Background(), matchID); err != nil {
		t.Fatalf("half time: %v", err)
	}

	var update struct {
		Kind string   `json:"kind"`
		Data matchDTO `json:"data"`
	}
	_, raw, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read update frame: %v", err)
	}
	if err := sonic.Unmarshal(raw, &update); err != nil {
		t.Fatalf("unmarshal update: %v", err)
	}
	if update.Kind != livefeed.KindPhase || update.Data.Phase != "HALF_TIME" {
		t.Fatalf("unexpected update: %+v", update)
	}
}
