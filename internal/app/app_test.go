package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:           ":0",
		DBDriver:           config.DriverMemory,
		MemorySeed:         true,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		MaxSubstitutions:   5,
		StatsWorkers:       2,
		LiveFeedBuffer:     4,
	}
}

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	}()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name"`) {
		t.Fatalf("expected seeded roster, got %s", rec.Body.String())
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	if _, _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestOpenBackend_CacheWrapsPlayers(t *testing.T) {
	backend, err := OpenBackend(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	if _, ok := backend.Repositories.Players.(*cache.PlayerRepository); !ok {
		t.Fatalf("expected cached player repository, got %T", backend.Repositories.Players)
	}
	if _, ok := backend.UnitOfWork.(*cache.UnitOfWork); !ok {
		t.Fatalf("expected cache-aware unit of work, got %T", backend.UnitOfWork)
	}
}

func TestOpenBackend_SQLiteMigrates(t *testing.T) {
	cfg := memoryConfig()
	cfg.DBDriver = config.DriverSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "matchday.db")
	cfg.DBAutoMigrate = true
	cfg.CacheEnabled = false

	ctx := context.Background()
	backend, err := OpenBackend(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	defer backend.Close()

	players, err := backend.Repositories.Players.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected empty roster, got %d", len(players))
	}
}

func TestSQLSource(t *testing.T) {
	cases := []struct {
		name       string
		cfg        config.Config
		wantDriver string
		wantDSN    string
		wantDB     string
	}{
		{
			name:       "sqlite",
			cfg:        config.Config{DBDriver: config.DriverSQLite, SQLitePath: "/srv/club/data.db"},
			wantDriver: "sqlite",
			wantDSN:    "file:/srv/club/data.db?",
			wantDB:     "data.db",
		},
		{
			name:       "pgx keeps url",
			cfg:        config.Config{DBDriver: config.DriverPgx, DBURL: "postgres://u:p@h:5432/club", DBDisablePreparedBinary: true},
			wantDriver: "pgx",
			wantDSN:    "postgres://u:p@h:5432/club",
			wantDB:     "club",
		},
		{
			name:       "lib/pq normalizes",
			cfg:        config.Config{DBDriver: config.DriverPostgres, DBURL: "postgres://u:p@h:5432/club", DBDisablePreparedBinary: true},
			wantDriver: "postgres",
			wantDSN:    "disable_prepared_binary_result=yes",
			wantDB:     "club",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			driver, dsn, dbName := sqlSource(tc.cfg)
			if driver != tc.wantDriver {
				t.Fatalf("driver: want %q, got %q", tc.wantDriver, driver)
			}
			if !strings.Contains(dsn, tc.wantDSN) {
				t.Fatalf("dsn %q does not contain %q", dsn, tc.wantDSN)
			}
			if dbName != tc.wantDB {
				t.Fatalf("db name: want %q, got %q", tc.wantDB, dbName)
			}
		})
	}
}
