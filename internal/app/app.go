package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/store"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/livefeed"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// Backend is the storage selected by DB_DRIVER.
type Backend struct {
	UnitOfWork   store.UnitOfWork
	Repositories store.Repositories
	close        func() error
}

func (b Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database handle and must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	backend, err := OpenBackend(context.Background(), cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	feed := livefeed.NewBroker(cfg.LiveFeedBuffer)
	repos := backend.Repositories
	uow := backend.UnitOfWork

	handler := httpapi.NewHandler(httpapi.Services{
		Players:      usecase.NewPlayerService(repos.Players),
		Matches:      usecase.NewMatchService(repos.Matches, repos.Events),
		Formations:   usecase.NewFormationService(uow, repos.Formations, repos.Matches),
		Sessions:     usecase.NewSessionService(uow, repos, feed, cfg.MaxSubstitutions),
		Convocations: usecase.NewConvocationService(uow, repos.Convocations),
		Attendances:  usecase.NewAttendanceService(uow, repos.Attendances),
		Stats:        usecase.NewStatsService(repos, cfg.StatsWorkers),
		Admin:        usecase.NewAdminService(uow),
	}, feed, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, backend.Close, nil
}

// OpenBackend opens the configured store, runs pending migrations and layers
// the roster cache on top when enabled.
func OpenBackend(ctx context.Context, cfg config.Config, logger *logging.Logger) (Backend, error) {
	var backend Backend

	switch cfg.DBDriver {
	case config.DriverMemory:
		st := memory.NewStore()
		if cfg.MemorySeed {
			if err := st.Seed(ctx, memory.SeedRoster()); err != nil {
				return Backend{}, fmt.Errorf("seed memory store: %w", err)
			}
		}
		backend = Backend{UnitOfWork: st, Repositories: st.Repositories()}
	default:
		db, err := openSQL(cfg)
		if err != nil {
			return Backend{}, err
		}
		dialect, err := sqlstore.DialectForDriver(db.DriverName())
		if err != nil {
			_ = db.Close()
			return Backend{}, err
		}
		st := sqlstore.New(db, dialect)
		backend = Backend{UnitOfWork: st, Repositories: st.Repositories(), close: db.Close}
	}

	logger.Info("storage ready", "driver", cfg.DBDriver, "cache_enabled", cfg.CacheEnabled)

	if !cfg.CacheEnabled {
		return backend, nil
	}

	players := cache.NewPlayerRepository(backend.Repositories.Players, basecache.NewStore(cfg.CacheTTL))
	backend.Repositories.Players = players
	backend.UnitOfWork = cache.NewUnitOfWork(backend.UnitOfWork, players)
	return backend, nil
}

func openSQL(cfg config.Config) (*sqlx.DB, error) {
	driverName, dsn, dbName := sqlSource(cfg)

	if cfg.DBAutoMigrate {
		if err := sqlstore.Migrate(driverName, dsn); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", driverName, err)
		}
	}

	db, err := otelsqlx.Open(driverName, dsn,
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// modernc serializes writers per file; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}
	return db, nil
}

func sqlSource(cfg config.Config) (driverName, dsn, dbName string) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dsn = sqlstore.SQLiteDSN(cfg.SQLitePath)
		return config.DriverSQLite, dsn, dbNameFromDSN(config.DriverSQLite, dsn)
	case config.DriverPgx:
		driverName = config.DriverPgx
	default:
		driverName = config.DriverPostgres
	}
	return driverName, normalizeDSN(driverName, cfg.DBURL, cfg.DBDisablePreparedBinary), dbNameFromDSN(driverName, cfg.DBURL)
}
