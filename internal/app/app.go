package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/trophycast/predictor-api/internal/config"
	"github.com/trophycast/predictor-api/internal/domain/league"
	"github.com/trophycast/predictor-api/internal/domain/prediction"
	"github.com/trophycast/predictor-api/internal/domain/result"
	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/infrastructure/account/janus"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/memory"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/postgres"
	"github.com/trophycast/predictor-api/internal/interfaces/httpapi"
	"github.com/trophycast/predictor-api/internal/platform/cache"
	idgen "github.com/trophycast/predictor-api/internal/platform/id"
	"github.com/trophycast/predictor-api/internal/platform/logging"
	"github.com/trophycast/predictor-api/internal/platform/resilience"
	"github.com/trophycast/predictor-api/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	users       user.Repository
	predictions prediction.Repository
	leagues     league.Repository
	results     result.Repository
	close       func() error
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger, httpLogger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if httpLogger == nil {
		httpLogger = slog.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	// The tournament schedule and squads are static seed data regardless
	// of the persistence backend.
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), memory.SeedSquads())

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	matchService := usecase.NewMatchService(matchRepo)
	predictionService := usecase.NewPredictionService(matchRepo, repos.predictions)
	leaderboardService := usecase.NewLeaderboardService(repos.users, repos.leagues, store)
	scoringService := usecase.NewScoringService(
		predictionService,
		repos.predictions,
		repos.users,
		repos.results,
		leaderboardService,
		cfg.ScoringMaxWorkers,
		logger,
	)
	leagueService := usecase.NewLeagueService(repos.leagues, repos.users, idgen.NewRandomGenerator())
	profileService := usecase.NewProfileService(repos.users)

	janusClient := janus.NewClient(janus.ClientConfig{
		BaseURL:        cfg.JanusBaseURL,
		IntrospectPath: cfg.JanusIntrospectPath,
		Timeout:        cfg.JanusTimeout,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.JanusCircuitEnabled,
			FailureThreshold: cfg.JanusCircuitFailureCount,
			OpenTimeout:      cfg.JanusCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.JanusCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		matchService,
		predictionService,
		scoringService,
		leaderboardService,
		leagueService,
		profileService,
		httpLogger,
	)
	router := httpapi.NewRouter(handler, janusClient, httpLogger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if repos.close != nil {
		server.RegisterOnShutdown(func() {
			if err := repos.close(); err != nil {
				logger.Warn("close repositories", "error", err)
			}
		})
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("persistence backend", "kind", "memory")
		return repositories{
			users:       memory.NewUserRepository(),
			predictions: memory.NewPredictionRepository(),
			leagues:     memory.NewLeagueRepository(),
			results:     memory.NewResultRepository(),
		}, nil
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(dbURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("persistence backend", "kind", "postgres", "db", dbNameFromURL(dbURL))

	return repositories{
		users:       postgres.NewUserRepository(db),
		predictions: postgres.NewPredictionRepository(db),
		leagues:     postgres.NewLeagueRepository(db),
		results:     postgres.NewResultRepository(db),
		close:       db.Close,
	}, nil
}
