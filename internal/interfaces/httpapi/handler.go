package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/trophycast/predictor-api/internal/usecase"
)

type Handler struct {
	matchService       *usecase.MatchService
	predictionService  *usecase.PredictionService
	scoringService     *usecase.ScoringService
	leaderboardService *usecase.LeaderboardService
	leagueService      *usecase.LeagueService
	profileService     *usecase.ProfileService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	scoringService *usecase.ScoringService,
	leaderboardService *usecase.LeaderboardService,
	leagueService *usecase.LeagueService,
	profileService *usecase.ProfileService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		matchService:       matchService,
		predictionService:  predictionService,
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
		leagueService:      leagueService,
		profileService:     profileService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func matchIDFromPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("matchID"))
	matchID, err := strconv.Atoi(raw)
	if err != nil || matchID <= 0 {
		return 0, fmt.Errorf("%w: match id must be a positive integer", usecase.ErrInvalidInput)
	}
	return matchID, nil
}
