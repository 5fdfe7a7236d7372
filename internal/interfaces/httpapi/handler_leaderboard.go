package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/trophycast/predictor-api/internal/usecase"
)

func (h *Handler) GetGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGlobalLeaderboard")
	defer span.End()

	h.writeRanking(ctx, w, r, usecase.GlobalScope())
}

func (h *Handler) GetCountryLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountryLeaderboard")
	defer span.End()

	country := strings.TrimSpace(r.PathValue("country"))
	h.writeRanking(ctx, w, r, usecase.CountryScope(country))
}

func (h *Handler) GetLeagueLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueLeaderboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	code := strings.TrimSpace(r.PathValue("code"))

	// League standings are visible to members only; Members enforces that.
	if _, err := h.leagueService.Members(ctx, principal.UserID, code); err != nil {
		h.logger.WarnContext(ctx, "league leaderboard access denied", "user_id", principal.UserID, "code", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeRanking(ctx, w, r, usecase.LeagueScope(strings.ToUpper(code)))
}

func (h *Handler) GetMyGlobalRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyGlobalRank")
	defer span.End()

	h.writeMyRank(ctx, w, usecase.GlobalScope())
}

func (h *Handler) GetMyCountryRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyCountryRank")
	defer span.End()

	country := strings.TrimSpace(r.PathValue("country"))
	h.writeMyRank(ctx, w, usecase.CountryScope(country))
}

func (h *Handler) GetMyLeagueRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyLeagueRank")
	defer span.End()

	code := strings.ToUpper(strings.TrimSpace(r.PathValue("code")))
	h.writeMyRank(ctx, w, usecase.LeagueScope(code))
}

func (h *Handler) writeRanking(ctx context.Context, w http.ResponseWriter, r *http.Request, scope usecase.Scope) {
	limit, err := limitFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var standings []usecase.Standing
	if limit > 0 {
		standings, err = h.leaderboardService.TopN(ctx, scope, limit)
	} else {
		standings, err = h.leaderboardService.FullRanking(ctx, scope)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard lookup failed", "scope", scope.Kind, "key", scope.Key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standings)
}

func (h *Handler) writeMyRank(ctx context.Context, w http.ResponseWriter, scope usecase.Scope) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	standing, found, err := h.leaderboardService.RankOf(ctx, scope, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "rank lookup failed", "scope", scope.Kind, "key", scope.Key, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: user is not ranked in this scope", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standing)
}

func limitFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}
