package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/match"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.Schedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, m))
}

func (h *Handler) GetPredictionWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPredictionWindow")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	window, err := h.predictionService.Window(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prediction window failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, windowDTO{
		OpensAtUTC:  window.Start.UTC().Format(time.RFC3339),
		ClosesAtUTC: window.End.UTC().Format(time.RFC3339),
		Open:        window.Open(time.Now().UTC()),
	})
}

func (h *Handler) GetMatchPopularity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchPopularity")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	popularity, err := h.predictionService.Popularity(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match popularity failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, popularityDTO{
		Team1Percent: popularity.Team1Percent,
		Team2Percent: popularity.Team2Percent,
		Total:        popularity.Total,
	})
}

func (h *Handler) GetTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquad")
	defer span.End()

	teamName := strings.TrimSpace(r.PathValue("teamName"))
	players, err := h.matchService.Squad(ctx, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "get team squad failed", "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{ID: p.ID, Name: p.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type matchDTO struct {
	ID           int      `json:"id"`
	Team1        teamDTO  `json:"team1"`
	Team2        teamDTO  `json:"team2"`
	Matchday     string   `json:"matchday"`
	StartTimeUTC string   `json:"start_time_utc"`
	Team1Form    []string `json:"team1_form"`
	Team2Form    []string `json:"team2_form"`
}

type teamDTO struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type windowDTO struct {
	OpensAtUTC  string `json:"opens_at_utc"`
	ClosesAtUTC string `json:"closes_at_utc"`
	Open        bool   `json:"open"`
}

type popularityDTO struct {
	Team1Percent int `json:"team1_percent"`
	Team2Percent int `json:"team2_percent"`
	Total        int `json:"total"`
}

type playerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func matchToDTO(ctx context.Context, m match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	return matchDTO{
		ID:           m.ID,
		Team1:        teamDTO{Name: m.Team1.Name, Logo: m.Team1.Logo},
		Team2:        teamDTO{Name: m.Team2.Name, Logo: m.Team2.Logo},
		Matchday:     m.Matchday,
		StartTimeUTC: m.StartTime.UTC().Format(time.RFC3339),
		Team1Form:    formToStrings(m.Team1Form),
		Team2Form:    formToStrings(m.Team2Form),
	}
}

func formToStrings(form []match.FormResult) []string {
	out := make([]string, 0, len(form))
	for _, f := range form {
		out = append(out, string(f))
	}
	return out
}
