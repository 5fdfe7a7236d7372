package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/trophycast/predictor-api/internal/domain/prediction"
	"github.com/trophycast/predictor-api/internal/usecase"
)

func (h *Handler) GetMyPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, exists, err := h.predictionService.Get(ctx, principal.UserID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prediction failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(ctx, item))
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitPredictionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.Submit(ctx, usecase.SubmitPredictionInput{
		UserID:  principal.UserID,
		MatchID: matchID,
		Winner:  req.Winner,
		MOTMID:  req.MOTMID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit prediction failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(ctx, item))
}

func (h *Handler) SaveScorePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveScorePrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveScoreRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.SaveScore(ctx, usecase.SaveScoreInput{
		UserID:     principal.UserID,
		MatchID:    matchID,
		Team1Score: req.Team1Score,
		Team2Score: req.Team2Score,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save score prediction failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(ctx, item))
}

type submitPredictionRequest struct {
	Winner string `json:"winner" validate:"required"`
	MOTMID string `json:"motm_id" validate:"required"`
}

type saveScoreRequest struct {
	Team1Score int `json:"team1_score" validate:"gte=0,lte=999"`
	Team2Score int `json:"team2_score" validate:"gte=0,lte=999"`
}

type predictionDTO struct {
	MatchID        int     `json:"match_id"`
	Winner         string  `json:"winner"`
	MOTM           motmDTO `json:"motm"`
	Team1Score     *int    `json:"team1_score,omitempty"`
	Team2Score     *int    `json:"team2_score,omitempty"`
	AwardedPoints  *int    `json:"awarded_points,omitempty"`
	SubmittedAtUTC string  `json:"submitted_at_utc"`
}

type motmDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func predictionToDTO(ctx context.Context, item prediction.Prediction) predictionDTO {
	ctx, span := startSpan(ctx, "httpapi.predictionToDTO")
	defer span.End()

	return predictionDTO{
		MatchID:        item.MatchID,
		Winner:         item.Winner,
		MOTM:           motmDTO{ID: item.MOTM.ID, Label: item.MOTM.Label},
		Team1Score:     item.Team1Score,
		Team2Score:     item.Team2Score,
		AwardedPoints:  item.AwardedPoints,
		SubmittedAtUTC: item.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
