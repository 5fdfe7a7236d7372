package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/trophycast/predictor-api/internal/usecase"
)

func (h *Handler) DeclareMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeclareMatchResult")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req declareResultRequest
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

	result, err := h.scoringService.ScoreMatch(ctx, usecase.ScoreMatchInput{
		MatchID:    matchID,
		Winner:     req.Winner,
		MOTMID:     req.MOTMID,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "score match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if result.FailedCount > 0 {
		// 207 tells the operator some awards did not land and the pass
		// should be re-run once the cause clears.
		status = http.StatusMultiStatus
	}

	writeSuccess(ctx, w, status, result)
}

type declareResultRequest struct {
	Winner     string `json:"winner" validate:"required"`
	MOTMID     string `json:"motm_id" validate:"required"`
	MaxWorkers int    `json:"max_workers" validate:"gte=0,lte=64"`
}
