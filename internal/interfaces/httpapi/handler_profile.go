package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/usecase"
)

func (h *Handler) RegisterProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req registerProfileRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	// The token carries the email; the payload may repeat it but not
	// register a different one.
	if strings.TrimSpace(req.Email) == "" {
		req.Email = principal.Email
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if principal.Email != "" && !strings.EqualFold(strings.TrimSpace(req.Email), principal.Email) {
		writeError(ctx, w, fmt.Errorf("%w: email does not match the authenticated identity", usecase.ErrInvalidInput))
		return
	}

	item, err := h.profileService.Register(ctx, usecase.RegisterInput{
		UserID:   principal.UserID,
		Name:     req.Name,
		Email:    req.Email,
		TeamName: req.TeamName,
		Country:  req.Country,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, profileToDTO(ctx, item))
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	item, err := h.profileService.Get(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, item))
}

func (h *Handler) MarkWelcomeSeen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkWelcomeSeen")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if err := h.profileService.MarkWelcomeSeen(ctx, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "mark welcome seen failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"welcome_seen": true})
}

type registerProfileRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	TeamName string `json:"team_name" validate:"required,max=100"`
	Country  string `json:"country" validate:"required,max=60"`
}

type profileDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	TeamName     string   `json:"team_name"`
	Country      string   `json:"country"`
	Points       int      `json:"points"`
	Leagues      []string `json:"leagues"`
	WelcomeSeen  bool     `json:"welcome_seen"`
	CreatedAtUTC string   `json:"created_at_utc"`
	UpdatedAtUTC string   `json:"updated_at_utc"`
}

func profileToDTO(ctx context.Context, v user.User) profileDTO {
	ctx, span := startSpan(ctx, "httpapi.profileToDTO")
	defer span.End()

	return profileDTO{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		TeamName:     v.TeamName,
		Country:      v.Country,
		Points:       v.Points,
		Leagues:      append([]string(nil), v.Leagues...),
		WelcomeSeen:  v.WelcomeSeen,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
