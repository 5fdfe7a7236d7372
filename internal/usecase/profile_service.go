package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/user"
)

type RegisterInput struct {
	UserID   string
	Name     string
	Email    string
	TeamName string
	Country  string
}

type ProfileService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewProfileService(userRepo user.Repository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Register creates the user's profile. Every new user is implicitly entered
// into the overall leaderboard and their country leaderboard.
func (s *ProfileService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Register")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.Country = strings.TrimSpace(input.Country)
	if input.UserID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return user.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return user.User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.TeamName == "" {
		return user.User{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.Country == "" {
		return user.User{}, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}

	if existing, exists, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return user.User{}, fmt.Errorf("check existing profile: %w", err)
	} else if exists {
		return existing, nil
	}

	now := s.now().UTC()
	u := user.User{
		ID:        input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		TeamName:  input.TeamName,
		Country:   input.Country,
		Points:    0,
		Leagues:   []string{user.ScopeOverall, input.Country},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("create profile: %w", err)
	}
	return u, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get profile: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return u, nil
}

// MarkWelcomeSeen records that the first-visit welcome has been shown, so
// the client never shows it again.
func (s *ProfileService) MarkWelcomeSeen(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.MarkWelcomeSeen")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if err := s.userRepo.MarkWelcomeSeen(ctx, userID); err != nil {
		return fmt.Errorf("mark welcome seen: %w", err)
	}
	return nil
}
