package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trophycast/predictor-api/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// Schedule returns the full tournament fixture list in matchday order.
func (s *MatchService) Schedule(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return m, nil
}

// Squad returns the named team's tournament roster.
func (s *MatchService) Squad(ctx context.Context, teamName string) ([]match.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Squad")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	squad, err := s.matchRepo.SquadByTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("load squad: %w", err)
	}
	if len(squad) == 0 {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamName)
	}
	return squad, nil
}
