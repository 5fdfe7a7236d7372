package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/trophycast/predictor-api/internal/domain/league"
	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/platform/cache"
	"github.com/trophycast/predictor-api/internal/platform/resilience"
)

const leaderboardCachePrefix = "leaderboard:"

// Scope selects which population a ranking is computed over.
type Scope struct {
	// Kind is one of "global", "country" or "league".
	Kind string
	// Key is the country name or league code; empty for global.
	Key string
}

func GlobalScope() Scope { return Scope{Kind: "global"} }

func CountryScope(country string) Scope { return Scope{Kind: "country", Key: country} }

func LeagueScope(code string) Scope { return Scope{Kind: "league", Key: code} }

func (s Scope) cacheKey() string {
	return leaderboardCachePrefix + s.Kind + ":" + s.Key
}

// Standing is one row of a ranked leaderboard.
type Standing struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	TeamName string `json:"team_name"`
	Country  string `json:"country"`
	Points   int    `json:"points"`
}

type LeaderboardService struct {
	userRepo   user.Repository
	leagueRepo league.Repository
	store      *cache.Store
	flight     resilience.SingleFlight
}

func NewLeaderboardService(userRepo user.Repository, leagueRepo league.Repository, store *cache.Store) *LeaderboardService {
	return &LeaderboardService{
		userRepo:   userRepo,
		leagueRepo: leagueRepo,
		store:      store,
	}
}

// FullRanking returns every user in the scope, ordered by points descending.
// Ties break on user id ascending so the order is stable across reads.
func (s *LeaderboardService) FullRanking(ctx context.Context, scope Scope) ([]Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.FullRanking")
	defer span.End()

	if err := validateScope(scope); err != nil {
		return nil, err
	}

	key := scope.cacheKey()
	if s.store != nil {
		if v, ok := s.store.Get(ctx, key); ok {
			if standings, ok := v.([]Standing); ok {
				return append([]Standing(nil), standings...), nil
			}
		}
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		standings, err := s.computeRanking(ctx, scope)
		if err != nil {
			return nil, err
		}
		if s.store != nil {
			s.store.Set(ctx, key, standings)
		}
		return standings, nil
	})
	if err != nil {
		return nil, err
	}

	standings, _ := v.([]Standing)
	return append([]Standing(nil), standings...), nil
}

// TopN returns the first n rows of the scope's ranking.
func (s *LeaderboardService) TopN(ctx context.Context, scope Scope, n int) ([]Standing, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidInput)
	}
	standings, err := s.FullRanking(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(standings) > n {
		standings = standings[:n]
	}
	return standings, nil
}

// RankOf returns the user's row within the scope, or false when the user is
// not part of the scope's population.
func (s *LeaderboardService) RankOf(ctx context.Context, scope Scope, userID string) (Standing, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Standing{}, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	standings, err := s.FullRanking(ctx, scope)
	if err != nil {
		return Standing{}, false, err
	}
	for _, row := range standings {
		if row.UserID == userID {
			return row, true, nil
		}
	}
	return Standing{}, false, nil
}

// Invalidate drops every cached ranking. Called after a scoring pass.
func (s *LeaderboardService) Invalidate() {
	if s.store == nil {
		return
	}
	s.store.DeletePrefix(context.Background(), leaderboardCachePrefix)
}

func (s *LeaderboardService) computeRanking(ctx context.Context, scope Scope) ([]Standing, error) {
	var (
		users []user.User
		err   error
	)
	switch scope.Kind {
	case "global":
		users, err = s.userRepo.ListAll(ctx)
	case "country":
		users, err = s.userRepo.ListByCountry(ctx, scope.Key)
	case "league":
		users, err = s.leagueUsers(ctx, scope.Key)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].ID < users[j].ID
	})

	standings := make([]Standing, 0, len(users))
	for i, u := range users {
		standings = append(standings, Standing{
			Rank:     i + 1,
			UserID:   u.ID,
			Name:     u.Name,
			TeamName: u.TeamName,
			Country:  u.Country,
			Points:   u.Points,
		})
	}
	return standings, nil
}

func (s *LeaderboardService) leagueUsers(ctx context.Context, code string) ([]user.User, error) {
	l, exists, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, code)
	}
	users, err := s.userRepo.ListByIDs(ctx, l.Members)
	if err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}
	return users, nil
}

func validateScope(scope Scope) error {
	switch scope.Kind {
	case "global":
		return nil
	case "country":
		if strings.TrimSpace(scope.Key) == "" {
			return fmt.Errorf("%w: country is required", ErrInvalidInput)
		}
	case "league":
		if strings.TrimSpace(scope.Key) == "" {
			return fmt.Errorf("%w: league code is required", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown leaderboard scope %q", ErrInvalidInput, scope.Kind)
	}
	return nil
}
