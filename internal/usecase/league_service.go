package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/league"
	"github.com/trophycast/predictor-api/internal/domain/user"
	idgen "github.com/trophycast/predictor-api/internal/platform/id"
)

const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codeGenerationAttempts bounds the generate-check retry loop on code
// collision.
const codeGenerationAttempts = 5

type CreateLeagueInput struct {
	UserID string
	Name   string
}

type JoinLeagueInput struct {
	UserID string
	Code   string
}

// LeagueMember is one row of a league member listing, in join order.
type LeagueMember struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	TeamName string `json:"team_name"`
	Country  string `json:"country"`
	Points   int    `json:"points"`
}

type LeagueService struct {
	leagueRepo league.Repository
	userRepo   user.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, userRepo user.Repository, idGen idgen.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Create makes a private league with the caller as its first member and a
// fresh join code. Generated codes are checked against existing leagues and
// regenerated on collision.
func (s *LeagueService) Create(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.UserID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	creator, exists, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return league.League{}, fmt.Errorf("get creator for league create: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: user=%s", ErrNotFound, input.UserID)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	code, err := s.generateUnusedCode(ctx)
	if err != nil {
		return league.League{}, err
	}

	l := league.League{
		ID:              leagueID,
		Name:            input.Name,
		Code:            code,
		CreatorID:       creator.ID,
		CreatorTeamName: creator.TeamName,
		CreatorCountry:  creator.Country,
		Members:         []string{creator.ID},
		CreatedAt:       s.now().UTC(),
	}
	if err := s.leagueRepo.Create(ctx, l); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	if err := s.userRepo.AppendLeagueCode(ctx, creator.ID, code); err != nil {
		return league.League{}, fmt.Errorf("append league code to creator: %w", err)
	}
	return l, nil
}

// Join adds the caller to the league behind the given code. Joining a league
// the caller is already in is a no-op, not an error.
func (s *LeagueService) Join(ctx context.Context, input JoinLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Join")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.UserID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(input.Code) != league.CodeLength {
		return league.League{}, fmt.Errorf("%w: join code must be %d characters", ErrInvalidInput, league.CodeLength)
	}

	l, exists, err := s.leagueRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.Code)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return league.League{}, fmt.Errorf("get user for league join: %w", err)
	} else if !exists {
		return league.League{}, fmt.Errorf("%w: user=%s", ErrNotFound, input.UserID)
	}

	if err := s.leagueRepo.AppendMember(ctx, l.ID, input.UserID); err != nil {
		return league.League{}, fmt.Errorf("append league member: %w", err)
	}
	if err := s.userRepo.AppendLeagueCode(ctx, input.UserID, l.Code); err != nil {
		return league.League{}, fmt.Errorf("append league code to user: %w", err)
	}

	if !l.IsMember(input.UserID) {
		l.Members = append(l.Members, input.UserID)
	}
	return l, nil
}

// ListMine returns every private league the user belongs to.
func (s *LeagueService) ListMine(ctx context.Context, userID string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMine")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by member: %w", err)
	}
	return leagues, nil
}

// Members returns the league's member profiles in join order. Only members
// may look inside a league.
func (s *LeagueService) Members(ctx context.Context, callerID, code string) ([]LeagueMember, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Members")
	defer span.End()

	callerID = strings.TrimSpace(callerID)
	code = strings.ToUpper(strings.TrimSpace(code))
	if callerID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if code == "" {
		return nil, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get league by code: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, code)
	}
	if !l.IsMember(callerID) {
		return nil, fmt.Errorf("%w: only members can view league %s", ErrUnauthorized, code)
	}

	users, err := s.userRepo.ListByIDs(ctx, l.Members)
	if err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	members := make([]LeagueMember, 0, len(l.Members))
	for _, id := range l.Members {
		u, ok := byID[id]
		if !ok {
			continue
		}
		members = append(members, LeagueMember{
			UserID:   u.ID,
			Name:     u.Name,
			TeamName: u.TeamName,
			Country:  u.Country,
			Points:   u.Points,
		})
	}
	return members, nil
}

func (s *LeagueService) generateUnusedCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := generateJoinCode(league.CodeLength)
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		_, exists, err := s.leagueRepo.GetByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check join code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate an unused join code", ErrDependencyUnavailable)
}

func generateJoinCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes for join code: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(out), nil
}
