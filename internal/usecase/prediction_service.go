package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/match"
	"github.com/trophycast/predictor-api/internal/domain/prediction"
)

// scoreLockLead closes the score-pair variant this long before kickoff.
const scoreLockLead = 60 * time.Minute

type SubmitPredictionInput struct {
	UserID  string
	MatchID int
	Winner  string
	MOTMID  string
}

type SaveScoreInput struct {
	UserID     string
	MatchID    int
	Team1Score int
	Team2Score int
}

// Popularity is the split of submitted winner picks for one match.
type Popularity struct {
	Team1Percent int
	Team2Percent int
	Total        int
}

type PredictionService struct {
	matchRepo match.Repository
	predRepo  prediction.Repository
	now       func() time.Time
}

func NewPredictionService(matchRepo match.Repository, predRepo prediction.Repository) *PredictionService {
	return &PredictionService{
		matchRepo: matchRepo,
		predRepo:  predRepo,
		now:       time.Now,
	}
}

// Get loads an existing prediction so callers can render the locked state.
func (s *PredictionService) Get(ctx context.Context, userID string, matchID int) (prediction.Prediction, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return prediction.Prediction{}, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if matchID <= 0 {
		return prediction.Prediction{}, false, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	p, exists, err := s.predRepo.Get(ctx, userID, matchID)
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}
	return p, exists, nil
}

// Window derives the submission window for a match.
func (s *PredictionService) Window(ctx context.Context, matchID int) (match.Window, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Window")
	defer span.End()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return match.Window{}, err
	}

	window, ok := match.PredictionWindow(m.StartTime)
	if !ok {
		return match.Window{}, fmt.Errorf("%w: match %d has no start time", ErrInvalidSchedule, matchID)
	}
	return window, nil
}

// Submit validates and locks a full prediction. The window is re-checked
// here, not only at flow entry, so a window expiring mid-flow is caught.
// A successful write is terminal: the store refuses a second document for
// the same (user, match) key.
func (s *PredictionService) Submit(ctx context.Context, input SubmitPredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Submit")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Winner = strings.TrimSpace(input.Winner)
	input.MOTMID = strings.TrimSpace(input.MOTMID)
	if input.UserID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Winner == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: winner is required", ErrInvalidInput)
	}
	if input.MOTMID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: man of the match is required", ErrInvalidInput)
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, err
	}
	if !m.HasTeam(input.Winner) {
		return prediction.Prediction{}, fmt.Errorf("%w: %q is not playing in match %d", ErrInvalidInput, input.Winner, m.ID)
	}

	window, ok := match.PredictionWindow(m.StartTime)
	if !ok {
		return prediction.Prediction{}, fmt.Errorf("%w: match %d has no start time", ErrInvalidSchedule, m.ID)
	}
	now := s.now().UTC()
	if !window.Open(now) {
		return prediction.Prediction{}, fmt.Errorf(
			"%w: predictions for match %d are accepted between %s and %s",
			ErrWindowClosed, m.ID,
			window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339),
		)
	}

	motm, err := s.resolveMOTM(ctx, m, input.MOTMID)
	if err != nil {
		return prediction.Prediction{}, err
	}

	p := prediction.Prediction{
		UserID:      input.UserID,
		MatchID:     m.ID,
		Winner:      input.Winner,
		MOTM:        motm,
		MatchDate:   m.StartTime,
		SubmittedAt: now,
	}
	if err := s.predRepo.Create(ctx, p); err != nil {
		if errors.Is(err, prediction.ErrAlreadyExists) {
			return prediction.Prediction{}, fmt.Errorf("%w: match %d already has a locked prediction", ErrPredictionLocked, m.ID)
		}
		return prediction.Prediction{}, fmt.Errorf("save prediction: %w", err)
	}

	return p, nil
}

// SaveScore records the optional score-pair prediction. Existing winner and
// MOTM fields on the document are preserved.
func (s *PredictionService) SaveScore(ctx context.Context, input SaveScoreInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.SaveScore")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Team1Score < 0 || input.Team2Score < 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}

	m, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, err
	}
	if m.StartTime.IsZero() {
		return prediction.Prediction{}, fmt.Errorf("%w: match %d has no start time", ErrInvalidSchedule, m.ID)
	}

	now := s.now().UTC()
	if !now.Add(scoreLockLead).Before(m.StartTime) {
		return prediction.Prediction{}, fmt.Errorf(
			"%w: score predictions close %s before kickoff", ErrWindowClosed, scoreLockLead)
	}

	existing, exists, err := s.predRepo.Get(ctx, input.UserID, m.ID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction for score save: %w", err)
	}
	if exists && existing.Scored() {
		return prediction.Prediction{}, fmt.Errorf("%w: match %d has already been scored", ErrPredictionLocked, m.ID)
	}

	p := existing
	p.UserID = input.UserID
	p.MatchID = m.ID
	t1, t2 := input.Team1Score, input.Team2Score
	p.Team1Score = &t1
	p.Team2Score = &t2
	p.MatchDate = m.StartTime
	p.SubmittedAt = now

	if err := s.predRepo.Upsert(ctx, p); err != nil {
		return prediction.Prediction{}, fmt.Errorf("save score prediction: %w", err)
	}
	return p, nil
}

// Popularity aggregates the winner split over all predictions for a match.
func (s *PredictionService) Popularity(ctx context.Context, matchID int) (Popularity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Popularity")
	defer span.End()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return Popularity{}, err
	}

	preds, err := s.predRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return Popularity{}, fmt.Errorf("list predictions for popularity: %w", err)
	}

	team1, team2 := 0, 0
	for _, p := range preds {
		switch p.Winner {
		case m.Team1.Name:
			team1++
		case m.Team2.Name:
			team2++
		}
	}

	total := team1 + team2
	if total == 0 {
		return Popularity{}, nil
	}
	return Popularity{
		Team1Percent: int(math.Round(float64(team1) / float64(total) * 100)),
		Team2Percent: int(math.Round(float64(team2) / float64(total) * 100)),
		Total:        total,
	}, nil
}

func (s *PredictionService) loadMatch(ctx context.Context, matchID int) (match.Match, error) {
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

func (s *PredictionService) resolveMOTM(ctx context.Context, m match.Match, motmID string) (prediction.MOTM, error) {
	for _, teamName := range []string{m.Team1.Name, m.Team2.Name} {
		squad, err := s.matchRepo.SquadByTeam(ctx, teamName)
		if err != nil {
			return prediction.MOTM{}, fmt.Errorf("load squad for %s: %w", teamName, err)
		}
		for _, player := range squad {
			if player.ID == motmID {
				return prediction.MOTM{ID: player.ID, Label: player.Name}, nil
			}
		}
	}
	return prediction.MOTM{}, fmt.Errorf("%w: player %q is not in either squad for match %d", ErrInvalidInput, motmID, m.ID)
}
