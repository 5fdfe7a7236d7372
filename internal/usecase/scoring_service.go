package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/trophycast/predictor-api/internal/domain/prediction"
	"github.com/trophycast/predictor-api/internal/domain/result"
	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/platform/logging"
)

const (
	winnerPoints = 50
	motmPoints   = 100

	defaultScoringWorkers = 8
	maxScoringWorkers     = 64
)

type ScoreMatchInput struct {
	MatchID    int
	Winner     string
	MOTMID     string
	MaxWorkers int
	// OnProgress, when set, is called after each prediction is settled.
	OnProgress func(done, total int)
}

type ScoreMatchResult struct {
	MatchID      int           `json:"match_id"`
	Total        int           `json:"total"`
	AwardedCount int           `json:"awarded_count"`
	SkippedCount int           `json:"skipped_count"`
	FailedCount  int           `json:"failed_count"`
	WorkerCount  int           `json:"worker_count"`
	Failed       []FailedAward `json:"failed,omitempty"`
}

type FailedAward struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// leaderboardInvalidator is what the scoring engine needs from the
// leaderboard side: drop every cached ranking after points move.
type leaderboardInvalidator interface {
	Invalidate()
}

type ScoringService struct {
	matchService   *PredictionService
	predRepo       prediction.Repository
	userRepo       user.Repository
	resultRepo     result.Repository
	leaderboards   leaderboardInvalidator
	defaultWorkers int
	logger         *logging.Logger
	now            func() time.Time
}

func NewScoringService(
	matchService *PredictionService,
	predRepo prediction.Repository,
	userRepo user.Repository,
	resultRepo result.Repository,
	leaderboards leaderboardInvalidator,
	defaultMaxWorkers int,
	logger *logging.Logger,
) *ScoringService {
	if defaultMaxWorkers <= 0 {
		defaultMaxWorkers = defaultScoringWorkers
	}
	if defaultMaxWorkers > maxScoringWorkers {
		defaultMaxWorkers = maxScoringWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		matchService:   matchService,
		predRepo:       predRepo,
		userRepo:       userRepo,
		resultRepo:     resultRepo,
		leaderboards:   leaderboards,
		defaultWorkers: defaultMaxWorkers,
		logger:         logger,
		now:            time.Now,
	}
}

// ScoreMatch declares the official result for a match and awards points to
// every matching prediction. Re-running a completed pass is refused, and a
// partially failed pass can be re-run safely: predictions that already carry
// an award marker are skipped, never paid twice.
func (s *ScoringService) ScoreMatch(ctx context.Context, input ScoreMatchInput) (ScoreMatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreMatch")
	defer span.End()

	input.Winner = strings.TrimSpace(input.Winner)
	input.MOTMID = strings.TrimSpace(input.MOTMID)
	if input.MatchID <= 0 {
		return ScoreMatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Winner == "" {
		return ScoreMatchResult{}, fmt.Errorf("%w: winner is required", ErrInvalidInput)
	}
	if input.MOTMID == "" {
		return ScoreMatchResult{}, fmt.Errorf("%w: man of the match is required", ErrInvalidInput)
	}

	m, err := s.matchService.loadMatch(ctx, input.MatchID)
	if err != nil {
		return ScoreMatchResult{}, err
	}
	if !m.HasTeam(input.Winner) {
		return ScoreMatchResult{}, fmt.Errorf("%w: %q is not playing in match %d", ErrInvalidInput, input.Winner, m.ID)
	}
	motm, err := s.matchService.resolveMOTM(ctx, m, input.MOTMID)
	if err != nil {
		return ScoreMatchResult{}, err
	}

	existing, declared, err := s.resultRepo.GetByMatch(ctx, m.ID)
	if err != nil {
		return ScoreMatchResult{}, fmt.Errorf("get match result: %w", err)
	}
	if declared && existing.Scored {
		return ScoreMatchResult{}, fmt.Errorf("%w: match %d", ErrAlreadyScored, m.ID)
	}

	declaredAt := existing.DeclaredAt
	if !declared {
		declaredAt = s.now().UTC()
	}
	res := result.Result{
		MatchID:    m.ID,
		Winner:     input.Winner,
		MOTM:       motm,
		DeclaredAt: declaredAt,
	}
	if err := s.resultRepo.Upsert(ctx, res); err != nil {
		return ScoreMatchResult{}, fmt.Errorf("declare match result: %w", err)
	}

	preds, err := s.predRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return ScoreMatchResult{}, fmt.Errorf("list predictions for scoring: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = s.defaultWorkers
	}
	if workerCount > maxScoringWorkers {
		workerCount = maxScoringWorkers
	}
	if workerCount > len(preds) && len(preds) > 0 {
		workerCount = len(preds)
	}

	out := ScoreMatchResult{
		MatchID:     m.ID,
		Total:       len(preds),
		WorkerCount: workerCount,
	}
	if len(preds) == 0 {
		if err := s.resultRepo.MarkScored(ctx, m.ID, s.now().UTC()); err != nil {
			return out, fmt.Errorf("mark match scored: %w", err)
		}
		return out, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ScoreMatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		awardedCount atomic.Int64
		skippedCount atomic.Int64
		failedCount  atomic.Int64
		doneCount    atomic.Int64
	)
	failures := make(chan FailedAward, len(preds))

	var workers sync.WaitGroup
	for _, p := range preds {
		if ctx.Err() != nil {
			break
		}
		p := p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			// Predictions left unprocessed by a cancelled pass are settled
			// by the next run; the result is never marked scored here.
			if ctx.Err() != nil {
				return
			}

			defer func() {
				done := int(doneCount.Add(1))
				if input.OnProgress != nil {
					input.OnProgress(done, len(preds))
				}
			}()

			if p.Scored() {
				skippedCount.Add(1)
				return
			}

			points := 0
			if p.Winner == input.Winner {
				points += winnerPoints
			}
			if p.MOTM.ID == motm.ID {
				points += motmPoints
			}

			if points > 0 {
				if err := s.userRepo.IncrementPoints(ctx, p.UserID, points); err != nil {
					failedCount.Add(1)
					failures <- FailedAward{UserID: p.UserID, Points: points, Reason: err.Error()}
					return
				}
			}
			if err := s.predRepo.RecordAward(ctx, p.UserID, p.MatchID, points); err != nil {
				// Points are already on the user; without the marker a re-run
				// would pay again, so this must surface as a failure.
				failedCount.Add(1)
				failures <- FailedAward{UserID: p.UserID, Points: points, Reason: fmt.Sprintf("record award: %v", err)}
				return
			}
			awardedCount.Add(1)
		}); err != nil {
			workers.Done()
			return ScoreMatchResult{}, fmt.Errorf("submit prediction to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	for f := range failures {
		out.Failed = append(out.Failed, f)
	}
	sort.SliceStable(out.Failed, func(i, j int) bool {
		return out.Failed[i].UserID < out.Failed[j].UserID
	})

	out.AwardedCount = int(awardedCount.Load())
	out.SkippedCount = int(skippedCount.Load())
	out.FailedCount = int(failedCount.Load())

	if s.leaderboards != nil {
		s.leaderboards.Invalidate()
	}

	if cause := ctx.Err(); cause != nil {
		s.logger.WarnContext(ctx, "scoring pass abandoned",
			"match_id", m.ID, "awarded", out.AwardedCount, "total", out.Total)
		return out, fmt.Errorf("scoring pass abandoned: %w", cause)
	}

	if out.FailedCount > 0 {
		s.logger.WarnContext(ctx, "scoring pass completed with failures",
			"match_id", m.ID, "failed", out.FailedCount, "awarded", out.AwardedCount)
		return out, nil
	}

	if err := s.resultRepo.MarkScored(ctx, m.ID, s.now().UTC()); err != nil {
		return out, fmt.Errorf("mark match scored: %w", err)
	}
	s.logger.InfoContext(ctx, "scoring pass completed",
		"match_id", m.ID, "awarded", out.AwardedCount, "skipped", out.SkippedCount)
	return out, nil
}
