package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/memory"
	"github.com/trophycast/predictor-api/internal/platform/logging"
)

type recordingInvalidator struct {
	calls atomic.Int64
}

func (r *recordingInvalidator) Invalidate() { r.calls.Add(1) }

// flakyUserRepo fails IncrementPoints for one user until cleared.
type flakyUserRepo struct {
	user.Repository
	failUserID string
	failures   atomic.Int64
}

func (r *flakyUserRepo) IncrementPoints(ctx context.Context, userID string, delta int) error {
	if r.failUserID != "" && userID == r.failUserID {
		r.failures.Add(1)
		return errors.New("points write rejected")
	}
	return r.Repository.IncrementPoints(ctx, userID, delta)
}

type scoringFixture struct {
	scoring     *ScoringService
	predictions *PredictionService
	userRepo    *memory.UserRepository
	resultRepo  *memory.ResultRepository
	invalidator *recordingInvalidator
}

func newScoringFixture(t *testing.T) *scoringFixture {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), memory.SeedSquads())
	predRepo := memory.NewPredictionRepository()
	userRepo := memory.NewUserRepository()
	resultRepo := memory.NewResultRepository()
	invalidator := &recordingInvalidator{}

	predictions := NewPredictionService(matchRepo, predRepo)
	atTime(predictions, time.Date(2025, time.February, 18, 12, 0, 0, 0, time.UTC))

	scoring := NewScoringService(predictions, predRepo, userRepo, resultRepo, invalidator, 0, logging.NewNop())
	return &scoringFixture{
		scoring:     scoring,
		predictions: predictions,
		userRepo:    userRepo,
		resultRepo:  resultRepo,
		invalidator: invalidator,
	}
}

func (f *scoringFixture) registerUser(t *testing.T, userID string) {
	t.Helper()
	err := f.userRepo.Create(t.Context(), user.User{
		ID: userID, Name: userID, Email: userID + "@example.com",
		TeamName: userID + " XI", Country: "Pakistan",
		Leagues: []string{user.ScopeOverall, "Pakistan"},
	})
	if err != nil {
		t.Fatalf("create user %s: %v", userID, err)
	}
}

func (f *scoringFixture) submit(t *testing.T, userID, winner, motmID string) {
	t.Helper()
	if _, err := f.predictions.Submit(t.Context(), SubmitPredictionInput{
		UserID: userID, MatchID: 1, Winner: winner, MOTMID: motmID,
	}); err != nil {
		t.Fatalf("submit for %s: %v", userID, err)
	}
}

func (f *scoringFixture) points(t *testing.T, userID string) int {
	t.Helper()
	u, exists, err := f.userRepo.GetByID(t.Context(), userID)
	if err != nil || !exists {
		t.Fatalf("get user %s: exists=%v err=%v", userID, exists, err)
	}
	return u.Points
}

func TestScoringService_ScoreMatchAwards(t *testing.T) {
	f := newScoringFixture(t)
	f.registerUser(t, "alice")
	f.registerUser(t, "bob")
	f.registerUser(t, "carol")
	f.registerUser(t, "dave")

	// alice hits both, bob hits motm only, carol hits winner only, dave neither.
	f.submit(t, "alice", "Pakistan", "pak2")
	f.submit(t, "bob", "New Zealand", "pak2")
	f.submit(t, "carol", "Pakistan", "nz14")
	f.submit(t, "dave", "New Zealand", "nz14")

	out, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2",
	})
	if err != nil {
		t.Fatalf("score match failed: %v", err)
	}
	if out.Total != 4 || out.AwardedCount != 4 || out.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", out)
	}

	if got := f.points(t, "alice"); got != 150 {
		t.Fatalf("alice expected 150, got %d", got)
	}
	if got := f.points(t, "bob"); got != 100 {
		t.Fatalf("bob expected 100, got %d", got)
	}
	if got := f.points(t, "carol"); got != 50 {
		t.Fatalf("carol expected 50, got %d", got)
	}
	if got := f.points(t, "dave"); got != 0 {
		t.Fatalf("dave expected 0, got %d", got)
	}

	res, exists, err := f.resultRepo.GetByMatch(t.Context(), 1)
	if err != nil || !exists {
		t.Fatalf("get result: exists=%v err=%v", exists, err)
	}
	if !res.Scored || res.ScoredAt == nil {
		t.Fatalf("expected match marked scored, got %+v", res)
	}
	if f.invalidator.calls.Load() == 0 {
		t.Fatalf("expected leaderboard invalidation after scoring")
	}
}

func TestScoringService_ScoreMatchRefusesRerun(t *testing.T) {
	f := newScoringFixture(t)
	f.registerUser(t, "alice")
	f.submit(t, "alice", "Pakistan", "pak2")

	input := ScoreMatchInput{MatchID: 1, Winner: "Pakistan", MOTMID: "pak2"}
	if _, err := f.scoring.ScoreMatch(t.Context(), input); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}

	_, err := f.scoring.ScoreMatch(t.Context(), input)
	if !errors.Is(err, ErrAlreadyScored) {
		t.Fatalf("expected already scored error, got %v", err)
	}
	if got := f.points(t, "alice"); got != 150 {
		t.Fatalf("rerun changed points: %d", got)
	}
}

func TestScoringService_PartialFailureRetryPaysOnce(t *testing.T) {
	f := newScoringFixture(t)
	f.registerUser(t, "alice")
	f.registerUser(t, "bob")
	f.submit(t, "alice", "Pakistan", "pak2")
	f.submit(t, "bob", "Pakistan", "pak2")

	flaky := &flakyUserRepo{Repository: f.userRepo, failUserID: "bob"}
	f.scoring.userRepo = flaky

	input := ScoreMatchInput{MatchID: 1, Winner: "Pakistan", MOTMID: "pak2", MaxWorkers: 1}
	out, err := f.scoring.ScoreMatch(t.Context(), input)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	if out.AwardedCount != 1 || out.FailedCount != 1 {
		t.Fatalf("unexpected counts after partial failure: %+v", out)
	}
	if len(out.Failed) != 1 || out.Failed[0].UserID != "bob" {
		t.Fatalf("unexpected failure report: %+v", out.Failed)
	}

	res, _, err := f.resultRepo.GetByMatch(t.Context(), 1)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if res.Scored {
		t.Fatalf("match must not be marked scored while awards are outstanding")
	}

	flaky.failUserID = ""
	out, err = f.scoring.ScoreMatch(t.Context(), input)
	if err != nil {
		t.Fatalf("retry pass failed: %v", err)
	}
	if out.AwardedCount != 1 || out.SkippedCount != 1 || out.FailedCount != 0 {
		t.Fatalf("unexpected counts on retry: %+v", out)
	}

	if got := f.points(t, "alice"); got != 150 {
		t.Fatalf("alice paid twice or not at all: %d", got)
	}
	if got := f.points(t, "bob"); got != 150 {
		t.Fatalf("bob expected 150 after retry, got %d", got)
	}

	res, _, err = f.resultRepo.GetByMatch(t.Context(), 1)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if !res.Scored {
		t.Fatalf("expected match marked scored after clean retry")
	}
}

func TestScoringService_ProgressCallback(t *testing.T) {
	f := newScoringFixture(t)
	for _, id := range []string{"u1", "u2", "u3"} {
		f.registerUser(t, id)
		f.submit(t, id, "Pakistan", "pak2")
	}

	var progressCalls atomic.Int64
	var lastDone atomic.Int64
	_, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2", MaxWorkers: 1,
		OnProgress: func(done, total int) {
			progressCalls.Add(1)
			lastDone.Store(int64(done))
			if total != 3 {
				t.Errorf("unexpected total in progress callback: %d", total)
			}
		},
	})
	if err != nil {
		t.Fatalf("score match failed: %v", err)
	}
	if progressCalls.Load() != 3 {
		t.Fatalf("expected 3 progress calls, got %d", progressCalls.Load())
	}
	if lastDone.Load() != 3 {
		t.Fatalf("expected final progress done=3, got %d", lastDone.Load())
	}
}

func TestScoringService_CancelledPassStopsAndRetryCompletes(t *testing.T) {
	f := newScoringFixture(t)
	for _, id := range []string{"u1", "u2", "u3"} {
		f.registerUser(t, id)
		f.submit(t, id, "Pakistan", "pak2")
	}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	out, err := f.scoring.ScoreMatch(ctx, ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2", MaxWorkers: 1,
		OnProgress: func(done, total int) {
			if done == 1 {
				cancel()
			}
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation error, got %v", err)
	}
	if out.AwardedCount != 1 {
		t.Fatalf("expected one award before cancel, got %+v", out)
	}
	if out.FailedCount != 0 {
		t.Fatalf("cancellation must not count as failures: %+v", out)
	}

	res, _, err := f.resultRepo.GetByMatch(t.Context(), 1)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if res.Scored {
		t.Fatalf("abandoned pass must not mark the match scored")
	}

	// A fresh run settles what the cancelled pass left behind without
	// paying the first user twice.
	out, err = f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2", MaxWorkers: 1,
	})
	if err != nil {
		t.Fatalf("retry pass failed: %v", err)
	}
	if out.AwardedCount != 2 || out.SkippedCount != 1 || out.FailedCount != 0 {
		t.Fatalf("unexpected counts on retry: %+v", out)
	}
	for _, id := range []string{"u1", "u2", "u3"} {
		if got := f.points(t, id); got != 150 {
			t.Fatalf("%s expected 150, got %d", id, got)
		}
	}
}

func TestScoringService_ConfiguredDefaultWorkerCount(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.defaultWorkers = 2
	for _, id := range []string{"u1", "u2", "u3"} {
		f.registerUser(t, id)
		f.submit(t, id, "Pakistan", "pak2")
	}

	out, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2",
	})
	if err != nil {
		t.Fatalf("score match failed: %v", err)
	}
	if out.WorkerCount != 2 {
		t.Fatalf("expected configured default of 2 workers, got %d", out.WorkerCount)
	}

	if s := NewScoringService(nil, nil, nil, nil, nil, maxScoringWorkers+10, logging.NewNop()); s.defaultWorkers != maxScoringWorkers {
		t.Fatalf("expected default worker cap at %d, got %d", maxScoringWorkers, s.defaultWorkers)
	}
	if s := NewScoringService(nil, nil, nil, nil, nil, 0, logging.NewNop()); s.defaultWorkers != defaultScoringWorkers {
		t.Fatalf("expected fallback default of %d workers, got %d", defaultScoringWorkers, s.defaultWorkers)
	}
}

func TestScoringService_ScoreMatchNoPredictions(t *testing.T) {
	f := newScoringFixture(t)

	out, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "Pakistan", MOTMID: "pak2",
	})
	if err != nil {
		t.Fatalf("score match failed: %v", err)
	}
	if out.Total != 0 || out.AwardedCount != 0 {
		t.Fatalf("unexpected counts: %+v", out)
	}

	res, exists, err := f.resultRepo.GetByMatch(t.Context(), 1)
	if err != nil || !exists {
		t.Fatalf("get result: exists=%v err=%v", exists, err)
	}
	if !res.Scored {
		t.Fatalf("a pass over zero predictions still completes the match")
	}
}

func TestScoringService_ScoreMatchValidation(t *testing.T) {
	f := newScoringFixture(t)

	if _, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 1, Winner: "India", MOTMID: "ind3",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for team not in match, got %v", err)
	}
	if _, err := f.scoring.ScoreMatch(t.Context(), ScoreMatchInput{
		MatchID: 99, Winner: "Pakistan", MOTMID: "pak1",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown match, got %v", err)
	}
}
