package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/match"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/memory"
)

func newPredictionFixture(t *testing.T) (*PredictionService, *memory.PredictionRepository) {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), memory.SeedSquads())
	predRepo := memory.NewPredictionRepository()
	return NewPredictionService(matchRepo, predRepo), predRepo
}

func atTime(service *PredictionService, at time.Time) {
	service.now = func() time.Time { return at }
}

func TestPredictionService_SubmitWithinWindow(t *testing.T) {
	service, _ := newPredictionFixture(t)
	// Match 1 starts 2025-02-19T09:00Z; window is 02-18T11:00Z to 02-19T08:00Z.
	atTime(service, time.Date(2025, time.February, 18, 15, 30, 0, 0, time.UTC))

	p, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID:  "user-1",
		MatchID: 1,
		Winner:  "Pakistan",
		MOTMID:  "pak2",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if p.Winner != "Pakistan" {
		t.Fatalf("unexpected winner: %s", p.Winner)
	}
	if p.MOTM.ID != "pak2" || p.MOTM.Label != "Babar Azam" {
		t.Fatalf("unexpected motm: %+v", p.MOTM)
	}
}

func TestPredictionService_SubmitWindowBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{
			name: "exact open instant accepted",
			at:   time.Date(2025, time.February, 18, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "exact close instant accepted",
			at:   time.Date(2025, time.February, 19, 8, 0, 0, 0, time.UTC),
		},
		{
			name:    "one second before open rejected",
			at:      time.Date(2025, time.February, 18, 10, 59, 59, 0, time.UTC),
			wantErr: ErrWindowClosed,
		},
		{
			name:    "one second after close rejected",
			at:      time.Date(2025, time.February, 19, 8, 0, 1, 0, time.UTC),
			wantErr: ErrWindowClosed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newPredictionFixture(t)
			atTime(service, tc.at)

			_, err := service.Submit(t.Context(), SubmitPredictionInput{
				UserID:  "user-1",
				MatchID: 1,
				Winner:  "Pakistan",
				MOTMID:  "pak1",
			})
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected accept, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPredictionService_SubmitLockedAfterFirstWrite(t *testing.T) {
	service, _ := newPredictionFixture(t)
	atTime(service, time.Date(2025, time.February, 18, 12, 0, 0, 0, time.UTC))

	input := SubmitPredictionInput{UserID: "user-1", MatchID: 1, Winner: "Pakistan", MOTMID: "pak1"}
	if _, err := service.Submit(t.Context(), input); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	input.Winner = "New Zealand"
	input.MOTMID = "nz14"
	_, err := service.Submit(t.Context(), input)
	if !errors.Is(err, ErrPredictionLocked) {
		t.Fatalf("expected locked prediction error, got %v", err)
	}

	p, exists, err := service.Get(t.Context(), "user-1", 1)
	if err != nil || !exists {
		t.Fatalf("get prediction: exists=%v err=%v", exists, err)
	}
	if p.Winner != "Pakistan" {
		t.Fatalf("locked prediction was overwritten: %s", p.Winner)
	}
}

func TestPredictionService_SubmitValidation(t *testing.T) {
	service, _ := newPredictionFixture(t)
	atTime(service, time.Date(2025, time.February, 18, 12, 0, 0, 0, time.UTC))

	if _, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID: "user-1", MatchID: 1, Winner: "India", MOTMID: "ind3",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for team not in match, got %v", err)
	}

	if _, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID: "user-1", MatchID: 1, Winner: "Pakistan", MOTMID: "ind3",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for player outside both squads, got %v", err)
	}

	if _, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID: "user-1", MatchID: 99, Winner: "Pakistan", MOTMID: "pak1",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown match, got %v", err)
	}
}

func TestPredictionService_SubmitInvalidSchedule(t *testing.T) {
	matchRepo := memory.NewMatchRepository([]match.Match{
		{
			ID:    42,
			Team1: match.Team{Name: "Pakistan"},
			Team2: match.Team{Name: "India"},
		},
	}, memory.SeedSquads())
	service := NewPredictionService(matchRepo, memory.NewPredictionRepository())

	_, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID: "user-1", MatchID: 42, Winner: "Pakistan", MOTMID: "pak1",
	})
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("expected invalid schedule error, got %v", err)
	}
	if errors.Is(err, ErrWindowClosed) {
		t.Fatalf("invalid schedule must not report as closed window")
	}
}

func TestPredictionService_SaveScorePreservesWinnerPick(t *testing.T) {
	service, _ := newPredictionFixture(t)
	atTime(service, time.Date(2025, time.February, 18, 12, 0, 0, 0, time.UTC))

	if _, err := service.Submit(t.Context(), SubmitPredictionInput{
		UserID: "user-1", MatchID: 1, Winner: "Pakistan", MOTMID: "pak1",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	p, err := service.SaveScore(t.Context(), SaveScoreInput{
		UserID: "user-1", MatchID: 1, Team1Score: 287, Team2Score: 250,
	})
	if err != nil {
		t.Fatalf("save score failed: %v", err)
	}
	if p.Winner != "Pakistan" || p.MOTM.ID != "pak1" {
		t.Fatalf("score save dropped the winner pick: %+v", p)
	}
	if p.Team1Score == nil || *p.Team1Score != 287 {
		t.Fatalf("unexpected team1 score: %v", p.Team1Score)
	}
}

func TestPredictionService_SaveScoreLockedNearKickoff(t *testing.T) {
	service, _ := newPredictionFixture(t)
	// 45 minutes before the 09:00Z start.
	atTime(service, time.Date(2025, time.February, 19, 8, 15, 0, 0, time.UTC))

	_, err := service.SaveScore(t.Context(), SaveScoreInput{
		UserID: "user-1", MatchID: 1, Team1Score: 200, Team2Score: 190,
	})
	if !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected closed window near kickoff, got %v", err)
	}
}

func TestPredictionService_Popularity(t *testing.T) {
	service, _ := newPredictionFixture(t)
	atTime(service, time.Date(2025, time.February, 18, 12, 0, 0, 0, time.UTC))

	picks := map[string]string{
		"user-1": "Pakistan",
		"user-2": "Pakistan",
		"user-3": "New Zealand",
	}
	for userID, winner := range picks {
		motm := "pak1"
		if winner == "New Zealand" {
			motm = "nz14"
		}
		if _, err := service.Submit(t.Context(), SubmitPredictionInput{
			UserID: userID, MatchID: 1, Winner: winner, MOTMID: motm,
		}); err != nil {
			t.Fatalf("submit for %s failed: %v", userID, err)
		}
	}

	pop, err := service.Popularity(t.Context(), 1)
	if err != nil {
		t.Fatalf("popularity failed: %v", err)
	}
	if pop.Total != 3 {
		t.Fatalf("expected 3 counted predictions, got %d", pop.Total)
	}
	if pop.Team1Percent != 67 || pop.Team2Percent != 33 {
		t.Fatalf("unexpected split: %d/%d", pop.Team1Percent, pop.Team2Percent)
	}
}

func TestPredictionService_PopularityEmpty(t *testing.T) {
	service, _ := newPredictionFixture(t)

	pop, err := service.Popularity(t.Context(), 1)
	if err != nil {
		t.Fatalf("popularity failed: %v", err)
	}
	if pop.Total != 0 || pop.Team1Percent != 0 || pop.Team2Percent != 0 {
		t.Fatalf("expected zeroed split with no predictions, got %+v", pop)
	}
}
