package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/user"
	"github.com/trophycast/predictor-api/internal/infrastructure/repository/memory"
	"github.com/trophycast/predictor-api/internal/platform/cache"
)

func seedLeaderboardUsers(t *testing.T, repo *memory.UserRepository) {
	t.Helper()

	users := []user.User{
		{ID: "u-bob", Name: "Bob", TeamName: "Bob XI", Country: "India", Points: 200},
		{ID: "u-alice", Name: "Alice", TeamName: "Alice XI", Country: "Pakistan", Points: 300},
		{ID: "u-carol", Name: "Carol", TeamName: "Carol XI", Country: "Pakistan", Points: 200},
		{ID: "u-dave", Name: "Dave", TeamName: "Dave XI", Country: "India", Points: 0},
	}
	for _, u := range users {
		u.Leagues = []string{user.ScopeOverall, u.Country}
		if err := repo.Create(t.Context(), u); err != nil {
			t.Fatalf("seed user %s: %v", u.ID, err)
		}
	}
}

func TestLeaderboardService_GlobalRankingOrder(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	service := NewLeaderboardService(userRepo, memory.NewLeagueRepository(), nil)

	standings, err := service.FullRanking(t.Context(), GlobalScope())
	if err != nil {
		t.Fatalf("full ranking failed: %v", err)
	}

	wantOrder := []string{"u-alice", "u-bob", "u-carol", "u-dave"}
	if len(standings) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(standings))
	}
	for i, want := range wantOrder {
		if standings[i].UserID != want {
			t.Fatalf("row %d: expected %s, got %s", i, want, standings[i].UserID)
		}
		if standings[i].Rank != i+1 {
			t.Fatalf("row %d: expected rank %d, got %d", i, i+1, standings[i].Rank)
		}
	}

	// u-bob and u-carol both hold 200 points; the tie breaks on user id.
	if standings[1].Points != standings[2].Points {
		t.Fatalf("expected a points tie between rows 1 and 2")
	}
}

func TestLeaderboardService_CountryScope(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	service := NewLeaderboardService(userRepo, memory.NewLeagueRepository(), nil)

	standings, err := service.FullRanking(t.Context(), CountryScope("Pakistan"))
	if err != nil {
		t.Fatalf("country ranking failed: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 Pakistan rows, got %d", len(standings))
	}
	if standings[0].UserID != "u-alice" || standings[1].UserID != "u-carol" {
		t.Fatalf("unexpected country order: %+v", standings)
	}
}

func TestLeaderboardService_LeagueScope(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	leagueRepo := memory.NewLeagueRepository()
	service := NewLeaderboardService(userRepo, leagueRepo, nil)

	leagues := NewLeagueService(leagueRepo, userRepo, staticIDGenerator{id: "lg-1"})
	l, err := leagues.Create(t.Context(), CreateLeagueInput{UserID: "u-carol", Name: "Office Pool"})
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if _, err := leagues.Join(t.Context(), JoinLeagueInput{UserID: "u-alice", Code: l.Code}); err != nil {
		t.Fatalf("join league: %v", err)
	}

	standings, err := service.FullRanking(t.Context(), LeagueScope(l.Code))
	if err != nil {
		t.Fatalf("league ranking failed: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("expected 2 league rows, got %d", len(standings))
	}
	if standings[0].UserID != "u-alice" || standings[1].UserID != "u-carol" {
		t.Fatalf("unexpected league order: %+v", standings)
	}

	if _, err := service.FullRanking(t.Context(), LeagueScope("NOPE11")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown league, got %v", err)
	}
}

func TestLeaderboardService_RankOf(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	service := NewLeaderboardService(userRepo, memory.NewLeagueRepository(), nil)

	row, found, err := service.RankOf(t.Context(), GlobalScope(), "u-carol")
	if err != nil {
		t.Fatalf("rank of failed: %v", err)
	}
	if !found || row.Rank != 3 {
		t.Fatalf("expected carol at rank 3, got found=%v row=%+v", found, row)
	}

	_, found, err = service.RankOf(t.Context(), CountryScope("Pakistan"), "u-dave")
	if err != nil {
		t.Fatalf("rank of failed: %v", err)
	}
	if found {
		t.Fatalf("dave is not in the Pakistan scope")
	}
}

func TestLeaderboardService_TopN(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	service := NewLeaderboardService(userRepo, memory.NewLeagueRepository(), nil)

	standings, err := service.TopN(t.Context(), GlobalScope(), 2)
	if err != nil {
		t.Fatalf("top n failed: %v", err)
	}
	if len(standings) != 2 || standings[0].UserID != "u-alice" || standings[1].UserID != "u-bob" {
		t.Fatalf("unexpected top 2: %+v", standings)
	}

	if _, err := service.TopN(t.Context(), GlobalScope(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for n=0, got %v", err)
	}
}

func TestLeaderboardService_CacheInvalidation(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedLeaderboardUsers(t, userRepo)
	store := cache.NewStore(time.Minute)
	service := NewLeaderboardService(userRepo, memory.NewLeagueRepository(), store)

	before, err := service.FullRanking(t.Context(), GlobalScope())
	if err != nil {
		t.Fatalf("full ranking failed: %v", err)
	}

	if err := userRepo.IncrementPoints(t.Context(), "u-dave", 1000); err != nil {
		t.Fatalf("increment points: %v", err)
	}

	cached, err := service.FullRanking(t.Context(), GlobalScope())
	if err != nil {
		t.Fatalf("cached ranking failed: %v", err)
	}
	if cached[0].UserID != before[0].UserID {
		t.Fatalf("expected cached ranking to remain stale until invalidation")
	}

	service.Invalidate()

	after, err := service.FullRanking(t.Context(), GlobalScope())
	if err != nil {
		t.Fatalf("ranking after invalidation failed: %v", err)
	}
	if after[0].UserID != "u-dave" {
		t.Fatalf("expected dave on top after invalidation, got %s", after[0].UserID)
	}
}

func TestLeaderboardService_UnknownScope(t *testing.T) {
	service := NewLeaderboardService(memory.NewUserRepository(), memory.NewLeagueRepository(), nil)

	if _, err := service.FullRanking(t.Context(), Scope{Kind: "galaxy"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown scope, got %v", err)
	}
}
