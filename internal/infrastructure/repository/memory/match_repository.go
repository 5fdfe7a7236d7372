package memory

import (
	"context"
	"sync"

	"github.com/trophycast/predictor-api/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int]match.Match
	orders []int
	squads map[string][]match.Player
}

func NewMatchRepository(matches []match.Match, squads map[string][]match.Player) *MatchRepository {
	items := make(map[int]match.Match, len(matches))
	orders := make([]int, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
		squads: squads,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) SquadByTeam(_ context.Context, teamName string) ([]match.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squad := r.squads[teamName]
	return append([]match.Player(nil), squad...), nil
}
