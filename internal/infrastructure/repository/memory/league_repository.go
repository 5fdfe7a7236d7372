package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/trophycast/predictor-api/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	byCode map[string]string
	orders []string
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{
		items:  make(map[string]league.League),
		byCode: make(map[string]string),
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[l.ID]; ok {
		return fmt.Errorf("league %s already exists", l.ID)
	}
	if _, ok := r.byCode[l.Code]; ok {
		return fmt.Errorf("league code %s already taken", l.Code)
	}

	l.Members = append([]string(nil), l.Members...)
	r.items[l.ID] = l
	r.byCode[l.Code] = l.ID
	r.orders = append(r.orders, l.ID)
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	l.Members = append([]string(nil), l.Members...)
	return l, true, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return league.League{}, false, nil
	}

	l := r.items[id]
	l.Members = append([]string(nil), l.Members...)
	return l, true, nil
}

func (r *LeagueRepository) ListByMember(_ context.Context, userID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, id := range r.orders {
		l := r.items[id]
		if !l.IsMember(userID) {
			continue
		}
		l.Members = append([]string(nil), l.Members...)
		out = append(out, l)
	}

	return out, nil
}

func (r *LeagueRepository) AppendMember(_ context.Context, leagueID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}
	if l.IsMember(userID) {
		return nil
	}

	l.Members = append(append([]string(nil), l.Members...), userID)
	r.items[leagueID] = l
	return nil
}
