package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/result"
)

type ResultRepository struct {
	mu    sync.RWMutex
	items map[int]result.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		items: make(map[int]result.Result),
	}
}

func (r *ResultRepository) Upsert(_ context.Context, res result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A completed pass is final; the declared outcome cannot change after it.
	if existing, ok := r.items[res.MatchID]; ok && existing.Scored {
		res.Scored = existing.Scored
		res.ScoredAt = existing.ScoredAt
	}
	r.items[res.MatchID] = res
	return nil
}

func (r *ResultRepository) GetByMatch(_ context.Context, matchID int) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[matchID]
	if !ok {
		return result.Result{}, false, nil
	}

	return res, true, nil
}

func (r *ResultRepository) MarkScored(_ context.Context, matchID int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("result for match %d not found", matchID)
	}

	res.Scored = true
	res.ScoredAt = &at
	r.items[matchID] = res
	return nil
}
