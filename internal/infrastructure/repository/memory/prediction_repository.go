package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/trophycast/predictor-api/internal/domain/prediction"
)

type predictionKey struct {
	userID  string
	matchID int
}

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[predictionKey]prediction.Prediction
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{
		items: make(map[predictionKey]prediction.Prediction),
	}
}

func (r *PredictionRepository) Create(_ context.Context, p prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey{userID: p.UserID, matchID: p.MatchID}
	if _, ok := r.items[key]; ok {
		return prediction.ErrAlreadyExists
	}

	r.items[key] = p
	return nil
}

func (r *PredictionRepository) Upsert(_ context.Context, p prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[predictionKey{userID: p.UserID, matchID: p.MatchID}] = p
	return nil
}

func (r *PredictionRepository) Get(_ context.Context, userID string, matchID int) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[predictionKey{userID: userID, matchID: matchID}]
	if !ok {
		return prediction.Prediction{}, false, nil
	}

	return p, true, nil
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID int) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for key, p := range r.items {
		if key.matchID == matchID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *PredictionRepository) RecordAward(_ context.Context, userID string, matchID int, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey{userID: userID, matchID: matchID}
	p, ok := r.items[key]
	if !ok {
		return fmt.Errorf("prediction %s/%d not found", userID, matchID)
	}

	p.AwardedPoints = &points
	r.items[key] = p
	return nil
}
