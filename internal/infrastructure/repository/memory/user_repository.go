package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/trophycast/predictor-api/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  map[string]user.User
	orders []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		items: make(map[string]user.User),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; ok {
		return fmt.Errorf("user %s already exists", u.ID)
	}

	u.Leagues = append([]string(nil), u.Leagues...)
	r.items[u.ID] = u
	r.orders = append(r.orders, u.ID)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	u.Leagues = append([]string(nil), u.Leagues...)
	return u, true, nil
}

func (r *UserRepository) ListByIDs(_ context.Context, userIDs []string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(userIDs))
	for _, id := range userIDs {
		if u, ok := r.items[id]; ok {
			u.Leagues = append([]string(nil), u.Leagues...)
			out = append(out, u)
		}
	}

	return out, nil
}

func (r *UserRepository) ListAll(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.orders))
	for _, id := range r.orders {
		u := r.items[id]
		u.Leagues = append([]string(nil), u.Leagues...)
		out = append(out, u)
	}

	return out, nil
}

func (r *UserRepository) ListByCountry(_ context.Context, country string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0)
	for _, id := range r.orders {
		u := r.items[id]
		if u.Country != country {
			continue
		}
		u.Leagues = append([]string(nil), u.Leagues...)
		out = append(out, u)
	}

	return out, nil
}

func (r *UserRepository) IncrementPoints(_ context.Context, userID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}

	u.Points += delta
	r.items[userID] = u
	return nil
}

func (r *UserRepository) AppendLeagueCode(_ context.Context, userID, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}

	for _, existing := range u.Leagues {
		if existing == code {
			return nil
		}
	}
	u.Leagues = append(append([]string(nil), u.Leagues...), code)
	r.items[userID] = u
	return nil
}

func (r *UserRepository) MarkWelcomeSeen(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}

	u.WelcomeSeen = true
	r.items[userID] = u
	return nil
}
