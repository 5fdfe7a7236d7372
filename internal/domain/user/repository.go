package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)
	ListByIDs(ctx context.Context, userIDs []string) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListByCountry(ctx context.Context, country string) ([]User, error)

	// IncrementPoints applies an atomic delta to the stored point total.
	// Implementations must never read-modify-write the total.
	IncrementPoints(ctx context.Context, userID string, delta int) error

	// AppendLeagueCode adds a league code to the user's membership list,
	// set-union style: appending an already-present code is a no-op.
	AppendLeagueCode(ctx context.Context, userID, code string) error

	MarkWelcomeSeen(ctx context.Context, userID string) error
}
