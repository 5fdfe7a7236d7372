package league

import "context"

type Repository interface {
	Create(ctx context.Context, l League) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByCode(ctx context.Context, code string) (League, bool, error)
	ListByMember(ctx context.Context, userID string) ([]League, error)

	// AppendMember adds userID to the member list, set-union style: a
	// second append of the same user leaves exactly one entry.
	AppendMember(ctx context.Context, leagueID, userID string) error
}
