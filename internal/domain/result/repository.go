package result

import (
	"context"
	"time"
)

type Repository interface {
	Upsert(ctx context.Context, r Result) error
	GetByMatch(ctx context.Context, matchID int) (Result, bool, error)

	// MarkScored sets the scored flag and timestamp for the match.
	MarkScored(ctx context.Context, matchID int, at time.Time) error
}
