package prediction

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned by Create when a prediction document is
// already present for the (user, match) key. The store enforces the lock;
// callers translate it into the locked-prediction policy error.
var ErrAlreadyExists = errors.New("prediction already exists")

type Repository interface {
	// Create inserts the prediction only if no document exists for the
	// (UserID, MatchID) key, returning ErrAlreadyExists otherwise.
	Create(ctx context.Context, p Prediction) error

	// Upsert overwrites the document for the key, preserving the
	// single-document-per-pair invariant.
	Upsert(ctx context.Context, p Prediction) error

	Get(ctx context.Context, userID string, matchID int) (Prediction, bool, error)
	ListByMatch(ctx context.Context, matchID int) ([]Prediction, error)

	// RecordAward stores the scoring marker for one prediction.
	RecordAward(ctx context.Context, userID string, matchID int, points int) error
}
