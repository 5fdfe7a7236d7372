package result

import (
	"time"

	"github.com/trophycast/predictor-api/internal/domain/prediction"
)

// Result is the admin-declared outcome for one match. Scored flips to true
// once a scoring pass completes without failures; a set flag refuses any
// further pass for the match.
type Result struct {
	MatchID    int
	Winner     string
	MOTM       prediction.MOTM
	Scored     bool
	DeclaredAt time.Time
	ScoredAt   *time.Time
}
