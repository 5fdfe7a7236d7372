package postgres

import (
	"time"

	"github.com/trophycast/predictor-api/internal/domain/prediction"
	"github.com/trophycast/predictor-api/internal/domain/result"
)

type resultTableModel struct {
	MatchID    int        `db:"match_id"`
	Winner     string     `db:"winner"`
	MOTMID     string     `db:"motm_id"`
	MOTMLabel  string     `db:"motm_label"`
	Scored     bool       `db:"scored"`
	DeclaredAt time.Time  `db:"declared_at"`
	ScoredAt   *time.Time `db:"scored_at"`
}

func resultFromRow(row resultTableModel) result.Result {
	return result.Result{
		MatchID:    row.MatchID,
		Winner:     row.Winner,
		MOTM:       prediction.MOTM{ID: row.MOTMID, Label: row.MOTMLabel},
		Scored:     row.Scored,
		DeclaredAt: row.DeclaredAt,
		ScoredAt:   row.ScoredAt,
	}
}
