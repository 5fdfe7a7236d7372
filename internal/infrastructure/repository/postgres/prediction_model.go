package postgres

import (
	"database/sql"
	"time"

	"github.com/trophycast/predictor-api/internal/domain/prediction"
)

type predictionTableModel struct {
	UserID        string        `db:"user_id"`
	MatchID       int           `db:"match_id"`
	Winner        string        `db:"winner"`
	MOTMID        string        `db:"motm_id"`
	MOTMLabel     string        `db:"motm_label"`
	Team1Score    sql.NullInt64 `db:"team1_score"`
	Team2Score    sql.NullInt64 `db:"team2_score"`
	AwardedPoints sql.NullInt64 `db:"awarded_points"`
	MatchDate     time.Time     `db:"match_date"`
	SubmittedAt   time.Time     `db:"submitted_at"`
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		UserID:        row.UserID,
		MatchID:       row.MatchID,
		Winner:        row.Winner,
		MOTM:          prediction.MOTM{ID: row.MOTMID, Label: row.MOTMLabel},
		Team1Score:    nullInt64ToIntPtr(row.Team1Score),
		Team2Score:    nullInt64ToIntPtr(row.Team2Score),
		AwardedPoints: nullInt64ToIntPtr(row.AwardedPoints),
		MatchDate:     row.MatchDate,
		SubmittedAt:   row.SubmittedAt,
	}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
