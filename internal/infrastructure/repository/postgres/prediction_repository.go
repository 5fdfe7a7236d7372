package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/trophycast/predictor-api/internal/domain/prediction"
	qb "github.com/trophycast/predictor-api/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, p prediction.Prediction) error {
	query, args, err := qb.InsertModel("predictions", rowFromPrediction(p),
		"ON CONFLICT (user_id, match_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert prediction query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert prediction rows affected: %w", err)
	}
	if affected == 0 {
		return prediction.ErrAlreadyExists
	}
	return nil
}

func (r *PredictionRepository) Upsert(ctx context.Context, p prediction.Prediction) error {
	const suffix = `
ON CONFLICT (user_id, match_id) DO UPDATE SET
  winner = EXCLUDED.winner,
  motm_id = EXCLUDED.motm_id,
  motm_label = EXCLUDED.motm_label,
  team1_score = EXCLUDED.team1_score,
  team2_score = EXCLUDED.team2_score,
  match_date = EXCLUDED.match_date,
  submitted_at = EXCLUDED.submitted_at`

	query, args, err := qb.InsertModel("predictions", rowFromPrediction(p), suffix)
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Get(ctx context.Context, userID string, matchID int) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}

	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID int) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) RecordAward(ctx context.Context, userID string, matchID int, points int) error {
	query, args, err := qb.Update("predictions").
		Set("awarded_points", points).
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build record award query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("record award: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record award rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prediction %s/%d not found", userID, matchID)
	}
	return nil
}

func rowFromPrediction(p prediction.Prediction) predictionTableModel {
	return predictionTableModel{
		UserID:        p.UserID,
		MatchID:       p.MatchID,
		Winner:        p.Winner,
		MOTMID:        p.MOTM.ID,
		MOTMLabel:     p.MOTM.Label,
		Team1Score:    intPtrToNullInt64(p.Team1Score),
		Team2Score:    intPtrToNullInt64(p.Team2Score),
		AwardedPoints: intPtrToNullInt64(p.AwardedPoints),
		MatchDate:     p.MatchDate,
		SubmittedAt:   p.SubmittedAt,
	}
}
