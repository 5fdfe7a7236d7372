package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/trophycast/predictor-api/internal/domain/result"
	qb "github.com/trophycast/predictor-api/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Upsert(ctx context.Context, res result.Result) error {
	// The scored flag is owned by MarkScored; a redeclare before completion
	// updates the outcome without touching it.
	const suffix = `
ON CONFLICT (match_id) DO UPDATE SET
  winner = EXCLUDED.winner,
  motm_id = EXCLUDED.motm_id,
  motm_label = EXCLUDED.motm_label
WHERE match_results.scored = FALSE`

	query, args, err := qb.InsertModel("match_results", resultTableModel{
		MatchID:    res.MatchID,
		Winner:     res.Winner,
		MOTMID:     res.MOTM.ID,
		MOTMLabel:  res.MOTM.Label,
		Scored:     res.Scored,
		DeclaredAt: res.DeclaredAt,
		ScoredAt:   res.ScoredAt,
	}, suffix)
	if err != nil {
		return fmt.Errorf("build upsert match result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match result: %w", err)
	}
	return nil
}

func (r *ResultRepository) GetByMatch(ctx context.Context, matchID int) (result.Result, bool, error) {
	query, args, err := qb.Select("*").From("match_results").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return result.Result{}, false, fmt.Errorf("build get match result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, fmt.Errorf("get match result: %w", err)
	}

	return resultFromRow(row), true, nil
}

func (r *ResultRepository) MarkScored(ctx context.Context, matchID int, at time.Time) error {
	query, args, err := qb.Update("match_results").
		Set("scored", true).
		Set("scored_at", at).
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark scored query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark scored: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark scored rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("result for match %d not found", matchID)
	}
	return nil
}
