package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/trophycast/predictor-api/internal/domain/league"
	qb "github.com/trophycast/predictor-api/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create league tx: %w", err)
	}
	defer tx.Rollback()

	query, args, err := qb.InsertModel("leagues", leagueTableModel{
		ID:              l.ID,
		Name:            l.Name,
		Code:            l.Code,
		CreatorID:       l.CreatorID,
		CreatorTeamName: l.CreatorTeamName,
		CreatorCountry:  l.CreatorCountry,
		CreatedAt:       l.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}

	const memberQuery = `
INSERT INTO league_members (league_id, user_id)
VALUES ($1, $2)
ON CONFLICT (league_id, user_id) DO NOTHING`
	for _, userID := range l.Members {
		if _, err := tx.ExecContext(ctx, memberQuery, l.ID, userID); err != nil {
			return fmt.Errorf("insert league member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create league tx: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("id", leagueID))
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("code", code))
}

func (r *LeagueRepository) ListByMember(ctx context.Context, userID string) ([]league.League, error) {
	const query = `
SELECT l.id, l.name, l.code, l.creator_id, l.creator_team_name, l.creator_country, l.created_at
FROM leagues l
JOIN league_members m ON m.league_id = l.id
WHERE m.user_id = $1
ORDER BY m.id`

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list leagues by member: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		l := leagueFromRow(row)
		members, err := r.members(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		l.Members = members
		out = append(out, l)
	}
	return out, nil
}

func (r *LeagueRepository) AppendMember(ctx context.Context, leagueID, userID string) error {
	const query = `
INSERT INTO league_members (league_id, user_id)
VALUES ($1, $2)
ON CONFLICT (league_id, user_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, leagueID, userID); err != nil {
		return fmt.Errorf("append league member: %w", err)
	}
	return nil
}

func (r *LeagueRepository) getOne(ctx context.Context, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(cond).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	members, err := r.members(ctx, row.ID)
	if err != nil {
		return league.League{}, false, err
	}

	l := leagueFromRow(row)
	l.Members = members
	return l, true, nil
}

// members returns user ids ordered by join order.
func (r *LeagueRepository) members(ctx context.Context, leagueID string) ([]string, error) {
	query, args, err := qb.Select("user_id").From("league_members").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list league members query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}
	return out, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:              row.ID,
		Name:            row.Name,
		Code:            row.Code,
		CreatorID:       row.CreatorID,
		CreatorTeamName: row.CreatorTeamName,
		CreatorCountry:  row.CreatorCountry,
		CreatedAt:       row.CreatedAt,
	}
}
