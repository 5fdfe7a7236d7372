package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/trophycast/predictor-api/internal/domain/user"
	qb "github.com/trophycast/predictor-api/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create user tx: %w", err)
	}
	defer tx.Rollback()

	query, args, err := qb.InsertModel("users", userTableModel{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		TeamName:    u.TeamName,
		Country:     u.Country,
		Points:      u.Points,
		WelcomeSeen: u.WelcomeSeen,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	const membershipQuery = `
INSERT INTO user_leagues (user_id, code)
VALUES ($1, $2)
ON CONFLICT (user_id, code) DO NOTHING`
	for _, code := range u.Leagues {
		if _, err := tx.ExecContext(ctx, membershipQuery, u.ID, code); err != nil {
			return fmt.Errorf("insert user membership: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create user tx: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	leagues, err := r.membershipsByUser(ctx, []string{userID})
	if err != nil {
		return user.User{}, false, err
	}

	out := userFromRow(row)
	out.Leagues = leagues[userID]
	return out, true, nil
}

func (r *UserRepository) ListByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	in := make([]any, 0, len(userIDs))
	for _, id := range userIDs {
		in = append(in, id)
	}
	query, args, err := qb.Select("*").From("users").
		Where(qb.In("id", in)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users by ids query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users by ids: %w", err)
	}

	return r.assemble(ctx, rows)
}

func (r *UserRepository) ListAll(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return r.assemble(ctx, rows)
}

func (r *UserRepository) ListByCountry(ctx context.Context, country string) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("country", country)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users by country query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users by country: %w", err)
	}

	return r.assemble(ctx, rows)
}

func (r *UserRepository) IncrementPoints(ctx context.Context, userID string, delta int) error {
	query, args, err := qb.Update("users").
		SetExpr("points", "points + ?", delta).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build increment points query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("increment points: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment points rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

func (r *UserRepository) AppendLeagueCode(ctx context.Context, userID, code string) error {
	const query = `
INSERT INTO user_leagues (user_id, code)
VALUES ($1, $2)
ON CONFLICT (user_id, code) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID, code); err != nil {
		return fmt.Errorf("append league code: %w", err)
	}
	return nil
}

func (r *UserRepository) MarkWelcomeSeen(ctx context.Context, userID string) error {
	query, args, err := qb.Update("users").
		Set("welcome_seen", true).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark welcome seen query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark welcome seen: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark welcome seen rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

func (r *UserRepository) assemble(ctx context.Context, rows []userTableModel) ([]user.User, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	leagues, err := r.membershipsByUser(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		u := userFromRow(row)
		u.Leagues = leagues[row.ID]
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) membershipsByUser(ctx context.Context, userIDs []string) (map[string][]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	in := make([]any, 0, len(userIDs))
	for _, id := range userIDs {
		in = append(in, id)
	}
	query, args, err := qb.Select("user_id", "code").From("user_leagues").
		Where(qb.In("user_id", in)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list memberships query: %w", err)
	}

	var rows []struct {
		UserID string `db:"user_id"`
		Code   string `db:"code"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	out := make(map[string][]string, len(userIDs))
	for _, row := range rows {
		out[row.UserID] = append(out[row.UserID], row.Code)
	}
	return out, nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		TeamName:    row.TeamName,
		Country:     row.Country,
		Points:      row.Points,
		WelcomeSeen: row.WelcomeSeen,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
