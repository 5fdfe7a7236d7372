package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_Basic(t *testing.T) {
	sql, args, err := Select("id", "name", "points").
		From("users").
		Where(Eq("country", "IN")).
		OrderBy("points DESC", "created_at ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id, name, points FROM users WHERE country = $1 ORDER BY points DESC, created_at ASC LIMIT 10"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"IN"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_MultipleConditionsJoinWithAnd(t *testing.T) {
	sql, args, err := Select("user_id").
		From("predictions").
		Where(Eq("match_id", 3), Eq("winner", "India")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT user_id FROM predictions WHERE match_id = $1 AND winner = $2"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{3, "India"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_InCondition(t *testing.T) {
	sql, args, err := Select("id").
		From("users").
		Where(In("id", []any{"u-1", "u-2", "u-3"})).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM users WHERE id IN ($1, $2, $3)"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"u-1", "u-2", "u-3"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_EmptyInMatchesNothing(t *testing.T) {
	sql, args, err := Select("id").
		From("users").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM users WHERE 1=0"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestSelect_ExprConditionRewritesPlaceholders(t *testing.T) {
	sql, args, err := Select("id").
		From("predictions").
		Where(Eq("match_id", 3), Expr("awarded_points IS NULL OR awarded_points < ?", 150)).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM predictions WHERE match_id = $1 AND awarded_points IS NULL OR awarded_points < $2"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{3, 150}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_RequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("users").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsert_Basic(t *testing.T) {
	sql, args, err := InsertInto("leagues").
		Columns("id", "code", "creator_id").
		Values("lg-1", "AB12CD", "u-1").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO leagues (id, code, creator_id) VALUES ($1, $2, $3)"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{"lg-1", "AB12CD", "u-1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_MultipleRowsAndSuffix(t *testing.T) {
	sql, args, err := InsertInto("user_leagues").
		Columns("user_id", "code").
		Values("u-1", "AB12CD").
		Values("u-2", "AB12CD").
		Suffix("ON CONFLICT (user_id, code) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO user_leagues (user_id, code) VALUES ($1, $2), ($3, $4) ON CONFLICT (user_id, code) DO NOTHING"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
}

func TestInsert_RejectsMismatchedRow(t *testing.T) {
	_, _, err := InsertInto("leagues").
		Columns("id", "code").
		Values("lg-1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdate_SetAndWhere(t *testing.T) {
	sql, args, err := Update("users").
		Set("welcome_seen", true).
		Where(Eq("id", "u-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET welcome_seen = $1 WHERE id = $2"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{true, "u-1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdate_SetExprKeepsArgOrder(t *testing.T) {
	sql, args, err := Update("users").
		SetExpr("points", "points + ?", 50).
		Set("updated_at", "2026-02-11T12:00:00Z").
		Where(Eq("id", "u-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET points = points + $1, updated_at = $2 WHERE id = $3"
	if sql != want {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{50, "2026-02-11T12:00:00Z", "u-1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdate_RequiresSets(t *testing.T) {
	if _, _, err := Update("users").Where(Eq("id", "u-1")).ToSQL(); err == nil {
		t.Fatalf("expected error for missing set clauses")
	}
}
