package postgres

import "time"

type leagueTableModel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Code            string    `db:"code"`
	CreatorID       string    `db:"creator_id"`
	CreatorTeamName string    `db:"creator_team_name"`
	CreatorCountry  string    `db:"creator_country"`
	CreatedAt       time.Time `db:"created_at"`
}
