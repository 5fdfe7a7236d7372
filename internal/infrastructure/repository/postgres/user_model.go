package postgres

import "time"

type userTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	TeamName    string    `db:"team_name"`
	Country     string    `db:"country"`
	Points      int       `db:"points"`
	WelcomeSeen bool      `db:"welcome_seen"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
