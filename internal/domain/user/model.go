package user

import "time"

// ScopeOverall is the implicit league every user belongs to from signup.
const ScopeOverall = "overall"

// Principal is the authenticated identity resolved from an access token.
// Profile fields beyond the ID live in User documents, not here.
type Principal struct {
	UserID string
	Email  string
}

// User is a player profile. Points only ever move through atomic
// increments applied by the scoring engine.
type User struct {
	ID          string
	Name        string
	Email       string
	TeamName    string
	Country     string
	Points      int
	Leagues     []string
	WelcomeSeen bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
