package match

import "time"

// FormResult is one entry of a team's recent-form record.
type FormResult string

const (
	FormWin      FormResult = "W"
	FormLoss     FormResult = "L"
	FormTie      FormResult = "T"
	FormNoResult FormResult = "NR"
)

type Team struct {
	Name string
	Logo string
}

// Match is one fixture of the static tournament schedule. The schedule is
// seed data: matches are only ever read, never written through the API.
type Match struct {
	ID        int
	Team1     Team
	Team2     Team
	Matchday  string
	StartTime time.Time
	Team1Form []FormResult
	Team2Form []FormResult
}

// Player is a squad member eligible for man-of-the-match selection.
type Player struct {
	ID   string
	Name string
}

// HasTeam reports whether name is one of the two sides of the match.
func (m Match) HasTeam(name string) bool {
	return name != "" && (m.Team1.Name == name || m.Team2.Name == name)
}
