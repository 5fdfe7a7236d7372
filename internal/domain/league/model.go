package league

import "time"

// CodeLength is the size of the human-shareable join code.
const CodeLength = 6

// League is a private league joined by share code. Members grows by join
// order and never shrinks; the creator is always the first member.
type League struct {
	ID              string
	Name            string
	Code            string
	CreatorID       string
	CreatorTeamName string
	CreatorCountry  string
	Members         []string
	CreatedAt       time.Time
}

// IsMember reports whether userID is in the member list.
func (l League) IsMember(userID string) bool {
	for _, id := range l.Members {
		if id == userID {
			return true
		}
	}
	return false
}
