package prediction

import "time"

// MOTM is the predicted (or declared) man of the match. Identity comparisons
// during scoring use the ID only; the label is display denormalization.
type MOTM struct {
	ID    string
	Label string
}

// Prediction is a user's locked pick for one match. Keyed by (UserID,
// MatchID); at most one document exists per pair. AwardedPoints is nil until
// the scoring engine processes the prediction, after which it records the
// exact delta applied to the user's total. A later scoring pass skips any
// prediction that already carries the marker.
type Prediction struct {
	UserID        string
	MatchID       int
	Winner        string
	MOTM          MOTM
	Team1Score    *int
	Team2Score    *int
	AwardedPoints *int
	MatchDate     time.Time
	SubmittedAt   time.Time
}

// Scored reports whether a scoring pass already processed this prediction.
func (p Prediction) Scored() bool {
	return p.AwardedPoints != nil
}
