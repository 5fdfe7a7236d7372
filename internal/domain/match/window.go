package match

import "time"

// Prediction window rule, anchored to the tournament's home timezone
// (PKT, UTC+5): submissions open the day before the match at 4 PM PKT and
// close on match day at 1 PM PKT. Expressed in UTC that is 11:00 the
// previous day through 08:00 on the match date. All comparisons happen on
// absolute UTC instants; rendering in a viewer's zone is a client concern.
const (
	windowOpenHourUTC  = 11
	windowCloseHourUTC = 8
)

// Window is the interval during which predictions for a match are accepted.
type Window struct {
	Start time.Time
	End   time.Time
}

// PredictionWindow derives the submission window from the match start time.
// The second return value is false for a zero start time, which callers must
// surface as an invalid schedule rather than a closed window.
func PredictionWindow(start time.Time) (Window, bool) {
	if start.IsZero() {
		return Window{}, false
	}

	st := start.UTC()
	year, month, day := st.Date()
	return Window{
		Start: time.Date(year, month, day-1, windowOpenHourUTC, 0, 0, 0, time.UTC),
		End:   time.Date(year, month, day, windowCloseHourUTC, 0, 0, 0, time.UTC),
	}, true
}

// Open reports whether now falls inside the window, inclusive on both ends.
func (w Window) Open(now time.Time) bool {
	now = now.UTC()
	return !now.Before(w.Start) && !now.After(w.End)
}
