package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrWindowClosed means the prediction window is not open at the
	// instant of the attempt. Distinct from store failures so callers can
	// tell a policy rejection from a transient error.
	ErrWindowClosed = errors.New("prediction window closed")

	// ErrInvalidSchedule means the match has no usable start time, so no
	// window can be derived. Reported instead of silently treating the
	// window as closed.
	ErrInvalidSchedule = errors.New("match schedule invalid")

	// ErrPredictionLocked means a prediction document already exists for
	// the (user, match) pair; locking is terminal.
	ErrPredictionLocked = errors.New("prediction locked")

	// ErrAlreadyScored refuses a second scoring pass for a match.
	ErrAlreadyScored = errors.New("match already scored")
)
