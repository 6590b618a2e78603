package spin

import "errors"

var (
	// ErrSpinInFlight rejects a spin request while a session is active
	ErrSpinInFlight = errors.New("spin: session already in flight")

	// ErrInsufficientStake rejects a spin the credit collaborator
	// declined to fund
	ErrInsufficientStake = errors.New("spin: insufficient stake")

	// ErrColumnBusy rejects starting a column that is already running
	ErrColumnBusy = errors.New("spin: column animation already running")

	// ErrInvalidDuration rejects negative animation durations
	ErrInvalidDuration = errors.New("spin: negative animation duration")

	// ErrInvalidSpeed rejects non-positive scroll speeds
	ErrInvalidSpeed = errors.New("spin: scroll speed must be positive")

	// ErrGridMismatch rejects a committed grid whose dimensions do not
	// match the column set
	ErrGridMismatch = errors.New("spin: committed grid does not match machine geometry")

	// ErrPoolExhausted reports an empty highlight sprite pool
	ErrPoolExhausted = errors.New("spin: highlight pool exhausted")
)
