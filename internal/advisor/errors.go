package advisor

import "errors"

var (
	// ErrEmptyInput is returned when there is nothing left to send after
	// preprocessing.
	ErrEmptyInput = errors.New("advisor: empty input")

	// ErrUnavailable covers every failure of the remote advisor.
	ErrUnavailable = errors.New("advisor unavailable")
)
