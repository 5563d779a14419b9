package ipnet

import "errors"

var (
	// ErrInvalidAddr indicates the client address could not be parsed.
	ErrInvalidAddr = errors.New("invalid client address")

	// ErrInvalidPrefix indicates a prefix length outside the valid range.
	ErrInvalidPrefix = errors.New("invalid network prefix length")
)
