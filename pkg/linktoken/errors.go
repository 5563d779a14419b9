package linktoken

import "errors"

var (
	// ErrNoStore indicates no store was provided to the constructor.
	ErrNoStore = errors.New("linktoken: no store configured")

	// ErrNoResolver indicates the network resolver could not be built.
	ErrNoResolver = errors.New("linktoken: no network resolver configured")
)
