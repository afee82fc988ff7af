package network

import (
	"errors"
	"fmt"
)

// ErrInvalidNetwork is the sentinel wrapped by every structural
// validation failure raised by New. Callers should use errors.Is to
// detect it; the wrapped message carries the offending edge.
var ErrInvalidNetwork = errors.New("network: invalid network")

// invalidf wraps ErrInvalidNetwork with a formatted reason, following
// the sentinel-plus-%w-wrapping convention used throughout the
// packages this module is built from.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidNetwork, fmt.Sprintf(format, args...))
}
