package object

import "fmt"

const (
	DefaultMaxFiles   = 5
	DefaultMaxEntries = 500
)

// Limits bounds what the reader and the linker accept.
type Limits struct {
	MaxFiles   int
	MaxEntries int
}

func DefaultLimits() Limits {
	return Limits{
		MaxFiles:   DefaultMaxFiles,
		MaxEntries: DefaultMaxEntries,
	}
}

// CheckCapacity fails with ErrCapacityExceeded when n > max. A non-positive max means unbounded.
func CheckCapacity(what string, n, max int) error {
	if max > 0 && n > max {
		return fmt.Errorf("%w: %d %s (limit %d)", ErrCapacityExceeded, n, what, max)
	}
	return nil
}
