package wallpack

import (
	"errors"
	"fmt"
)

// Error taxonomy. Both are sentinel values meant to be matched with
// errors.Is; the errors Pack returns for these cases wrap them with context.
var (
	// ErrInvalidGeometry is returned when the wall or an aperture cannot be
	// repaired into a valid polygon.
	ErrInvalidGeometry = errors.New("wallpack: invalid geometry")

	// ErrConfigError is returned when a Config value fails validation:
	// empty Widths, a non-positive width, non-positive CourseHeight,
	// negative MinAdaptiveHeight, or negative Workers.
	ErrConfigError = errors.New("wallpack: invalid configuration")
)

// wrapGeometry wraps err (if any) as an ErrInvalidGeometry with context.
func wrapGeometry(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %v", context, ErrInvalidGeometry, err)
}

// Warning is a side-band diagnostic. Warnings never alter the emitted plan
// and are never required reading: they exist purely to help a caller
// understand why, e.g., an aperture was discarded or a custom piece was
// dropped as micro-area noise.
type Warning struct {
	Stage   string // "aperture", "optimize", ...
	Message string
}

func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}
