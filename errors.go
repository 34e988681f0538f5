package coordproj

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("coordinate outside projection domain")

	// ErrEllipsoidRequired is returned when a projection that only has an
	// ellipsoidal formulation is initialized with a sphere.
	ErrEllipsoidRequired = errors.New("ellipsoid with positive eccentricity required")

	// ErrNotInitialized is returned by transforms on an instance that has
	// never been initialized, or whose last Initialize failed.
	ErrNotInitialized = errors.New("projection not initialized")

	// ErrInvalidParameter marks constructor and Initialize input errors.
	ErrInvalidParameter = errors.New("invalid projection parameter")
)

// DomainError reports an input that the projection can not map at all, as
// opposed to a valid input with no representable result (which is signaled
// by a NaN or infinite coordinate).
type DomainError struct {
	Projection string  // Name of the projection that failed
	X, Y       float64 // Input coordinate
	Reason     string  // What made the input unsolvable
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: (%g, %g): %s", e.Projection, e.X, e.Y, e.Reason)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func invalidParameterf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
