package engine

import "errors"

var (
	ErrUnsupportedKind = errors.New("unsupported browser kind")
	ErrElementNotFound = errors.New("element not found")
	ErrEngineClosed    = errors.New("browser engine closed")
)

// IsElementNotFound reports whether err is an element lookup failure.
func IsElementNotFound(err error) bool {
	return errors.Is(err, ErrElementNotFound)
}
