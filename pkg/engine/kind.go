package engine

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported browser engines.
type Kind string

const (
	KindChrome  Kind = "chrome"
	KindFirefox Kind = "firefox"
	KindWebkit  Kind = "webkit"
)

// Kinds lists the supported browser kinds.
func Kinds() []Kind {
	return []Kind{KindChrome, KindFirefox, KindWebkit}
}

// ParseKind validates a caller-supplied browser kind. Validation happens
// before any engine work so an unsupported kind never launches a process.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindChrome, KindFirefox, KindWebkit:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}
