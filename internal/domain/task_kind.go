package domain

import (
	"strings"

	"roster/internal/errors"
)

// TaskKind tags what sort of work a task is. It is descriptive only and
// never changes how progress is tracked.
type TaskKind string

const (
	KindCoding        TaskKind = "coding"
	KindReview        TaskKind = "review"
	KindTesting       TaskKind = "testing"
	KindDocumentation TaskKind = "documentation"
)

// DefaultTaskKind is used when no kind is given.
const DefaultTaskKind = KindCoding

// TaskKinds lists every known kind in display order.
func TaskKinds() []TaskKind {
	return []TaskKind{KindCoding, KindReview, KindTesting, KindDocumentation}
}

// ParseTaskKind maps user text to a kind. Empty text means the default kind.
func ParseTaskKind(s string) (TaskKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTaskKind, nil
	}
	for _, kind := range TaskKinds() {
		if string(kind) == s {
			return kind, nil
		}
	}
	return "", errors.NewInvalidInputError("kind", s, "must be one of coding, review, testing, documentation")
}

// IsValid reports whether k is one of the known kinds.
func (k TaskKind) IsValid() bool {
	for _, kind := range TaskKinds() {
		if kind == k {
			return true
		}
	}
	return false
}

func (k TaskKind) String() string {
	return string(k)
}
