// validate/validate.go
package validate

import (
	"strings"

	"github.com/google/uuid"
)

// ValidID reports whether raw is a well-formed identifier. The check is
// purely syntactic and never touches storage.
func ValidID(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}

// ParseID parses a well-formed identifier. Callers are expected to have
// checked ValidID (or to map the error to their own message).
func ParseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// Required reports whether a required field carries a value beyond
// whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}
