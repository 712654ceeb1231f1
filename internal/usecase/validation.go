package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// checkHasDuplicates fails with errDup, naming the first repeated value.
// Empty values are ignored.
func checkHasDuplicates(values []string, errDup error) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %s", errDup, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// canonicalID trims value and returns it as a lower-case hyphenated UUID.
// Only the 36 character form is accepted.
func canonicalID(value string, errInvalid error) (string, error) {
	value = normalize(value)
	id, err := uuid.Parse(value)
	if err != nil || len(value) != 36 {
		return "", fmt.Errorf("%w: '%s' is not an uuid", errInvalid, value)
	}
	return id.String(), nil
}

func normalize(s string) string {
	return strings.TrimSpace(s)
}
