package config

import (
	"fmt"
	"strings"
)

// MissingEnvError is returned by New when one or more required environment
// variables are unset or empty. Missing preserves the declaration order of
// requiredEnvVars.
type MissingEnvError struct {
	Missing []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s",
		strings.Join(e.Missing, ", "))
}
