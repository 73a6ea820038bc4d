package access

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where the interviewer password comes from.
type Source struct {
	// Name gives context in error messages.
	Name string
	// Value is an inline password from configuration or flags.
	Value string
	// File holds the password. It takes precedence over Value.
	File string
}

// Configured reports whether the source points at any password at all.
func (s Source) Configured() bool {
	return strings.TrimSpace(s.File) != "" || strings.TrimSpace(s.Value) != ""
}

// Resolve returns the trimmed password. It fails when the file cannot be
// read or when the resolved value is blank.
func (s Source) Resolve() (string, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = "password"
	}

	value := s.Value
	file := strings.TrimSpace(s.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}
	return secret, nil
}
