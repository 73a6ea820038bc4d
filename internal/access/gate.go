// Package access guards the interviewer-only commands behind a shared
// password.
package access

import (
	"crypto/subtle"
	"errors"
	"strings"
)

var ErrDenied = errors.New("access denied")

// Gate compares passwords against one resolved secret.
type Gate struct {
	secret []byte
}

// NewGate resolves src. An unconfigured source yields an open gate.
func NewGate(src Source) (*Gate, error) {
	if !src.Configured() {
		return &Gate{}, nil
	}

	secret, err := src.Resolve()
	if err != nil {
		return nil, err
	}
	return &Gate{secret: []byte(secret)}, nil
}

// Open reports whether the gate lets everyone through.
func (g *Gate) Open() bool {
	return g == nil || len(g.secret) == 0
}

// Check returns ErrDenied unless password matches. Surrounding whitespace in
// the attempt is ignored.
func (g *Gate) Check(password string) error {
	if g.Open() {
		return nil
	}

	attempt := []byte(strings.TrimSpace(password))
	if subtle.ConstantTimeCompare(attempt, g.secret) != 1 {
		return ErrDenied
	}
	return nil
}
