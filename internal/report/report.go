// Package report renders assessments and assignment scripts for the terminal
// or for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spigell/ai-readiness/internal/scoring"
)

// Format selects how a result is written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat accepts a format name in any case. An empty name means Text.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Text, nil
	}
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of text, json, yaml)", ErrUnknownFormat, s)
}

// Write renders result to w in the given format.
func Write(w io.Writer, format Format, result scoring.Result) error {
	switch format {
	case Text, "":
		p := NewPrinter(w)
		p.PrintResult(result)
		return p.Err()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// DumpToTmpFile writes result as indented JSON to a new temporary file and
// returns its name.
func DumpToTmpFile(result scoring.Result) (string, error) {
	file, err := os.CreateTemp("", "assessment_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Write(file, JSON, result); err != nil {
		return "", err
	}
	return file.Name(), nil
}
