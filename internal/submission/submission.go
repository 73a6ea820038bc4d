// Package submission reads what a candidate handed in: the interview
// transcript and the output document they produced.
package submission

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/spigell/ai-readiness/internal/catalogue"
)

var (
	ErrMissingRole       = errors.New("role is required")
	ErrMissingTranscript = errors.New("transcript is required")
	ErrMissingOutput     = errors.New("output is required")
	ErrUnknownRole       = catalogue.ErrUnknownRole
)

// Submission is one candidate's material for a single role.
type Submission struct {
	RoleID     string `mapstructure:"role" json:"role" yaml:"role" validate:"required"`
	Transcript string `mapstructure:"transcript" json:"transcript" yaml:"transcript" validate:"required"`
	Output     string `mapstructure:"output" json:"output" yaml:"output" validate:"required"`
}

// fieldErrors maps struct fields to the errors callers can check for.
var fieldErrors = map[string]error{
	"RoleID":     ErrMissingRole,
	"Transcript": ErrMissingTranscript,
	"Output":     ErrMissingOutput,
}

var validate = validator.New()

// FromFiles builds a submission from two plain text files.
func FromFiles(roleID, transcriptPath, outputPath string) (*Submission, error) {
	transcript, err := readText("transcript", transcriptPath)
	if err != nil {
		return nil, err
	}

	output, err := readText("output", outputPath)
	if err != nil {
		return nil, err
	}

	return &Submission{
		RoleID:     strings.TrimSpace(roleID),
		Transcript: transcript,
		Output:     output,
	}, nil
}

func readText(name, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, path, err)
	}
	return string(data), nil
}

// Load reads a submission document in JSON or YAML.
func Load(path string) (*Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission %q: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("submission %q: %w", path, err)
	}
	return s, nil
}

// Parse decodes a submission document. Unknown keys are rejected.
func Parse(data []byte) (*Submission, error) {
	var raw map[string]interface{}

	// Tab-indented JSON is not valid YAML.
	unmarshal := yaml.Unmarshal
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		unmarshal = json.Unmarshal
	}
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if raw == nil {
		return nil, errors.New("document is empty")
	}

	var s Submission
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &s,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}

	s.RoleID = strings.TrimSpace(s.RoleID)
	return &s, nil
}

// Validate reports the first missing field. Whitespace-only text counts as
// missing.
func (s *Submission) Validate() error {
	trimmed := Submission{
		RoleID:     strings.TrimSpace(s.RoleID),
		Transcript: strings.TrimSpace(s.Transcript),
		Output:     strings.TrimSpace(s.Output),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("validating submission: %w", err)
	}

	for _, fe := range invalid {
		if sentinel, ok := fieldErrors[fe.StructField()]; ok {
			return fmt.Errorf("invalid submission: %w", sentinel)
		}
	}
	return fmt.Errorf("invalid submission: %w", err)
}

// ValidateRole checks the role against the catalogue and normalises the id
// to its catalogue spelling.
func (s *Submission) ValidateRole(c *catalogue.Catalogue) error {
	role, err := c.Role(s.RoleID)
	if err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}

	s.RoleID = role.ID
	return nil
}
