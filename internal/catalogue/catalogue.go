// Package catalogue holds the roles interviewers can hire for and the scripted
// AI-first assignment run for each of them.
package catalogue

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var defaultRoles []byte

// ErrUnknownRole is returned when a role id is not part of the catalogue.
var ErrUnknownRole = errors.New("unknown role")

// Catalogue is the static set of roles together with the interviewer guide
// shared by every assignment.
type Catalogue struct {
	Instructions []string        `yaml:"instructions"`
	Interview    []InterviewStep `yaml:"interview" validate:"dive"`
	Items        []*Role         `yaml:"roles" validate:"required,min=1,dive"`
}

// InterviewStep is one timed part of the interview.
type InterviewStep struct {
	Title   string   `yaml:"title" validate:"required"`
	Minutes int      `yaml:"minutes" validate:"gte=0"`
	Notes   []string `yaml:"notes"`
}

// Role is a position with its assignment.
type Role struct {
	ID          string     `yaml:"id" validate:"required"`
	Title       string     `yaml:"title" validate:"required"`
	Category    string     `yaml:"category"`
	Description string     `yaml:"description"`
	Preview     string     `yaml:"preview"`
	Assignment  Assignment `yaml:"assignment"`
}

// Assignment is the scripted exercise given to the candidate.
type Assignment struct {
	Title    string   `yaml:"title" validate:"required"`
	Scenario []string `yaml:"scenario"`
	Success  []string `yaml:"success"`
	Failure  []string `yaml:"failure"`
}

// Default returns the catalogue embedded in the binary.
func Default() (*Catalogue, error) {
	return Parse(defaultRoles)
}

// Load reads a catalogue from a YAML file.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue %q: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalogue %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalogue. Unknown keys are rejected.
func Parse(data []byte) (*Catalogue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields and that role ids are unique.
func (c *Catalogue) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Items))
	for _, role := range c.Items {
		id := strings.TrimSpace(role.ID)
		if id != role.ID {
			return fmt.Errorf("invalid catalogue: role id %q has surrounding whitespace", role.ID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("invalid catalogue: duplicate role id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Len returns the number of roles.
func (c *Catalogue) Len() int {
	return len(c.Items)
}

// Roles returns the roles in catalogue order.
func (c *Catalogue) Roles() []*Role {
	return append([]*Role(nil), c.Items...)
}

// IDs returns the role ids in catalogue order.
func (c *Catalogue) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, role := range c.Items {
		ids = append(ids, role.ID)
	}
	return ids
}

// Role looks a role up by id. Matching ignores case and surrounding spaces.
func (c *Catalogue) Role(id string) (*Role, error) {
	id = strings.TrimSpace(id)
	for _, role := range c.Items {
		if strings.EqualFold(role.ID, id) {
			return role, nil
		}
	}
	return nil, fmt.Errorf("%w %q (known roles: %s)", ErrUnknownRole, id, strings.Join(c.IDs(), ", "))
}

// Label is the one-line description used in role pickers.
func (r *Role) Label() string {
	if r.Category == "" {
		return fmt.Sprintf("%s - %s", r.ID, r.Title)
	}
	return fmt.Sprintf("%s - %s (%s)", r.ID, r.Title, r.Category)
}

// Available reports whether the role has a real assignment yet.
func (r *Role) Available() bool {
	for _, line := range r.Assignment.Scenario {
		if !strings.EqualFold(strings.TrimSpace(line), "coming soon") {
			return true
		}
	}
	return false
}
