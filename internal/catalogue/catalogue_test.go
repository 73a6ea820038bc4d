package catalogue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"ae", "sdr", "se", "msm"}, c.IDs())
	assert.Equal(t, 4, c.Len())
	assert.Len(t, c.Instructions, 3)
	require.Len(t, c.Interview, 3)
	assert.Equal(t, "Introduction and Assignment Overview", c.Interview[0].Title)

	sdr, err := c.Role("sdr")
	require.NoError(t, err)
	assert.Equal(t, "Sales Development Representative", sdr.Title)
	assert.Equal(t, "SDR AI Assignment", sdr.Assignment.Title)
	assert.Len(t, sdr.Assignment.Success, 4)
	assert.Len(t, sdr.Assignment.Failure, 4)
	assert.True(t, sdr.Available())
}

func TestRole_LookupIgnoresCaseAndSpaces(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	role, err := c.Role("  AE ")
	require.NoError(t, err)
	assert.Equal(t, "ae", role.ID)
}

func TestRole_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Role("cto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRole))
	assert.Contains(t, err.Error(), "ae, sdr, se, msm")
}

func TestRole_AvailableAndLabel(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	se, err := c.Role("se")
	require.NoError(t, err)
	assert.False(t, se.Available())
	assert.Equal(t, "se - Solution Engineer (Support)", se.Label())

	assert.Equal(t, "x - X", (&Role{ID: "x", Title: "X"}).Label())
}

func TestRoles_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	roles := c.Roles()
	roles[0] = nil

	assert.NotNil(t, c.Roles()[0])
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"no roles": "roles: []\n",
		"duplicate id": `roles:
  - {id: ae, title: A, assignment: {title: T}}
  - {id: ae, title: B, assignment: {title: T}}
`,
		"missing title": `roles:
  - {id: ae, assignment: {title: T}}
`,
		"missing assignment title": `roles:
  - {id: ae, title: A}
`,
		"padded id": `roles:
  - {id: " ae", title: A, assignment: {title: T}}
`,
		"unknown key": `roles:
  - {id: ae, title: A, salary: 1, assignment: {title: T}}
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	doc := `roles:
  - id: pm
    title: Product Manager
    assignment:
      title: PM AI Assignment
      scenario: [Write a launch brief]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pm"}, c.IDs())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
