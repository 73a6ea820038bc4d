package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/ai-readiness/internal/catalogue"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromFiles(t *testing.T) {
	transcript := writeFile(t, "transcript.txt", "I used ChatGPT to draft the email.")
	output := writeFile(t, "output.txt", "Subject: Scaling BUM Energy")

	s, err := FromFiles(" sdr ", transcript, output)
	require.NoError(t, err)
	assert.Equal(t, &Submission{
		RoleID:     "sdr",
		Transcript: "I used ChatGPT to draft the email.",
		Output:     "Subject: Scaling BUM Energy",
	}, s)
	assert.NoError(t, s.Validate())
}

func TestFromFiles_MissingFile(t *testing.T) {
	_, err := FromFiles("ae", filepath.Join(t.TempDir(), "nope.txt"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "transcript")
}

func TestParse_YAML(t *testing.T) {
	s, err := Parse([]byte(`
role: ae
transcript: |
  We used Claude to summarize the account.
output: Value proposition for Glade Optics
`))
	require.NoError(t, err)
	assert.Equal(t, "ae", s.RoleID)
	assert.Equal(t, "We used Claude to summarize the account.\n", s.Transcript)
	assert.Equal(t, "Value proposition for Glade Optics", s.Output)
}

func TestParse_TabIndentedJSON(t *testing.T) {
	s, err := Parse([]byte("{\n\t\"role\": \"sdr\",\n\t\"transcript\": \"t\",\n\t\"output\": \"o\"\n}"))
	require.NoError(t, err)
	assert.Equal(t, &Submission{RoleID: "sdr", Transcript: "t", Output: "o"}, s)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"unknown key": "role: ae\nscore: 10\n",
		"not a map":   "- ae\n",
		"bad json":    `{"role": `,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "submission.json", `{"role": "ae", "transcript": "t", "output": "o"}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ae", s.RoleID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		in   Submission
		want error
	}{
		"complete":          {Submission{RoleID: "ae", Transcript: "t", Output: "o"}, nil},
		"no role":           {Submission{Transcript: "t", Output: "o"}, ErrMissingRole},
		"blank transcript":  {Submission{RoleID: "ae", Transcript: " \n\t", Output: "o"}, ErrMissingTranscript},
		"empty output":      {Submission{RoleID: "ae", Transcript: "t"}, ErrMissingOutput},
		"everything absent": {Submission{}, ErrMissingRole},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateRole(t *testing.T) {
	c, err := catalogue.Default()
	require.NoError(t, err)

	s := &Submission{RoleID: "SDR"}
	require.NoError(t, s.ValidateRole(c))
	assert.Equal(t, "sdr", s.RoleID)

	s = &Submission{RoleID: "cto"}
	err = s.ValidateRole(c)
	assert.ErrorIs(t, err, ErrUnknownRole)
}
