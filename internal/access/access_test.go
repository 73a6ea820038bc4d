package access

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceResolve_FileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("  from-file\n"), 0o600))

	got, err := Source{Value: "inline", File: path}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "from-file", got)
}

func TestSourceResolve_Inline(t *testing.T) {
	got, err := Source{Value: " inline "}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "inline", got)
}

func TestSourceResolve_Errors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))

	_, err := Source{Name: "interviewer password", File: empty}.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interviewer password file")

	_, err = Source{}.Resolve()
	assert.EqualError(t, err, "password is not configured")

	_, err = Source{File: filepath.Join(t.TempDir(), "missing")}.Resolve()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGate(t *testing.T) {
	gate, err := NewGate(Source{Value: "s3cret"})
	require.NoError(t, err)
	assert.False(t, gate.Open())

	assert.NoError(t, gate.Check("s3cret"))
	assert.NoError(t, gate.Check(" s3cret\n"))
	assert.ErrorIs(t, gate.Check("S3CRET"), ErrDenied)
	assert.ErrorIs(t, gate.Check(""), ErrDenied)
	assert.ErrorIs(t, gate.Check("s3cret-and-more"), ErrDenied)
}

func TestGate_Open(t *testing.T) {
	gate, err := NewGate(Source{Name: "password"})
	require.NoError(t, err)
	assert.True(t, gate.Open())
	assert.NoError(t, gate.Check("anything"))

	var nilGate *Gate
	assert.True(t, nilGate.Open())
	assert.NoError(t, nilGate.Check(""))
}

func TestNewGate_UnreadableFile(t *testing.T) {
	_, err := NewGate(Source{File: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
