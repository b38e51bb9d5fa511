package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("LEVELS_TEST_ROOT_A", "")
	t.Setenv("LEVELS_TEST_ROOT_B", "/srv/levels")
	r := New("/etc/levels", "LEVELS_TEST_ROOT_A", "LEVELS_TEST_ROOT_B")
	assert.Equal(t, "/srv/levels", string(r))

	assert.Equal(t, "/etc/levels", string(New("/etc/levels", "LEVELS_TEST_ROOT_A")))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, string(New("")))
}

func TestPathAndBytes(t *testing.T) {
	dir := t.TempDir()
	r := Root(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rarities.yml"), []byte("rarities: {}\n"), 0644))

	assert.Equal(t, filepath.Join(dir, "rarities.yml"), r.Path("rarities.yml"))
	assert.Equal(t, "/abs/rarities.yml", r.Path("/abs/rarities.yml"))

	b, err := r.Bytes("rarities.yml")
	require.NoError(t, err)
	assert.Equal(t, "rarities: {}\n", string(b))

	_, err = r.Bytes("missing.yml")
	assert.True(t, os.IsNotExist(err))
}
