package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), RuntimeConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST->PGHOST\nDB_PASS->PGPASSWORD\n"), 0o600))

	rc := loadRuntimeConfig(path)
	assert.Equal(t, map[string]string{"DB_HOST": "PGHOST", "DB_PASS": "PGPASSWORD"}, rc)
}

func TestLoadRuntimeConfig_CommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), RuntimeConfigFile)
	content := "# database variables\n\nDB_HOST->PGHOST\r\n  # port stays default\nDB_NAME->PGDATABASE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rc := loadRuntimeConfig(path)
	assert.Equal(t, map[string]string{"DB_HOST": "PGHOST", "DB_NAME": "PGDATABASE"}, rc)
}

func TestLoadRuntimeConfig_OnlyComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), RuntimeConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("# nothing here\n"), 0o600))

	rc := loadRuntimeConfig(path)
	assert.Empty(t, rc)
	assert.NotNil(t, rc)
}

func TestLoadRuntimeConfig_Missing(t *testing.T) {
	rc := loadRuntimeConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, rc)
	assert.NotNil(t, rc)
}

func TestLoadRuntimeConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), RuntimeConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST->PGHOST\nDB_PASS\n"), 0o600))

	assert.Empty(t, loadRuntimeConfig(path))
}
