package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString(10)
	require.NoError(t, err)
	assert.Len(t, s1, 10)

	s2, err := GenerateRandomString(10)
	require.NoError(t, err)
	assert.Len(t, s2, 10)
	assert.NotEqual(t, s1, s2)

	s3, err := GenerateRandomString(255)
	require.NoError(t, err)
	assert.Len(t, s3, 255)

	_, err = GenerateRandomString(0)
	require.Error(t, err)
	_, err = GenerateRandomString(-1)
	require.Error(t, err)
}

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "", BytesToString(nil))
	assert.Equal(t, "glug glug", BytesToString([]byte("glug glug")))
}

func TestPathExists(t *testing.T) {
	tempDir := t.TempDir()

	exists, err := PathExists(tempDir, true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(tempDir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a file")
	assert.False(t, exists)

	tempFile := filepath.Join(tempDir, "water.json")
	require.NoError(t, os.WriteFile(tempFile, []byte(`{"count":3}`), 0o600))

	exists, err = PathExists(tempFile, false)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = PathExists(tempFile, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
	assert.False(t, exists)

	exists, err = PathExists(filepath.Join(tempDir, "nope"), false)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("drop-and-give-me-20")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("drop-and-give-me-20", hash))
	assert.False(t, CheckPasswordHash("drop-and-give-me-21", hash))
	assert.False(t, CheckPasswordHash("", hash))
}
