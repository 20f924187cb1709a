package subject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBinary(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
}

func TestLocateFindsBuildBinDir(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "build", "bin", "veloce")
	writeBinary(t, want)

	got, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocateFallsBackToBuildDir(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "build", "veloce")
	writeBinary(t, want)

	got, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocateErrorMentionsBuildInstructions(t *testing.T) {
	_, err := Locate(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmake")
}

func TestResolveExplicitPathWins(t *testing.T) {
	root := t.TempDir()
	writeBinary(t, filepath.Join(root, "build", "veloce"))
	explicit := filepath.Join(root, "custom-emulator")
	writeBinary(t, explicit)

	got, err := Resolve(explicit, root)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)
}

func TestResolveExplicitPathMustExist(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing"), ".")
	assert.Error(t, err)
}

func TestResolveExplicitPathMustNotBeDirectory(t *testing.T) {
	_, err := Resolve(t.TempDir(), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}
