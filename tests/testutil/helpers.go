// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// ToolDir creates a temporary tool directory holding a compromised list
// and an executable grep.sh with the given body.
func ToolDir(t *testing.T, compromised string, script string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compromised_versions.json"), []byte(compromised), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grep.sh"), []byte("#!/bin/sh\n"+script), 0755))
	return dir
}
