package repkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/repkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateOverride(t *testing.T) {
	t.Parallel()
	prog := filepath.Join(t.TempDir(), "RePKG.exe")
	require.NoError(t, helper.Touch(prog))
	got, err := repkg.Locate(prog)
	require.NoError(t, err)
	assert.Equal(t, prog, got)

	_, err = repkg.Locate(filepath.Join(t.TempDir(), "missing", "RePKG.exe"))
	require.ErrorIs(t, err, repkg.ErrProgram)

	// a directory with the program name is not the program
	dir := filepath.Join(t.TempDir(), "RePKG")
	require.NoError(t, os.Mkdir(dir, helper.DirWriteReadRead))
	_, err = repkg.Locate(dir)
	require.ErrorIs(t, err, repkg.ErrProgram)
}

func TestLocatePath(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, repkg.Names()[0])
	require.NoError(t, os.WriteFile(prog, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)
	got, err := repkg.Locate("")
	require.NoError(t, err)
	assert.Equal(t, prog, got)

	t.Setenv("PATH", t.TempDir())
	_, err = repkg.Locate("")
	require.ErrorIs(t, err, repkg.ErrProgram)
}
