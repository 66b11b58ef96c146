package repkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/magicnumber"
)

// Package file validate.go contains the path checks to run before building a command.

// Validate confirms the mode and paths are usable for a RePKG run.
//
// The input must exist and can either be a directory or a file.
// A file that is a known archive format such as ZIP or RAR is rejected,
// as RePKG only reads its own PKG and TEX formats.
// For the [Extract] mode a non-empty output must not be an existing file,
// a missing output directory is created by RePKG.
func Validate(mode Mode, input, output string) error {
	if !mode.Valid() {
		return fmt.Errorf("validate %w: %q", ErrMode, mode)
	}
	if input == "" {
		return ErrInput
	}
	st, err := os.Stat(input)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("validate %w: %s", ErrMissing, filepath.Base(input))
	}
	if err != nil {
		return fmt.Errorf("validate input %w", err)
	}
	if !st.IsDir() {
		if err := notArchive(input); err != nil {
			return err
		}
	}
	if mode != Extract || output == "" {
		return nil
	}
	if helper.File(output) {
		return fmt.Errorf("validate output %w: %s", ErrPath, filepath.Base(output))
	}
	return nil
}

// notArchive returns an error when the named file is a known archive.
func notArchive(name string) error {
	r, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("validate open %w", err)
	}
	defer r.Close()
	sign, err := magicnumber.Archive(r)
	if err != nil {
		// unreadable signatures are left for RePKG to report
		return nil
	}
	if sign != magicnumber.Unknown {
		return fmt.Errorf("validate %w, %s: %s", ErrPackage, sign, filepath.Base(name))
	}
	return nil
}
