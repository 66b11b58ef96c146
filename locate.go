package repkg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/repkg/command"
)

// Package file locate.go contains the RePKG program lookup.

// Names returns the RePKG program filenames to look for on this operating system.
func Names() []string {
	if runtime.GOOS == "windows" {
		return []string{command.RePKGExe}
	}
	return []string{command.RePKG, command.Short, command.RePKGExe}
}

// Locate returns the absolute path of the RePKG program.
//
// A non-empty override is used as is when it is an existing file,
// otherwise it is looked up on the PATH.
// Without an override the program is searched for in this order.
//
//  1. The directory of the running executable.
//  2. The current working directory.
//  3. The directories on the PATH.
func Locate(override string) (string, error) {
	if override != "" {
		if helper.File(override) {
			return filepath.Abs(override)
		}
		prog, err := exec.LookPath(override)
		if err != nil {
			return "", fmt.Errorf("locate %w: %s", ErrProgram, override)
		}
		return filepath.Abs(prog)
	}
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	for _, dir := range dirs {
		for _, name := range Names() {
			path := filepath.Join(dir, name)
			if helper.File(path) {
				return path, nil
			}
		}
	}
	for _, name := range Names() {
		prog, err := exec.LookPath(name)
		if errors.Is(err, exec.ErrDot) {
			continue
		}
		if err == nil {
			return filepath.Abs(prog)
		}
	}
	return "", ErrProgram
}
