// Package repkg builds and runs command lines for the [RePKG] program,
// the Wallpaper Engine PKG extractor and TEX converter.
//
// The package has two halves.
//
//  1. [Build] and [Command.Args] turn a mode, paths and options into an argument list.
//  2. [Runner.Execute] runs that argument list and returns a [Result],
//     optionally appending a record to a [Journal] log file.
//
// Building never fails and never touches the file system, callers should
// use [Validate] on the paths before building.
//
// [RePKG]: https://github.com/notscuffed/repkg
package repkg

import (
	"errors"
)

// Mode selects the RePKG operation and the flags that apply to it.
type Mode string

const (
	Extract Mode = "extract" // Extract unpacks PKG files and converts TEX files.
	Info    Mode = "info"    // Info prints details about PKG and TEX files.
)

// Valid returns true if the mode is known to RePKG.
func (m Mode) Valid() bool {
	return m == Extract || m == Info
}

func (m Mode) String() string {
	return string(m)
}

// The info mode sort keys.
const (
	SortName      = "name"
	SortExtension = "extension"
	SortSize      = "size"
)

// SortKeys returns the sort keys accepted by the info mode.
func SortKeys() []string {
	return []string{SortName, SortExtension, SortSize}
}

// NoOutput replaces an empty standard output so callers never display a blank result.
const NoOutput = "[No output]"

var (
	ErrInput   = errors.New("input path is empty")
	ErrMissing = errors.New("path does not exist")
	ErrMode    = errors.New("mode is not extract or info")
	ErrPackage = errors.New("file is not a pkg or tex package")
	ErrPath    = errors.New("path is a file")
	ErrProgram = errors.New("repkg program not found")
	ErrArgs    = errors.New("command line is empty")
)
