package repkg

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Defacto2/repkg/command"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Package file journal.go contains the append-only log of the RePKG runs.

const (
	// LogName is the default filename of the journal.
	LogName = "logs.txt"
	// LogSize is the default size in megabytes of the journal before it gets rotated.
	LogSize = 10

	stamp = "2006-01-02 15:04:05"
)

// Journal appends a text record of every logged RePKG run to a file.
// Records are written with a single write and a Journal is safe for concurrent use.
//
//	[2025-01-31 18:04:05]
//	=== Command ===
//	repkg extract scene.pkg -o output -r
//	=== Output ===
//	[No output]
//	=== Error ===
//	(only present when the error output is not empty)
type Journal struct {
	file *lumberjack.Logger
}

// NewJournal returns a journal that appends to the named file.
// The file is created on the first record and rotated once it grows past
// the maxSize in megabytes, a maxSize of zero uses [LogSize].
func NewJournal(name string, maxSize int) *Journal {
	if maxSize <= 0 {
		maxSize = LogSize
	}
	return &Journal{
		file: &lumberjack.Logger{
			Filename:   name,
			MaxSize:    maxSize,
			MaxBackups: 3,
			LocalTime:  true,
		},
	}
}

// Name returns the path of the journal file.
func (j *Journal) Name() string {
	return j.file.Filename
}

// Record appends one record of the argv command line and its captured output.
func (j *Journal) Record(when time.Time, argv []string, stdout, stderr string) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s]\n", when.Format(stamp))
	b.WriteString("=== Command ===\n")
	b.WriteString(strings.Join(Display(argv), " ") + "\n")
	b.WriteString("=== Output ===\n")
	b.WriteString(stdout + "\n")
	if stderr != "" {
		b.WriteString("=== Error ===\n")
		b.WriteString(stderr + "\n")
	}
	b.WriteString("\n")
	if _, err := j.file.Write(b.Bytes()); err != nil {
		return fmt.Errorf("journal record %w", err)
	}
	return nil
}

// Close closes the journal file.
func (j *Journal) Close() error {
	return j.file.Close()
}

// Display returns a copy of argv with the RePKG program path replaced by its short name.
// The program is often run from a temporary or install directory that is
// meaningless in a log. Any other program path is left as is.
func Display(argv []string) []string {
	s := make([]string, len(argv))
	copy(s, argv)
	if len(s) > 0 && IsRePKG(s[0]) {
		s[0] = command.Short
	}
	return s
}

// IsRePKG returns true if the base name of the program path is a RePKG executable.
func IsRePKG(program string) bool {
	// the path could be from Windows while running elsewhere
	base := filepath.Base(strings.ReplaceAll(program, `\`, "/"))
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	return base == command.Short
}
