package repkg

import (
	"github.com/Defacto2/repkg/command"
)

// Package file build.go contains the command line construction.

// ExtractOptions are the extract mode toggles.
// The zero value requests a plain recursive extraction.
type ExtractOptions struct {
	Tex          bool   // Tex converts all TEX files into images.
	SingleDir    bool   // SingleDir puts all extracted files into one directory.
	UseName      bool   // UseName names the project subfolder from project.json.
	NoTexConvert bool   // NoTexConvert skips converting TEX files while extracting.
	Overwrite    bool   // Overwrite replaces existing files.
	CopyProject  bool   // CopyProject copies project.json and preview.jpg into the output.
	ExtsOnly     string // ExtsOnly is a comma separated list of extensions to extract.
	ExtsIgnore   string // ExtsIgnore is a comma separated list of extensions to skip.
}

// InfoOptions are the info mode toggles.
type InfoOptions struct {
	SortBy       string // SortBy is the sort key, name, extension or size.
	Sort         bool   // Sort orders the entries ascending.
	PrintEntries bool   // PrintEntries lists the entries in the packages.
	InfoTex      bool   // InfoTex dumps info about the TEX files.
	ProjectInfo  string // ProjectInfo is the project.json keys to print.
	TitleFilter  string // TitleFilter only shows projects with a matching title.
}

// Command is a single RePKG invocation.
//
//	func Unpack() {
//	    c := repkg.Command{
//	        Program: "RePKG.exe",
//	        Mode:    repkg.Extract,
//	        Input:   "scene.pkg",
//	        Output:  "output",
//	        Extract: repkg.ExtractOptions{Overwrite: true},
//	    }
//	    fmt.Println(c.Args())
//	}
type Command struct {
	Program string         // Program is the path of the RePKG executable.
	Mode    Mode           // Mode is the operation.
	Input   string         // Input is the PKG or TEX file or a directory of them.
	Output  string         // Output is the extraction directory, ignored by info.
	Extract ExtractOptions // Extract is only used by the extract mode.
	Info    InfoOptions    // Info is only used by the info mode.
}

// Args returns the command line, starting with the program, mode and input.
// The result depends only on the command values and the order is fixed
// as RePKG reads the paths by position.
func (c Command) Args() []string {
	args := []string{c.Program, string(c.Mode), c.Input}
	switch c.Mode {
	case Extract:
		if c.Output != "" {
			args = append(args, command.Output, c.Output)
		}
		args = append(args, c.Extract.args()...)
	case Info:
		args = append(args, c.Info.args()...)
	}
	return args
}

func (x ExtractOptions) args() []string {
	args := []string{command.Recursive}
	flags := []struct {
		on   bool
		flag string
	}{
		{x.Tex, command.Tex},
		{x.SingleDir, command.SingleDir},
		{x.UseName, command.UseName},
		{x.NoTexConvert, command.NoTexConvert},
		{x.Overwrite, command.Overwrite},
		{x.CopyProject, command.CopyProject},
	}
	for _, f := range flags {
		if f.on {
			args = append(args, f.flag)
		}
	}
	if x.ExtsOnly != "" {
		args = append(args, command.OnlyExts, x.ExtsOnly)
	}
	if x.ExtsIgnore != "" {
		args = append(args, command.IgnoreExts, x.ExtsIgnore)
	}
	return args
}

func (i InfoOptions) args() []string {
	var args []string
	// the sort key must come before the other info flags
	if i.SortBy != "" {
		args = append(args, command.SortBy, i.SortBy)
	}
	if i.Sort {
		args = append(args, command.Sort)
	}
	if i.PrintEntries {
		args = append(args, command.PrintEntries)
	}
	if i.InfoTex {
		args = append(args, command.InfoTex)
	}
	if i.ProjectInfo != "" {
		args = append(args, command.ProjectInfo, i.ProjectInfo)
	}
	if i.TitleFilter != "" {
		args = append(args, command.TitleFilter, i.TitleFilter)
	}
	return args
}

// Build returns the RePKG command line for the mode.
// The output path and the extract options are only used by the [Extract] mode,
// the info options are only used by the [Info] mode.
func Build(program string, mode Mode, input, output string, x ExtractOptions, i InfoOptions) []string {
	return Command{
		Program: program,
		Mode:    mode,
		Input:   input,
		Output:  output,
		Extract: x,
		Info:    i,
	}.Args()
}
