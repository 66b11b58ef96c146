package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Defacto2/repkg"
	"github.com/Defacto2/repkg/config"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [PKG, TEX or directory]",
		Short: "Extract PKG files and convert TEX files into images",
		Long: `Extract unpacks Wallpaper Engine PKG files and converts TEX files into images.
Directories are always searched recursively. Without an input, the saved input is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			f := cmd.Flags()
			s.Input = inputArg(args, s.Input)
			stringFlag(f, "output", &s.Output)
			boolFlag(f, "tex", &s.Tex)
			boolFlag(f, "singledir", &s.SingleDir)
			boolFlag(f, "usename", &s.UseName)
			boolFlag(f, "no-tex-convert", &s.NoTexConvert)
			boolFlag(f, "overwrite", &s.Overwrite)
			boolFlag(f, "copyproject", &s.CopyProject)
			stringFlag(f, "exts-only", &s.ExtsOnly)
			stringFlag(f, "exts-ignore", &s.ExtsIgnore)
			return a.run(cmd, repkg.Extract, s)
		},
	}
	f := cmd.Flags()
	f.StringP("output", "o", "", "output directory")
	f.BoolP("tex", "t", false, "convert all TEX files into images")
	f.BoolP("singledir", "s", false, "put all extracted files in one directory instead of their entry path")
	f.BoolP("usename", "n", false, "use the name from project.json as the project subfolder name instead of the id")
	f.Bool("no-tex-convert", false, "do not convert TEX files into images while extracting the PKG")
	f.Bool("overwrite", false, "overwrite all existing files")
	f.BoolP("copyproject", "c", false, "copy project.json and preview.jpg from beside the PKG into the output directory")
	f.StringP("exts-only", "e", "", "only extract files with these comma separated extensions")
	f.StringP("exts-ignore", "i", "", "do not extract files with these comma separated extensions")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [PKG, TEX or directory]",
		Short: "Print information about PKG and TEX files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings
			f := cmd.Flags()
			s.Input = inputArg(args, s.Input)
			stringFlag(f, "sortby", &s.SortBy)
			boolFlag(f, "sort", &s.Sort)
			boolFlag(f, "printentries", &s.PrintEntries)
			boolFlag(f, "tex", &s.InfoTex)
			stringFlag(f, "projectinfo", &s.ProjectInfo)
			stringFlag(f, "title-filter", &s.TitleFilter)
			if s.SortBy != "" && !slices.Contains(repkg.SortKeys(), s.SortBy) {
				return fmt.Errorf("sortby %q must be one of %s", s.SortBy, strings.Join(repkg.SortKeys(), ", "))
			}
			return a.run(cmd, repkg.Info, s)
		},
	}
	f := cmd.Flags()
	f.StringP("sortby", "b", repkg.SortName, "sort by "+strings.Join(repkg.SortKeys(), ", "))
	f.BoolP("sort", "s", false, "sort entries ascending")
	f.BoolP("printentries", "e", false, "print the entries in the packages")
	f.BoolP("tex", "t", false, "dump information about all TEX files")
	f.StringP("projectinfo", "p", "", "project.json keys to print, * for all")
	f.String("title-filter", "", "only show projects with a matching title")
	return cmd
}

// run validates, builds and executes the RePKG command line for the settings.
func (a *app) run(cmd *cobra.Command, mode repkg.Mode, s config.Settings) error {
	if err := repkg.Validate(mode, s.Input, s.Output); err != nil {
		return err
	}
	override := s.Program
	if a.program != "" {
		override = a.program
	}
	program, err := repkg.Locate(override)
	if err != nil {
		if !a.dryRun {
			return err
		}
		program = repkg.Names()[0]
	}
	argv := repkg.Build(program, mode, s.Input, s.Output, s.ExtractOptions(), s.InfoOptions())
	if a.save {
		s.Mode = string(mode)
		if err := config.Save(a.path, s); err != nil {
			return err
		}
		a.logger.Debug("settings saved", zap.String("file", a.path))
	}
	if a.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(argv, " "))
		return nil
	}
	r := repkg.Runner{Logger: a.logger, Timeout: a.timeout}
	logging := s.Log && !a.noLog
	if logging {
		name := s.LogFile
		if a.logFile != "" {
			name = a.logFile
		}
		r.Journal = repkg.NewJournal(name, 0)
		defer r.Journal.Close()
	}
	res := r.Execute(cmd.Context(), argv, logging)
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(res.Stdout, "\n"))
	if res.Stderr != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), strings.TrimRight(res.Stderr, "\n"))
	}
	if a.copy {
		if err := clipboard.WriteAll(res.Stdout); err != nil {
			a.logger.Warn("clipboard copy failed", zap.Error(err))
		}
	}
	if !res.Succeeded {
		if res.Stderr == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "command failed")
		}
		return errFailed
	}
	return nil
}

func inputArg(args []string, saved string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	return saved
}

// boolFlag replaces the setting when the named flag was given.
func boolFlag(f *pflag.FlagSet, name string, setting *bool) {
	if !f.Changed(name) {
		return
	}
	if v, err := f.GetBool(name); err == nil {
		*setting = v
	}
}

// stringFlag replaces the setting when the named flag was given.
// Surrounding whitespace is removed so a blank value unsets the option.
func stringFlag(f *pflag.FlagSet, name string, setting *string) {
	if !f.Changed(name) {
		return
	}
	if v, err := f.GetString(name); err == nil {
		*setting = strings.TrimSpace(v)
	}
}
