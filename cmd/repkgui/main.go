// Command repkgui runs the RePKG extractor with options remembered between runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/Defacto2/repkg"
	"github.com/Defacto2/repkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is the application version, set via ldflags.
var version = "dev"

var errFailed = errors.New("repkg did not complete")

// app holds the global flags and the state shared by the subcommands.
type app struct {
	cfgFile  string
	program  string
	logFile  string
	noLog    bool
	verbose  bool
	dryRun   bool
	save     bool
	copy     bool
	timeout  time.Duration
	settings config.Settings
	path     string
	logger   *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "repkgui",
		Short:         "repkgui extracts and inspects Wallpaper Engine PKG and TEX files using RePKG.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "settings file (default is repkg/"+config.Name+" in the user config directory)")
	f.StringVar(&a.program, "program", "", "path to the RePKG executable (default searches beside this program and the PATH)")
	f.StringVar(&a.logFile, "log-file", "", "journal file to append each run to (default "+repkg.LogName+")")
	f.BoolVar(&a.noLog, "no-log", false, "do not append this run to the journal")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "print debug diagnostics to stderr")
	f.BoolVar(&a.dryRun, "dry-run", false, "print the RePKG command line without running it")
	f.BoolVar(&a.save, "save", false, "remember the mode, paths and options of this run")
	f.BoolVar(&a.copy, "clipboard", false, "copy the RePKG output to the clipboard")
	f.DurationVar(&a.timeout, "timeout", 0, "stop RePKG after this duration (default waits until it finishes)")
	root.AddCommand(newExtractCmd(a), newInfoCmd(a), newConfigCmd(a))
	return root
}

// load reads the settings and creates the diagnostics logger.
func (a *app) load() error {
	a.logger = newLogger(a.verbose)
	path, err := config.Path(a.cfgFile)
	if err != nil {
		return err
	}
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	a.path = path
	a.settings = s
	a.logger.Debug("settings loaded", zap.String("file", path))
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
