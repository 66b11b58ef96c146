package repkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Package file run.go contains the RePKG program execution.

// Result is the outcome of a single RePKG run.
// Failures are reported here rather than as errors so that every run can be shown the same way.
type Result struct {
	Stdout    string // Stdout is the standard output or [NoOutput] when it was empty.
	Stderr    string // Stderr is the standard error or a description of why the program could not start.
	Succeeded bool   // Succeeded is true when the program exited with a zero status.
}

// Runner runs RePKG command lines, one at a time per call.
//
//	func Run() {
//	    r := repkg.Runner{Journal: repkg.NewJournal("logs.txt", 0)}
//	    argv := repkg.Build("RePKG.exe", repkg.Info, "scene.pkg", "",
//	        repkg.ExtractOptions{}, repkg.InfoOptions{PrintEntries: true})
//	    res := r.Execute(context.Background(), argv, true)
//	    fmt.Println(res.Stdout)
//	}
type Runner struct {
	Journal *Journal      // Journal receives a record of each logged run, it may be nil.
	Logger  *zap.Logger   // Logger receives diagnostics, it may be nil.
	Timeout time.Duration // Timeout kills the program after the duration, zero waits forever.
}

// Execute runs the argv command line where the first item is the program
// and blocks until it exits. The standard output and error are captured.
//
// A program that cannot be started returns an empty Stdout and the
// reason in Stderr. When logging is true and the runner has a journal,
// one record is appended. A journal failure never changes the result.
func (r Runner) Execute(ctx context.Context, argv []string, logging bool) Result {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	res := r.run(ctx, logger, argv)
	if logging && r.Journal != nil {
		if err := r.Journal.Record(time.Now(), argv, res.Stdout, res.Stderr); err != nil {
			logger.Warn("journal record failed", zap.String("file", r.Journal.Name()), zap.Error(err))
		}
	}
	return res
}

func (r Runner) run(ctx context.Context, logger *zap.Logger, argv []string) Result {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return Result{Stdout: "", Stderr: ErrArgs.Error(), Succeeded: false}
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	logger.Debug("run", zap.Strings("argv", Display(argv)))
	start := time.Now()
	err := cmd.Run()
	if err != nil && !exited(err) {
		logger.Debug("run failed to start", zap.Error(err))
		return Result{Stdout: "", Stderr: launch(argv[0], err), Succeeded: false}
	}
	res := Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Succeeded: err == nil,
	}
	if res.Stdout == "" {
		res.Stdout = NoOutput
	}
	logger.Debug("run finished",
		zap.Int("exit", cmd.ProcessState.ExitCode()),
		zap.Duration("elapsed", time.Since(start)))
	return res
}

// exited returns true if the error is from a program that started and then exited.
func exited(err error) bool {
	var exit *exec.ExitError
	return errors.As(err, &exit)
}

// launch describes why the program could not be started.
func launch(program string, err error) string {
	var pathErr *exec.Error
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("%s: %s", program, pathErr.Err)
	}
	return err.Error()
}

// Execute runs the argv command line without a time limit.
// A record is appended to the journal when it is not nil.
func Execute(ctx context.Context, argv []string, journal *Journal) Result {
	r := Runner{Journal: journal}
	return r.Execute(ctx, argv, journal != nil)
}
