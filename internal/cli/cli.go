// Package cli holds the plumbing shared by the symnmf and analysis
// commands: common flags, engine construction and the uniform failure
// report.
package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/symnmf/config"
	"github.com/katalvlaran/symnmf/engine"
	"github.com/katalvlaran/symnmf/logutil"
)

// FailureMessage is the only line printed to stdout when a command fails.
const FailureMessage = "An Error Has Occurred"

// App carries the shared flags and output streams of one invocation.
type App struct {
	ConfigPath string
	LogLevel   string

	Stdout io.Writer
	Stderr io.Writer

	logger *zap.Logger
}

// Bind registers the shared flags on cmd.
func (a *App) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.ConfigPath, "config", "", "path to a TOML configuration file")
	cmd.Flags().StringVar(&a.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// Engine loads the configuration, applies the log-level override and
// returns an engine logging to Stderr.
func (a *App) Engine() (*engine.Engine, error) {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}
	if a.logger, err = logutil.New(cfg.Log.Level, cfg.Log.Format, a.Stderr); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	return engine.New(cfg, a.logger), nil
}

// Emit renders through a buffer and copies it to Stdout only when render
// succeeds, so a failure never leaves partial output behind.
func (a *App) Emit(render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(a.Stdout)

	return err
}

// Execute runs cmd with args and returns the process exit code. Any error
// is logged to Stderr and reported on Stdout as FailureMessage.
func (a *App) Execute(cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{} // cobra reads os.Args for nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil {
		a.sync()
		return 0
	}
	if a.logger == nil {
		// failed before the configured logger existed
		a.logger, _ = logutil.New("error", "console", a.Stderr)
	}
	a.logger.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
	a.sync()
	fmt.Fprintln(a.Stdout, FailureMessage)

	return 1
}

func (a *App) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
