// Command symnmf prints one matrix of the symNMF pipeline for a point file.
//
// Usage:
//
//	symnmf [--config file.toml] [--log-level level] <k> <goal> <file>
//
// goal is one of sym (similarity A), ddg (degree D), norm (normalized W)
// or symnmf (factor H, requires 1 <= k <= n). Each output row is printed as
// comma-separated values with four decimals. On any failure the single
// line "An Error Has Occurred" is printed and the exit status is 1.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symnmf/dataset"
	"github.com/katalvlaran/symnmf/engine"
	"github.com/katalvlaran/symnmf/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := &cli.App{Stdout: stdout, Stderr: stderr}

	return app.Execute(newRootCommand(app), args)
}

func newRootCommand(app *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symnmf <k> <goal> <file>",
		Short: "Print the sym, ddg, norm or symnmf matrix of a point file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := engine.ParseK(args[0])
			if err != nil {
				return err
			}
			goal, err := engine.ParseGoal(args[1])
			if err != nil {
				return err
			}
			eng, err := app.Engine()
			if err != nil {
				return err
			}
			points, err := eng.Load(args[2])
			if err != nil {
				return err
			}
			m, err := eng.Run(goal, k, points)
			if err != nil {
				return err
			}

			return app.Emit(func(w io.Writer) error {
				return dataset.Format(w, m)
			})
		},
	}
	app.Bind(cmd)

	return cmd
}
