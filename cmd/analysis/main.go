// Command analysis compares symNMF and k-means clusterings of a point file
// by mean silhouette score.
//
// Usage:
//
//	analysis [--config file.toml] [--log-level level] <k> <file>
//
// Output:
//
//	nmf: 0.8586
//	kmeans: 0.8586
//
// On any failure the single line "An Error Has Occurred" is printed and the
// exit status is 1.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

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
		Use:   "analysis <k> <file>",
		Short: "Compare symNMF and k-means silhouette scores",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := engine.ParseK(args[0])
			if err != nil {
				return err
			}
			eng, err := app.Engine()
			if err != nil {
				return err
			}
			points, err := eng.Load(args[1])
			if err != nil {
				return err
			}
			rep, err := eng.Analyze(k, points)
			if err != nil {
				return err
			}

			return app.Emit(func(w io.Writer) error {
				_, err := rep.WriteTo(w)
				return err
			})
		},
	}
	app.Bind(cmd)

	return cmd
}
