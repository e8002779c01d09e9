// Command kata is the entry point of the kata module. It currently only
// loads its configuration and prints a banner; the algorithms live in the
// library packages.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kata/internal/config"
	"github.com/katalvlaran/kata/internal/logging"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "0.1.0"

const banner = "kata: graph, heap, traversal and search exercises"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "kata",
		Short:         "Graph, heap and array algorithm exercises",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), cfg.Logging)
			log.Debug("configuration loaded", "path", cfgPath, "level", cfg.Logging.Level)

			_, err = fmt.Fprintln(out, banner)
			return err
		},
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a TOML config file")

	return cmd
}
