// Package cli implements the infraguide command.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/infraguide"
	"github.com/3-lines-studio/infraguide/internal/config"
	"github.com/3-lines-studio/infraguide/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
	output *Output
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{output: NewOutput(out, errOut)}

	cmd := &cobra.Command{
		Use:           "infraguide",
		Short:         "Serve or export the multi-region infrastructure guide",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			opts.cfg = cfg
			opts.logger = logging.New(cfg.Log.Level, cfg.Log.Format, errOut)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "infraguide.yaml", "config file; missing file means defaults")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCommand(opts),
		newExportCommand(opts),
		newTFVarsCommand(opts),
	)
	return cmd
}

func (o *rootOptions) newApp() (*infraguide.App, error) {
	routes, err := infraguide.DefaultRoutes(o.cfg.Site)
	if err != nil {
		return nil, err
	}
	return infraguide.New(o.cfg, o.logger, routes...)
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		out := NewOutput(os.Stdout, os.Stderr)
		if errors.Is(err, config.ErrInvalid) {
			out.PrintError("configuration: %v", err)
		} else {
			out.PrintError("%v", err)
		}
		return 1
	}
	return 0
}
