package cli

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	daemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/infraguide/internal/config"
	"github.com/3-lines-studio/infraguide/internal/server"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		addr       string
		daemonMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.cfg.Server.Address = addr
				if err := opts.cfg.Validate(); err != nil {
					return err
				}
			}

			for _, w := range serveWarnings(opts.cfg, daemonMode, runtime.GOOS) {
				opts.output.PrintWarning("%s", w)
			}

			if daemonMode {
				cntxt := &daemon.Context{
					PidFileName: opts.cfg.Server.PidFile,
					PidFilePerm: 0o644,
				}
				child, err := cntxt.Reborn()
				if err != nil {
					return err
				}
				if child != nil {
					opts.output.PrintSuccess("Started in background (pid %d)", child.Pid)
					return nil
				}
				defer cntxt.Release()
			}

			app, err := opts.newApp()
			if err != nil {
				return err
			}
			defer app.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(opts.cfg, app).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.address")
	cmd.Flags().BoolVar(&daemonMode, "daemon", false, "run in background")
	return cmd
}

// serveWarnings lists settings worth flagging before the server starts.
func serveWarnings(cfg config.Config, daemonMode bool, goos string) []string {
	var out []string
	if cfg.Dev {
		out = append(out, "dev mode: render cache off, error details shown to clients")
	}
	if !cfg.Cache.Enabled && !cfg.Dev {
		out = append(out, "render cache disabled; every request renders its page")
	}
	if daemonMode && (goos == "windows" || goos == "plan9") {
		out = append(out, "--daemon is not supported on "+goos)
	}
	return out
}
