package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/finetune/internal/logging"
	"github.com/idilsaglam/finetune/internal/model"
	"github.com/idilsaglam/finetune/internal/server"
	"github.com/idilsaglam/finetune/internal/ui"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development API server",
		Long: `Serves /hello, /api/hello and /metrics until interrupted.

The page's default backend URL points at this server's default address.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			logger, err := logging.New("-", cfg.Log.Level, root.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			theme := ui.ThemeByName(cfg.Theme)
			ready := make(chan net.Addr, 1)
			defer close(ready)
			go func() {
				if a, ok := <-ready; ok {
					ui.OK(cmd.OutOrStdout(), theme, fmt.Sprintf("listening on http://%s", a))
				}
			}()
			srv := server.New(logger.Named("server"), model.DefaultGreeting)
			return srv.ListenAndServe(cmd.Context(), addr, ready)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8000)")
	return cmd
}
