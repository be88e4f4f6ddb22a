package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/finetune/internal/backend"
	"github.com/idilsaglam/finetune/internal/home"
	"github.com/idilsaglam/finetune/internal/logging"
	"github.com/idilsaglam/finetune/internal/ui"
)

func newHomeCmd(root *rootOptions) *cobra.Command {
	var (
		once   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the welcome page",
		Long: `Opens the welcome page. The page fetches the greeting once and shows it.

With --once the page is rendered without a terminal UI: it waits for the
fetch to settle, prints the page as text or html and exits.`,
		Example: `  chatbot home
  chatbot home --once --format html
  chatbot home --backend-url http://localhost:9000/`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "html" {
				return usagef("home: --format must be text or html, got %q", format)
			}
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.File, cfg.Log.Level, root.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			client := backend.New(backend.Options{
				BaseURL:   cfg.BackendURL,
				Timeout:   cfg.Timeout,
				RequireOK: cfg.RequireOK,
			})
			pageOpts := []home.Option{
				home.WithLogger(logger.Named("home")),
				home.WithTheme(ui.ThemeByName(cfg.Theme)),
				home.WithContext(cmd.Context()),
			}
			progOpts := []tea.ProgramOption{tea.WithAltScreen()}
			if once {
				pageOpts = append(pageOpts, home.QuitAfterFetch())
				progOpts = []tea.ProgramOption{tea.WithInput(nil), tea.WithoutRenderer(), tea.WithOutput(io.Discard)}
			}

			final, err := home.Run(cmd.Context(), home.New(client, pageOpts...), progOpts...)
			if err != nil {
				// A signal cancelled the context: leave like a normal quit.
				if !errors.Is(err, tea.ErrProgramKilled) || cmd.Context().Err() == nil {
					return fmt.Errorf("tui: %w", err)
				}
				logger.Debug("page closed by cancellation", zap.Error(err))
			}
			if once {
				out := final.Text()
				if format == "html" {
					out = final.HTML()
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "render once after the fetch settles and exit")
	cmd.Flags().StringVar(&format, "format", "text", "output format for --once: text or html")
	return cmd
}
