package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/dailyhub/internal/notify"
	"github.com/ramanasai/dailyhub/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open TUI",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts := []ui.Option{ui.WithLogger(logger)}
	if cfg.Notify.OnAllDone {
		opts = append(opts, ui.WithNotifier(notify.Desktop{}))
	}
	if err := ui.Run(cfg, opts...); err != nil {
		logger.Error().Err(err).Msg("tui exited with error")
		return err
	}
	return nil
}
