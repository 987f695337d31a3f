package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ramanasai/dailyhub/internal/config"
	"github.com/ramanasai/dailyhub/internal/logging"
)

var (
	configPath string
	logFile    string
	debug      bool

	cfg       config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "dailyhub",
	Short:         "Notes, tasks and a calendar in your terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runTUI,
}

// Execute runs the root command. The log file is closed on every path,
// including commands that fail.
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "dailyhub: close log:", err)
	}
	logger, logCloser = zerolog.Nop(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dailyhub/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logFile != "" {
			cfg.Log.File = logFile
		}
		if debug {
			cfg.Log.Level = "debug"
		}
		logger, logCloser, err = logging.New(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		logger.Debug().Str("command", cmd.Name()).Msg("start")
		return nil
	}
	rootCmd.AddCommand(tuiCmd, routeCmd, versionCmd)
}
