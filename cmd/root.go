package cmd

import (
	"log/slog"
	"os"

	"github.com/shiroyk/biscuit/lib/config"
	"github.com/shiroyk/biscuit/lib/logger"
	"github.com/spf13/cobra"
)

var (
	configArg string
	debugMode bool
	cfg       = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:          "biscuit",
	Short:        "biscuit is an HTTP cookie codec and demo cookie server.",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configArg, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "output debug log")
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	c, err := config.ReadConfig(configArg)
	if err != nil {
		slog.Error("error reading config file", "error", err)
	} else {
		cfg = c
	}
	slog.SetDefault(slog.New(loggerHandler(cfg.Log)))
}

func loggerHandler(opt config.LogOptions) slog.Handler {
	level, err := logger.ParseLevel(opt.Level)
	if err != nil {
		slog.Warn("unknown log level", "level", opt.Level)
	}
	if debugMode {
		level = slog.LevelDebug
	}
	return logger.NewConsoleHandler(os.Stderr, level, opt.NoColor)
}
