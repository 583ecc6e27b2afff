package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiroyk/biscuit/api"
	"github.com/shiroyk/biscuit/lib/config"
	"github.com/spf13/cobra"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the demo cookie api server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(config.NewContext(ctx, cfg))
	},
}

func serve(ctx context.Context) error {
	opt := config.FromContext(ctx).API
	if serveAddress != "" {
		opt.Address = serveAddress
	}
	if opt.Address == "" {
		opt.Address = api.DefaultAddress
	}
	opt.Logger = slog.Default()

	slog.Info("api server started", "address", opt.Address, "h2c", opt.H2C)
	return api.Start(ctx, api.Server(opt), opt)
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "listen address, overrides the configuration")
	rootCmd.AddCommand(serveCmd)
}
