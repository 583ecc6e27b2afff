package cmd

import (
	"io"

	"github.com/shiroyk/biscuit/lib/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configGenArg string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "biscuit configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configGenArg != "" {
			return config.WriteConfig(configGenArg, config.DefaultConfig())
		}
		return printConfig(cmd.OutOrStdout(), cfg)
	},
}

// printConfig writes the configuration as YAML.
func printConfig(w io.Writer, c *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	configCmd.Flags().StringVarP(&configGenArg, "gen", "g", "", "generate default configuration file")
	rootCmd.AddCommand(configCmd)
}
