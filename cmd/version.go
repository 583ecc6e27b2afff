package cmd

import (
	"github.com/shiroyk/biscuit/lib"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%v\n biscuit %v/%v\n", lib.Banner, lib.Version, lib.CommitSHA)
		},
	})
}
