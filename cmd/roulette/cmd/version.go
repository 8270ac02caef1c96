package cmd

import (
	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintVersion("roulette")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
