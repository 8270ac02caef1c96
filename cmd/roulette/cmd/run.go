package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/cli"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Execute a roulette command script",
	Long: `Execute a roulette command script from a file, or from stdin when no
file is given. See 'roulette help script' for the command set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, name, err := openScript(args)
		if err != nil {
			return err
		}

		engine, err := script.NewEngine(cli.Version)
		if err != nil {
			return err
		}
		session := script.NewSession(os.Stdout)
		session.Settings = cfg.Settings()
		session.Register(engine)

		if err := engine.Run(src, colorEnabled(cfg), cfg.ShowSource); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
