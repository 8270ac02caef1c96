package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/cli"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/config"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "roulette",
	Short: "Console roulette simulator",
	Long: `Spin a numbered roulette wheel in the terminal and randomly select a winner.

Commands:
  spin     - spin the wheel once with flags
  run      - execute a roulette command script
  check    - validate a script without running it
  watch    - re-run a script whenever it changes
  version  - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadConfig reads the --config file, or the default path when present.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault()
}

// colorEnabled reports whether diagnostics should carry ANSI colors: the
// config allows it, --no-color was not given, and stdout is a terminal.
func colorEnabled(cfg config.Config) bool {
	return cfg.Color && !noColor && cli.IsTerminal(os.Stdout.Fd())
}

// openScript returns a raw stream over the script file, or stdin when no
// path is given, together with the name used in messages.
func openScript(args []string) (stream.RawStream, string, error) {
	if len(args) == 0 {
		return stream.NewReaderStream(os.Stdin), "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return stream.NewBufferStream(string(data)), args[0], nil
}
