package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/roulette"
)

var spinFlags struct {
	size           int
	rounds         int
	steps          int
	textColor      string
	highlightColor string
	maxFPS         int
	maxTPS         int
	showMetrics    bool
	preciseTiming  bool
}

var spinCmd = &cobra.Command{
	Use:   "spin <entries>",
	Short: "Spin the wheel once",
	Long: `Spin a roulette with numbered entries and randomly select one.

The positional argument is the number of entries on the wheel. Flags override
values from the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		settings := cfg.Settings()

		entries, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry count %q", args[0])
		}
		settings.Entries = entries
		applySpinFlags(cmd, &settings)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		winner, err := runSpin(ctx, settings)
		if err != nil {
			return err
		}
		fmt.Printf("Winning number: %d\n", winner)
		return nil
	},
}

// applySpinFlags copies only the flags the user actually set, so config file
// values survive for the rest.
func applySpinFlags(cmd *cobra.Command, settings *roulette.Settings) {
	flags := cmd.Flags()
	if flags.Changed("size") {
		settings.Size = spinFlags.size
	}
	if flags.Changed("rounds") {
		settings.Rounds = spinFlags.rounds
	}
	if flags.Changed("steps") {
		settings.Steps = spinFlags.steps
	}
	if flags.Changed("text-color") {
		settings.TextColor = spinFlags.textColor
	}
	if flags.Changed("highlight-color") {
		settings.HighlightColor = spinFlags.highlightColor
	}
	if flags.Changed("max-fps") {
		settings.MaxFPS = spinFlags.maxFPS
	}
	if flags.Changed("max-tps") {
		settings.MaxTPS = spinFlags.maxTPS
	}
	if flags.Changed("show-metrics") {
		settings.ShowMetrics = spinFlags.showMetrics
	}
	if flags.Changed("precise-timing") {
		settings.PreciseTiming = spinFlags.preciseTiming
	}
}

func runSpin(ctx context.Context, settings roulette.Settings) (int, error) {
	animator, err := roulette.NewAnimator(settings, os.Stdout)
	if err != nil {
		return 0, err
	}
	return animator.Run(ctx)
}

func init() {
	flags := spinCmd.Flags()
	flags.IntVar(&spinFlags.size, "size", 50, "width of the wheel display in columns")
	flags.IntVar(&spinFlags.rounds, "rounds", 10, "full circles to spin before stopping")
	flags.IntVar(&spinFlags.steps, "steps", 200, "animation steps (smoothness/speed)")
	flags.StringVar(&spinFlags.textColor, "text-color", "000000", "hex color code for text")
	flags.StringVar(&spinFlags.highlightColor, "highlight-color", "FF0000", "hex color code for the pointed entry")
	flags.IntVar(&spinFlags.maxFPS, "max-fps", 60, "maximum FPS for rendering (0 = uncapped)")
	flags.IntVar(&spinFlags.maxTPS, "max-tps", 100, "maximum TPS for logic updates (0 = uncapped)")
	flags.BoolVar(&spinFlags.showMetrics, "show-metrics", false, "show FPS/TPS stats")
	flags.BoolVar(&spinFlags.preciseTiming, "precise-timing", false, "high-precision timing using busy wait")

	rootCmd.AddCommand(spinCmd)
}
