package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/parser"
)

var checkNoSource bool

var (
	checkOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	checkFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

var checkCmd = &cobra.Command{
	Use:   "check [script]",
	Short: "Validate a script without running it",
	Long: `Parse a roulette command script and report every syntax error without
executing anything. Reads stdin when no file is given.`,
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

		color := colorEnabled(cfg)
		p := parser.NewWithOptions(src, color, cfg.ShowSource && !checkNoSource)

		commands, errors := 0, 0
		for {
			command, err := p.ParseCommand()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				errors++
				continue
			}
			if command.IsEmpty() {
				break
			}
			commands++
		}

		summary := fmt.Sprintf("%s: %d command(s), %d error(s)", name, commands, errors)
		if errors > 0 {
			fmt.Println(styled(checkFailStyle, color, summary))
			return fmt.Errorf("check failed with %d error(s)", errors)
		}
		fmt.Println(styled(checkOKStyle, color, summary))
		return nil
	},
}

func styled(style lipgloss.Style, color bool, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoSource, "no-source", false, "omit source snippets from diagnostics")
	rootCmd.AddCommand(checkCmd)
}
