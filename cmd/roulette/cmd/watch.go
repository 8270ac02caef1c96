package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/cli"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/script"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

var watchCmd = &cobra.Command{
	Use:   "watch <script>",
	Short: "Re-run a script whenever it changes",
	Long: `Execute the script, then watch it for changes and re-run it on every
write. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := args[0]

		runOnce := func() {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			engine, err := script.NewEngine(cli.Version)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			session := script.NewSession(os.Stdout)
			session.Settings = cfg.Settings()
			session.Register(engine)

			src := stream.NewBufferStream(string(data))
			if err := engine.Run(src, colorEnabled(cfg), cfg.ShowSource); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		// Watch the directory: editors often replace the file on save, which
		// would drop a watch on the file itself.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runOnce()
		fmt.Fprintf(os.Stderr, "watching %s\n", path)

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					runOnce()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintln(os.Stderr, err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
