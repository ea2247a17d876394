package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gobeaver/filemagic"
	"github.com/gobeaver/filemagic/internal/logging"
	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Detect files as they appear in a directory",
	Long: `Watch DIR and detect every file created or written in it that matches
--pattern. A pattern containing ** also watches subdirectories. Runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob filter (default FILEMAGIC_WATCH_PATTERN)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if watchPattern != "" {
		cfg.WatchPattern = watchPattern
	}

	log := logging.GetLogger("watch")
	d, err := filemagic.New(cfg, filemagic.WithLogger(log))
	if err != nil {
		return err
	}

	w, err := filemagic.NewWatcher(d, args[0], cfg.WatchPattern)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("dir", args[0]).Str("pattern", cfg.WatchPattern).Msg("watching, press Ctrl+C to stop")

	s := newStyles(colorEnabled())
	out := cmd.OutOrStdout()
	for res := range results {
		fmt.Fprintln(out, s.line(res))
	}
	return nil
}
