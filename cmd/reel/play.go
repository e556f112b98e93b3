package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/reel"
	"github.com/zoobzio/reel/internal/logging"
	"github.com/zoobzio/reel/internal/tui"
)

type playOpts struct {
	logFile  string
	debug    bool
	debounce time.Duration
}

func newPlayCmd() *cobra.Command {
	opts := playOpts{}
	cmd := &cobra.Command{
		Use:   "play DECK",
		Short: "Play a deck, reloading it whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.logFile, "log-file", "reel.log", "write log messages to this file, empty to disable")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "log phase changes and selector redraws")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", reel.DefaultDebounce, "wait this long after a deck change before reloading")
	return cmd
}

func runPlay(parent context.Context, path string, opts playOpts) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log, closeLog, err := logging.New(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()
	logging.Bridge(log)
	defer capitan.Shutdown()

	loop := reel.NewLoop()
	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("scheduler loop exited")
		}
	}()

	target := tui.NewTarget()
	show := reel.NewSlideshow(loop)
	reloader := reel.NewReloader(reel.NewFileWatcher(path), show, target).
		Codec(reel.CodecFor(path)).
		Debounce(opts.debounce).
		ErrorHistorySize(8)

	if err := reloader.Start(ctx); err != nil {
		return fmt.Errorf("play %s: %w", path, err)
	}

	err = tui.Run(ctx, tui.NewModel(filepath.Base(path), target))
	cancel()
	return err
}
