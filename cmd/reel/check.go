package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zoobzio/reel"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DECK",
		Short: "Validate a deck and print its effective timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(out io.Writer, path string) error {
	deck, err := reel.LoadDeck(path)
	if err != nil {
		return err
	}
	strategy, err := deck.Mode()
	if err != nil {
		return err
	}
	d := deck.Durations().WithDefaults()

	fmt.Fprintf(out, "deck:      %s\n", path)
	fmt.Fprintf(out, "slides:    %d\n", len(deck.Slides))
	fmt.Fprintf(out, "strategy:  %s\n", strategy)
	fmt.Fprintf(out, "fade out:  %v\n", d.FadeOut)
	fmt.Fprintf(out, "pause:     %v\n", d.Pause)
	fmt.Fprintf(out, "fade in:   %v\n", d.FadeIn)
	fmt.Fprintf(out, "show:      %v\n", d.Show)
	fmt.Fprintf(out, "cycle:     %v\n", d.Cycle())
	if len(deck.Slides) == 1 && strategy == reel.StrategyRandom {
		fmt.Fprintln(out, "note:      a single slide repeats under the random strategy")
	}
	return nil
}
