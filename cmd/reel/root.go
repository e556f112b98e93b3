package main

import "github.com/spf13/cobra"

var longRootCmdDescription = `reel cycles the slides of a deck file through a fade-out, swap,
pause, fade-in loop. Decks are YAML, JSON or TOML:

  strategy: sequential      # or random (default)
  durations:                # milliseconds, all optional
    show: 3000
    pause: 100
    fade_in: 1000
    fade_out: 1000
  slides:
    - "first slide"
    - "second slide"
`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reel",
		Short:         "Play slideshow decks in the terminal",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newPlayCmd(), newCheckCmd())
	return cmd
}
