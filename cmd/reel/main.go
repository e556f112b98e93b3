// Command reel plays a slideshow deck in the terminal.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("reel: %v", err)
		os.Exit(1)
	}
}
