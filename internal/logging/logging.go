// Package logging writes reel's capitan signals to a logrus logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/reel"
)

// New creates a logger writing to path, or discarding output when path is
// empty. The returned close function releases the file.
func New(path string, debug bool) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

// Bridge hooks the slideshow and reloader signals and logs each of them.
// Phase changes and selector redraws are logged at debug level.
func Bridge(log logrus.FieldLogger) {
	capitan.Hook(reel.SlideshowStarted, func(_ context.Context, e *capitan.Event) {
		strategy, _ := reel.KeyStrategy.From(e)
		count, _ := reel.KeySlideCount.From(e)
		cycle, _ := reel.KeyCycle.From(e)
		log.WithFields(logrus.Fields{
			"strategy": strategy,
			"slides":   count,
			"cycle":    cycle,
		}).Info("slideshow started")
	})

	capitan.Hook(reel.SlideshowStopped, func(_ context.Context, e *capitan.Event) {
		phase, _ := reel.KeyPhase.From(e)
		index, _ := reel.KeySlideIndex.From(e)
		log.WithFields(logrus.Fields{
			"phase": phase,
			"index": index,
		}).Info("slideshow stopped")
	})

	capitan.Hook(reel.SlideshowPhaseChanged, func(_ context.Context, e *capitan.Event) {
		from, _ := reel.KeyOldPhase.From(e)
		to, _ := reel.KeyNewPhase.From(e)
		log.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		}).Debug("phase changed")
	})

	capitan.Hook(reel.SlideshowSlideShown, func(_ context.Context, e *capitan.Event) {
		index, _ := reel.KeySlideIndex.From(e)
		log.WithField("index", index).Info("slide shown")
	})

	capitan.Hook(reel.SelectorRedraw, func(_ context.Context, e *capitan.Event) {
		draws, _ := reel.KeyDraws.From(e)
		log.WithField("draws", draws).Debug("random slide redrawn")
	})

	capitan.Hook(reel.SelectorExhausted, func(_ context.Context, e *capitan.Event) {
		draws, _ := reel.KeyDraws.From(e)
		count, _ := reel.KeySlideCount.From(e)
		log.WithFields(logrus.Fields{
			"draws":  draws,
			"slides": count,
		}).Warn("random draw limit reached")
	})

	capitan.Hook(reel.ReloaderStateChanged, func(_ context.Context, e *capitan.Event) {
		from, _ := reel.KeyOldState.From(e)
		to, _ := reel.KeyNewState.From(e)
		entry := log.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		})
		if to == reel.DeckStale.String() || to == reel.DeckRejected.String() {
			entry.Warn("deck state changed")
			return
		}
		entry.Info("deck state changed")
	})

	failed := func(stage string) func(context.Context, *capitan.Event) {
		return func(_ context.Context, e *capitan.Event) {
			msg, _ := reel.KeyError.From(e)
			log.WithField("stage", stage).Error(msg)
		}
	}
	capitan.Hook(reel.ReloaderDecodeFailed, failed("decode"))
	capitan.Hook(reel.ReloaderValidationFailed, failed("validate"))
	capitan.Hook(reel.ReloaderApplyFailed, failed("apply"))

	capitan.Hook(reel.ReloaderApplySucceeded, func(_ context.Context, e *capitan.Event) {
		count, _ := reel.KeySlideCount.From(e)
		log.WithField("slides", count).Info("deck applied")
	})
}
