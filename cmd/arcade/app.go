package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/logging"
	"github.com/vovakirdan/mini-arcade/internal/report"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

const reportTimeout = 10 * time.Second

// app holds what every interactive command shares: the logger, the local
// score store and the score reporter.
type app struct {
	logger     *log.Logger
	logOut     io.Closer
	store      *storage.Store
	dispatcher *report.Dispatcher
}

// newApp builds the shared services from the global flags. Local play logs to
// the log file because the alternate screen owns the terminal; serving logs
// to stderr.
func newApp(prefix string, toStderr bool) (*app, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{}
	var out io.Writer = os.Stderr
	if !toStderr {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
			out = io.Discard
		} else {
			out, a.logOut = f, f
		}
	}
	a.logger = logging.New(out, prefix, level)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Games still work without a leaderboard.
		a.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		a.store = store
	}

	if flagReportURL != "" {
		a.dispatcher = report.NewDispatcher(
			report.NewHTTPReporter(flagReportURL, nil),
			a.logger.WithPrefix(prefix+"-report"),
			reportTimeout,
		)
	}
	return a, nil
}

// scores returns the sink for final scores, or nil when reporting is off.
func (a *app) scores() core.ScoreSink {
	if a.dispatcher == nil {
		return nil
	}
	return a.dispatcher
}

// runtimeConfig returns the game config for the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.UserID = flagUser
	cfg.Scores = a.scores()
	return cfg
}

// Close waits for in-flight score reports and releases resources.
func (a *app) Close() {
	if a.dispatcher != nil {
		a.dispatcher.Wait()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("could not close scores database", "error", err)
		}
	}
	if a.logOut != nil {
		a.logOut.Close()
	}
}
