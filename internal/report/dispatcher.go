package report

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Dispatcher runs each report on its own goroutine so the game loop never
// waits on the network. It implements core.ScoreSink.
type Dispatcher struct {
	reporter Reporter
	logger   *log.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

var _ core.ScoreSink = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. A nil logger discards failures.
func NewDispatcher(r Reporter, logger *log.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{reporter: r, logger: logger, timeout: timeout}
}

// Submit sends the result in the background. It is never retried.
func (d *Dispatcher) Submit(gameName string, score int, userID string) {
	res := Result{GameName: gameName, Score: score, UserID: userID}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.reporter.Report(ctx, res); err != nil {
			if d.logger != nil {
				d.logger.Warn("score report failed", "game", res.GameName, "user", res.UserID, "score", res.Score, "error", err)
			}
			return
		}
		if d.logger != nil {
			d.logger.Debug("score reported", "game", res.GameName, "user", res.UserID, "score", res.Score)
		}
	}()
}

// Wait blocks until every submitted report has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
