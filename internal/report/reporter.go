// Package report delivers final scores to a remote leaderboard.
// Delivery is fire-and-forget: failures are logged and never reach the game.
package report

import "context"

// Result is a finished session's score.
type Result struct {
	GameName string `json:"gameName"`
	Score    int    `json:"score"`
	UserID   string `json:"userId"`
}

// Reporter sends one result.
type Reporter interface {
	Report(ctx context.Context, r Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, r Result) error

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, r Result) error {
	return f(ctx, r)
}
