package typing

import (
	"context"
	"log/slog"
	"time"

	"chaoshub/contract"
)

var _ contract.Worker = (*Sweeper)(nil)

// Sweeper is the supervised worker that expires typing states whose
// client never signaled stop.
type Sweeper struct {
	log      *slog.Logger
	tracker  *Tracker
	interval time.Duration
}

func NewSweeper(log *slog.Logger, tracker *Tracker, interval time.Duration) *Sweeper {
	return &Sweeper{log: log, tracker: tracker, interval: interval}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Stopping typing sweeper")
			return ctx.Err()
		case now := <-ticker.C:
			s.tracker.expire(ctx, now.UTC())
		}
	}
}
