// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run drives the half-duplex loop at the configured interval and
// emits a PollResult for every consumed response. Cancellation is
// checked once per turn. A link failure ends the run with its error;
// frame errors do not.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) error {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, ok, err := p.Step()
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
