// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/knikolaus-pice/omron-load-display/internal/config"
	pserial "github.com/knikolaus-pice/omron-load-display/internal/poller/serial"
)

// Build opens the serial link and constructs a Poller around it.
// The port is opened once, fail-fast at startup; the returned closer
// releases it and MUST run on every exit path.
func Build(p cfg.PollerConfig) (*Poller, func() error, error) {
	port, err := pserial.Open(pserial.Config{
		Device:   p.Link.Device,
		BaudRate: p.Link.BaudRate,
		DataBits: p.Link.DataBits,
		Parity:   p.Link.Parity,
		StopBits: p.Link.StopBits,
		Timeout:  time.Duration(p.Link.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	poll, err := New(
		Config{
			Node:     p.Node,
			Interval: time.Duration(p.Poll.IntervalMs) * time.Millisecond,
		},
		port,
	)
	if err != nil {
		_ = port.Close()
		return nil, nil, err
	}

	return poll, port.Close, nil
}
