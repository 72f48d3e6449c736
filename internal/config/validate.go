// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration: zero values that have defaults are
// filled in by Normalize afterwards.
func Validate(cfg *Config) error {
	p := cfg.Poller

	// ------------------------------------------------------------
	// LINK
	// ------------------------------------------------------------

	if p.Link.Device == "" {
		return fmt.Errorf("link: device is required")
	}
	if p.Link.BaudRate < 0 {
		return fmt.Errorf("link: baud_rate must not be negative")
	}
	if p.Link.DataBits < 0 {
		return fmt.Errorf("link: data_bits must not be negative")
	}
	if p.Link.StopBits < 0 {
		return fmt.Errorf("link: stop_bits must not be negative")
	}
	if p.Link.TimeoutMs < 0 {
		return fmt.Errorf("link: timeout_ms must not be negative")
	}

	switch p.Link.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("link: parity %q not one of N/E/O", p.Link.Parity)
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if p.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must not be negative")
	}

	// ------------------------------------------------------------
	// NODE
	// ------------------------------------------------------------

	// The command layout gives the node exactly two ASCII characters.
	if p.Node != "" {
		if len(p.Node) != 2 {
			return fmt.Errorf("node %q must be exactly 2 characters", p.Node)
		}
		for i := 0; i < len(p.Node); i++ {
			if p.Node[i] > 0x7F {
				return fmt.Errorf("node %q must contain ASCII characters only", p.Node)
			}
		}
	}

	// ------------------------------------------------------------
	// SINK
	// ------------------------------------------------------------

	switch p.Sink.Kind {
	case "", SinkStdout:
	case SinkRedis:
		if p.Sink.Redis.Endpoint == "" {
			return fmt.Errorf("sink: redis endpoint is required for kind %q", SinkRedis)
		}
		if p.Sink.Redis.DB < 0 {
			return fmt.Errorf("sink: redis db must not be negative")
		}
	default:
		return fmt.Errorf("sink: unknown kind %q", p.Sink.Kind)
	}

	return nil
}
