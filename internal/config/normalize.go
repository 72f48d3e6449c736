// internal/config/normalize.go
package config

// Link and poll defaults. Matches the K3HB's factory communication
// settings: 9600 8N1 with a 1s response timeout.
const (
	DefaultBaudRate  = 9600
	DefaultDataBits  = 8
	DefaultParity    = "N"
	DefaultStopBits  = 1
	DefaultTimeoutMs = 1000

	DefaultIntervalMs = 100

	DefaultNode = "01"

	DefaultKey = "load-cell"
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.Poller

	if p.Link.BaudRate == 0 {
		p.Link.BaudRate = DefaultBaudRate
	}
	if p.Link.DataBits == 0 {
		p.Link.DataBits = DefaultDataBits
	}
	if p.Link.Parity == "" {
		p.Link.Parity = DefaultParity
	}
	if p.Link.StopBits == 0 {
		p.Link.StopBits = DefaultStopBits
	}
	if p.Link.TimeoutMs == 0 {
		p.Link.TimeoutMs = DefaultTimeoutMs
	}

	if p.Poll.IntervalMs == 0 {
		p.Poll.IntervalMs = DefaultIntervalMs
	}

	if p.Node == "" {
		p.Node = DefaultNode
	}

	if p.Sink.Kind == "" {
		p.Sink.Kind = SinkStdout
	}
	if p.Sink.Key == "" {
		p.Sink.Key = DefaultKey
	}
}
