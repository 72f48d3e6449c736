// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/knikolaus-pice/omron-load-display/internal/compoway"
)

// Link abstracts the half-duplex serial channel the driver owns.
// The poller depends on byte transport only.
type Link interface {
	Send(frame []byte) error
	ReadPending() ([]byte, error) // empty result means nothing buffered
	Close() error
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Node     string
	Interval time.Duration
}

// Poller is a dumb, clock-driven half-duplex driver: one request on
// the wire at a time, one decoded result per consumed response.
type Poller struct {
	cfg     Config
	link    Link
	request []byte
}

// New creates a poller with immutable config and a prebuilt request
// frame for the monitor-value read.
func New(cfg Config, link Link) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if link == nil {
		return nil, errors.New("poller: link required")
	}

	text, err := compoway.MonitorValueCommand(cfg.Node).Text()
	if err != nil {
		return nil, err
	}

	return &Poller{
		cfg:     cfg,
		link:    link,
		request: compoway.BuildRequest(text),
	}, nil
}

// Step performs exactly one half-duplex turn.
//
// Empty link: send one request and report nothing (the response is
// outstanding; a second request would violate the protocol).
// Pending bytes: consume them all and decode. Frame errors travel in
// the result; only link failures are returned as errors.
func (p *Poller) Step() (PollResult, bool, error) {
	raw, err := p.link.ReadPending()
	if err != nil {
		return PollResult{}, false, err
	}

	if len(raw) == 0 {
		if err := p.link.Send(p.request); err != nil {
			return PollResult{}, false, err
		}
		return PollResult{}, false, nil
	}

	text := dropNonASCII(raw)

	res := PollResult{At: time.Now(), Raw: text}
	res.Value, res.Err = compoway.DecodeDisplay(text)
	return res, true, nil
}

// dropNonASCII is the lossy decode of raw link bytes: noise on a
// shared serial line is expected and never an error.
func dropNonASCII(raw []byte) string {
	clean := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b <= 0x7F {
			clean = append(clean, b)
		}
	}
	return string(clean)
}
