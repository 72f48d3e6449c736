// internal/poller/serial/link.go
package serial

import (
	"errors"
	"fmt"
	"time"

	gserial "github.com/goburrow/serial"
)

// Config is minimal transport config.
type Config struct {
	Device   string
	BaudRate int
	DataBits int
	Parity   string // "N", "E" or "O"
	StopBits int
	Timeout  time.Duration
}

// Port adapts a serial port to the poller's Link. The read buffer is
// reused across turns; a response frame is well under 64 bytes.
type Port struct {
	port gserial.Port
	buf  []byte
}

// Open opens the device with the configured parameters.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial: device required")
	}

	port, err := gserial.Open(&gserial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		Parity:   cfg.Parity,
		StopBits: cfg.StopBits,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}

	return &Port{
		port: port,
		buf:  make([]byte, 256),
	}, nil
}

// Send writes one frame to the port.
func (p *Port) Send(frame []byte) error {
	if _, err := p.port.Write(frame); err != nil {
		return fmt.Errorf("serial: write: %w", err)
	}
	return nil
}

// ReadPending performs one timeout-bounded read and returns whatever
// arrived. A read timeout means nothing was buffered and maps to an
// empty result, not an error.
func (p *Port) ReadPending() ([]byte, error) {
	n, err := p.port.Read(p.buf)
	if err != nil {
		if errors.Is(err, gserial.ErrTimeout) {
			return nil, nil
		}
		return nil, fmt.Errorf("serial: read: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	out := make([]byte, n)
	copy(out, p.buf[:n])
	return out, nil
}

// Close releases the port.
func (p *Port) Close() error {
	return p.port.Close()
}
