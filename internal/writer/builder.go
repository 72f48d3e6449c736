// internal/writer/builder.go
package writer

import (
	"fmt"
	"os"

	cfg "github.com/knikolaus-pice/omron-load-display/internal/config"
)

// Build selects the sink binding for the configured kind and returns
// the writer with its closer.
func Build(s cfg.SinkConfig) (Writer, func() error, error) {
	switch s.Kind {
	case cfg.SinkRedis:
		w, err := NewRedis(s.Redis, s.Key)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil

	case cfg.SinkStdout, "":
		return NewStdout(os.Stdout), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown sink kind %q", s.Kind)
	}
}
