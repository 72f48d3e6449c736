// internal/writer/types.go
package writer

import "github.com/knikolaus-pice/omron-load-display/internal/poller"

// Writer delivers decoded readings to the publish sink.
// One interface, multiple bindings: the codec and driver never know
// where values end up.
type Writer interface {
	Write(res poller.PollResult) error
}
