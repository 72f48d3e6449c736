// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/knikolaus-pice/omron-load-display/internal/compoway"
)

// goodResponse carries the value 0xFFF6 (-1.0 after scaling), with a
// trailing BCC byte after ETX that the codec must discard.
const goodResponse = "\x020100000101000FFF6\x03\x2a"

type fakeLink struct {
	pending [][]byte // scripted ReadPending results, consumed in order
	readErr error
	sendErr error
	sent    [][]byte
}

func (f *fakeLink) ReadPending() ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	if len(f.pending) == 0 {
		return nil, nil
	}
	next := f.pending[0]
	f.pending = f.pending[1:]
	return next, nil
}

func (f *fakeLink) Send(frame []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, frame)
	return nil
}

func (f *fakeLink) Close() error { return nil }

func newPoller(t *testing.T, link Link) *Poller {
	t.Helper()
	p, err := New(Config{Node: "01", Interval: 10 * time.Millisecond}, link)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

// ---- tests ----

func TestNew_RequiresInterval(t *testing.T) {
	if _, err := New(Config{Node: "01"}, &fakeLink{}); err == nil {
		t.Fatalf("expected interval error, got nil")
	}
}

func TestStep_SendsRequestWhenIdle(t *testing.T) {
	link := &fakeLink{}
	p := newPoller(t, link)

	_, ok, err := p.Step()
	if err != nil {
		t.Fatalf("Step err=%v", err)
	}
	if ok {
		t.Fatalf("idle step must not report a result")
	}
	if len(link.sent) != 1 {
		t.Fatalf("sent %d frames, want 1", len(link.sent))
	}

	frame := link.sent[0]
	if frame[0] != compoway.STX || frame[len(frame)-2] != compoway.ETX {
		t.Fatalf("malformed request frame: %x", frame)
	}
}

func TestStep_ConsumesResponse(t *testing.T) {
	link := &fakeLink{pending: [][]byte{[]byte(goodResponse)}}
	p := newPoller(t, link)

	res, ok, err := p.Step()
	if err != nil {
		t.Fatalf("Step err=%v", err)
	}
	if !ok {
		t.Fatalf("expected a result")
	}
	if res.Err != nil {
		t.Fatalf("result err=%v", res.Err)
	}
	if res.Value != -1.0 {
		t.Fatalf("value=%v want -1.0", res.Value)
	}

	// The response turn must not issue a request.
	if len(link.sent) != 0 {
		t.Fatalf("sent %d frames on a response turn, want 0", len(link.sent))
	}
}

func TestStep_DropsNonASCIINoise(t *testing.T) {
	noisy := append([]byte{0xFF, 0xC3}, []byte(goodResponse)...)
	// Noise bytes must not shadow the STX check: they are stripped
	// before the frame is parsed.
	link := &fakeLink{pending: [][]byte{noisy}}
	p := newPoller(t, link)

	res, ok, err := p.Step()
	if err != nil || !ok {
		t.Fatalf("Step ok=%v err=%v", ok, err)
	}
	if res.Err != nil {
		t.Fatalf("result err=%v", res.Err)
	}
	if res.Value != -1.0 {
		t.Fatalf("value=%v want -1.0", res.Value)
	}
}

func TestStep_MalformedFrameIsRecoverable(t *testing.T) {
	link := &fakeLink{pending: [][]byte{
		[]byte("garbage"),
		[]byte(goodResponse),
	}}
	p := newPoller(t, link)

	res, ok, err := p.Step()
	if err != nil {
		t.Fatalf("Step err=%v", err)
	}
	if !ok {
		t.Fatalf("malformed frame must still produce a result")
	}
	if !errors.Is(res.Err, compoway.ErrMissingSTX) {
		t.Fatalf("result err=%v want ErrMissingSTX", res.Err)
	}

	// Next turn proceeds normally.
	res, ok, err = p.Step()
	if err != nil || !ok || res.Err != nil {
		t.Fatalf("recovery step ok=%v err=%v resErr=%v", ok, err, res.Err)
	}
}

func TestStep_SendFailureIsFatal(t *testing.T) {
	link := &fakeLink{sendErr: errors.New("write failed")}
	p := newPoller(t, link)

	if _, _, err := p.Step(); err == nil {
		t.Fatalf("expected send error, got nil")
	}
}

func TestRun_EmitsResultAndStopsOnCancel(t *testing.T) {
	link := &fakeLink{pending: [][]byte{nil, []byte(goodResponse)}}
	p := newPoller(t, link)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult, 1)
	done := make(chan error, 1)

	go func() { done <- p.Run(ctx, out) }()

	select {
	case res := <-out:
		if res.Err != nil || res.Value != -1.0 {
			t.Fatalf("result=%+v", res)
		}
	case <-time.After(time.Second):
		t.Fatalf("no result within 1s")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run err=%v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop on cancel")
	}
}

func TestRun_ReturnsLinkError(t *testing.T) {
	link := &fakeLink{readErr: errors.New("port gone")}
	p := newPoller(t, link)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background(), make(chan PollResult, 1)) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected link error, got nil")
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop on link error")
	}
}
