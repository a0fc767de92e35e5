package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// lockedBuffer lets the spinner goroutine and the test share a buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDisabledWhenNotTerminal(t *testing.T) {
	var buf lockedBuffer
	s := newSpinnerWithContext(context.Background(), &buf, "Working...")
	assert.False(t, s.enabled)

	s.Start()
	time.Sleep(100 * time.Millisecond)

	ran := false
	s.Suspend(func() { ran = true })
	s.Stop()

	assert.True(t, ran)
	assert.Empty(t, buf.String())
}

func TestSpinnerDraws(t *testing.T) {
	var buf lockedBuffer
	s := newSpinnerWithContext(context.Background(), &buf, "Working...")
	s.enabled = true

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.SetMessage("Scanning gruns/icecream...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Working...")
	assert.Contains(t, out, "Scanning gruns/icecream...")
}

func TestSpinnerSuspendClearsLine(t *testing.T) {
	var buf lockedBuffer
	s := newSpinnerWithContext(context.Background(), &buf, "Working...")
	s.enabled = true
	s.Start()
	defer s.Stop()

	time.Sleep(200 * time.Millisecond)
	s.Suspend(func() { buf.Write([]byte("REPORT\n")) })

	out := buf.String()
	idx := bytes.LastIndex([]byte(out), []byte("REPORT"))
	assert.Greater(t, idx, 0)
	// The line is blanked right before fn runs.
	assert.Equal(t, byte('\r'), out[idx-1])
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, &lockedBuffer{}, "Testing with context...")
	s.enabled = true
	s.Start()

	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept drawing after its context was cancelled")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &lockedBuffer{}, "Testing idempotent stop...")
	s.enabled = true
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}
