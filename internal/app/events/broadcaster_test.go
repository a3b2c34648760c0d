package events

import (
	"errors"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "events-test"}},
	})
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeListener records frames and can be told to fail writes.
type fakeListener struct {
	id     string
	mu     sync.Mutex
	frames [][]byte
	err    error
}

func (l *fakeListener) ID() string { return l.id }

func (l *fakeListener) WriteFrame(frame []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.frames = append(l.frames, frame)
	return nil
}

func (l *fakeListener) received() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func TestBroadcastReachesEveryListener(t *testing.T) {
	b := NewBroadcaster()
	listeners := []*fakeListener{{id: "l1"}, {id: "l2"}, {id: "l3"}}
	for _, l := range listeners {
		b.Add(l)
	}

	env := NewProofCallback(map[string]string{"requestId": "req-1", "status": "completed"})
	if delivered := b.Broadcast(env); delivered != 3 {
		t.Fatalf("Expected 3 deliveries, got %d", delivered)
	}

	want, err := EncodeFrame(env)
	if err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}
	for _, l := range listeners {
		frames := l.received()
		if len(frames) != 1 {
			t.Fatalf("Listener %s expected exactly 1 frame, got %d", l.id, len(frames))
		}
		if string(frames[0]) != string(want) {
			t.Errorf("Listener %s received a different frame: %q != %q", l.id, frames[0], want)
		}
	}
}

func TestBroadcastRemovesDeadListener(t *testing.T) {
	b := NewBroadcaster()
	alive1 := &fakeListener{id: "alive1"}
	dead := &fakeListener{id: "dead", err: syscall.EPIPE}
	alive2 := &fakeListener{id: "alive2"}
	b.Add(alive1)
	b.Add(dead)
	b.Add(alive2)

	delivered := b.Broadcast(NewProofCallback(map[string]string{"requestId": "req-2"}))
	if delivered != 2 {
		t.Errorf("Expected delivery to the 2 live listeners, got %d", delivered)
	}
	if b.Len() != 2 {
		t.Errorf("Expected dead listener to be removed from registry, %d registered", b.Len())
	}

	// The dead listener is gone: the next broadcast only attempts the others.
	dead.mu.Lock()
	dead.err = nil
	dead.mu.Unlock()
	b.Broadcast(NewProofCallback(map[string]string{"requestId": "req-3"}))
	if len(dead.received()) != 0 {
		t.Error("Removed listener must not receive later broadcasts")
	}
	if len(alive1.received()) != 2 || len(alive2.received()) != 2 {
		t.Error("Live listeners must receive every broadcast")
	}
}

func TestBroadcastLogsNonCloseErrorsButStillRemoves(t *testing.T) {
	b := NewBroadcaster()
	broken := &fakeListener{id: "broken", err: errors.New("short write")}
	b.Add(broken)

	if delivered := b.Broadcast(NewConnected()); delivered != 0 {
		t.Errorf("Expected no deliveries, got %d", delivered)
	}
	if b.Len() != 0 {
		t.Error("Expected listener with a non-close write error to be removed too")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	b := NewBroadcaster()
	l := &fakeListener{id: "l1"}
	other := &fakeListener{id: "l2"}
	b.Add(l)
	b.Add(other)

	b.Remove(l)
	b.Remove(l)                          // second removal is a no-op
	b.Remove(&fakeListener{id: "ghost"}) // never added

	if b.Len() != 1 {
		t.Errorf("Expected 1 listener after removals, got %d", b.Len())
	}
}

func TestEncodeFrameFormat(t *testing.T) {
	frame, err := EncodeFrame(NewProofCallback(map[string]string{"requestId": "req-9"}))
	if err != nil {
		t.Fatalf("EncodeFrame failed: %v", err)
	}

	text := string(frame)
	if !strings.HasPrefix(text, "data:") {
		t.Errorf("Frame must start with the data prefix, got %q", text)
	}
	if !strings.HasSuffix(text, "\n\n") {
		t.Errorf("Frame must end with a blank-line terminator, got %q", text)
	}
	if !strings.Contains(text, `"type":"proof-callback"`) {
		t.Errorf("Frame must carry the envelope type, got %q", text)
	}
}
