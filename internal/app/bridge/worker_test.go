package bridge

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "bridge-test"}},
	})
	os.Exit(m.Run())
}

type countingListener struct {
	mu     sync.Mutex
	frames int
}

func (l *countingListener) ID() string { return "counter" }

func (l *countingListener) WriteFrame([]byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames++
	return nil
}

func (l *countingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func bridgedBody(t *testing.T, origin string) []byte {
	t.Helper()
	body, err := Message{
		Origin:   origin,
		Envelope: events.NewProofCallback(map[string]string{"requestId": "req-5"}),
	}.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	return body
}

func TestHandleMessageRebroadcastsForeignOrigin(t *testing.T) {
	broadcaster := events.NewBroadcaster()
	listener := &countingListener{}
	broadcaster.Add(listener)
	w := &Worker{broadcaster: broadcaster, origin: "instance-a"}

	w.handleMessage(bridgedBody(t, "instance-b"))

	if listener.count() != 1 {
		t.Errorf("Expected 1 rebroadcast frame, got %d", listener.count())
	}
}

func TestHandleMessageSkipsOwnOrigin(t *testing.T) {
	broadcaster := events.NewBroadcaster()
	listener := &countingListener{}
	broadcaster.Add(listener)
	w := &Worker{broadcaster: broadcaster, origin: "instance-a"}

	w.handleMessage(bridgedBody(t, "instance-a"))

	if listener.count() != 0 {
		t.Errorf("Own messages must not loop back, got %d frames", listener.count())
	}
}

func TestHandleMessageIgnoresMalformedBody(t *testing.T) {
	broadcaster := events.NewBroadcaster()
	listener := &countingListener{}
	broadcaster.Add(listener)
	w := &Worker{broadcaster: broadcaster, origin: "instance-a"}

	w.handleMessage([]byte("not json"))

	if listener.count() != 0 {
		t.Errorf("Malformed messages must be dropped, got %d frames", listener.count())
	}
}

func TestMessageRoundTrip(t *testing.T) {
	body := bridgedBody(t, "instance-a")

	var decoded Message
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Origin != "instance-a" {
		t.Errorf("Origin lost in transit: %q", decoded.Origin)
	}
	if decoded.Envelope.Type != events.TypeProofCallback {
		t.Errorf("Envelope type lost in transit: %q", decoded.Envelope.Type)
	}
}
