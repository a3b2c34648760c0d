package events

import (
	"bytes"
	"errors"
	"net"
	"sync"
	"syscall"

	"github.com/gin-contrib/sse"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

// Listener is one open event-stream connection. WriteFrame must be safe
// for concurrent use and must return an error once the connection is gone.
type Listener interface {
	ID() string
	WriteFrame(frame []byte) error
}

// Broadcaster fans one event out to every currently registered listener.
// Delivery is fire-and-forget: no backlog, no replay, at most once per
// listener connected at broadcast time.
type Broadcaster struct {
	mu        sync.Mutex
	listeners map[Listener]struct{}
	log       *logger.Logger
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[Listener]struct{}),
		log:       logger.Default(),
	}
}

func (b *Broadcaster) Add(l Listener) {
	b.mu.Lock()
	b.listeners[l] = struct{}{}
	b.mu.Unlock()
}

// Remove deregisters a listener. Removing one that was never added, or
// was already removed, is a no-op.
func (b *Broadcaster) Remove(l Listener) {
	b.mu.Lock()
	delete(b.listeners, l)
	b.mu.Unlock()
}

func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Broadcast serializes env once and writes the identical frame to every
// registered listener. A listener whose write fails is dropped from the
// registry; the remaining listeners are unaffected. Returns the number of
// successful deliveries.
func (b *Broadcaster) Broadcast(env Envelope) int {
	frame, err := EncodeFrame(env)
	if err != nil {
		b.log.Errorf(err, "Could not encode event frame, dropping broadcast")
		return 0
	}

	b.mu.Lock()
	snapshot := make([]Listener, 0, len(b.listeners))
	for l := range b.listeners {
		snapshot = append(snapshot, l)
	}
	b.mu.Unlock()

	delivered := 0
	for _, l := range snapshot {
		if err := l.WriteFrame(frame); err != nil {
			if isConnectionClosed(err) {
				b.log.Debugf("Listener %s disconnected, removing", l.ID())
			} else {
				b.log.Warnf("Write to listener %s failed (%v), removing", l.ID(), err)
			}
			b.Remove(l)
			continue
		}
		delivered++
	}
	return delivered
}

// EncodeFrame renders env as a text/event-stream frame: a data line with
// the JSON-encoded envelope followed by a blank-line terminator.
func EncodeFrame(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := sse.Encode(&buf, sse.Event{Data: env}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isConnectionClosed(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed)
}
