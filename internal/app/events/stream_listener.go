package events

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

var ErrStreamingUnsupported = errors.New("response writer does not support streaming")

// StreamListener adapts an HTTP response into a Listener. The mutex keeps
// broadcast goroutines from interleaving partial frames on the wire.
type StreamListener struct {
	id      string
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

func NewStreamListener(w http.ResponseWriter) (*StreamListener, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	return &StreamListener{
		id:      uuid.NewString(),
		w:       w,
		flusher: flusher,
	}, nil
}

func (l *StreamListener) ID() string {
	return l.id
}

func (l *StreamListener) WriteFrame(frame []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.w.Write(frame); err != nil {
		return err
	}
	l.flusher.Flush()
	return nil
}
