package events

import "time"

const (
	TypeConnected     = "connected"
	TypeProofCallback = "proof-callback"
)

// Envelope is the frame pushed over the event stream. Data carries the
// relay payload verbatim for proof-callback events and is empty for the
// connected acknowledgment.
type Envelope struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

func NewConnected() Envelope {
	return Envelope{
		Type:      TypeConnected,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func NewProofCallback(data any) Envelope {
	return Envelope{
		Type:      TypeProofCallback,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}
