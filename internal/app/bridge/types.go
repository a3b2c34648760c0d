package bridge

import (
	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/pkg/utilities"
)

// Message is the wire form of a bridged broadcast. Origin identifies the
// publishing instance so it can skip its own deliveries.
type Message struct {
	Origin   string          `json:"origin"`
	Envelope events.Envelope `json:"envelope"`
}

func (m Message) Serialize() ([]byte, error) {
	return utilities.Serialize[Message](m)
}
