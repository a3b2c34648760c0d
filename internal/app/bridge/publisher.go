package bridge

import (
	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/pkg/rabbitmq"
)

const PublisherAlias = "EventBridgePublisher"

// Publisher fans local callback envelopes out to sibling instances
// through the configured exchange.
type Publisher struct {
	pub    rabbitmq.IRabbitmqPublisher
	origin string
}

func NewPublisher(origin string) *Publisher {
	return &Publisher{
		pub:    rabbitmq.GetPublisher(PublisherAlias),
		origin: origin,
	}
}

func (p *Publisher) PublishEnvelope(env events.Envelope) error {
	return p.pub.Publish(Message{Origin: p.origin, Envelope: env})
}
