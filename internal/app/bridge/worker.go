package bridge

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/pkg/logger"
	"github.com/zkproofport/proofport-app-demo/pkg/rabbitmq"
)

const ConsumerAlias = "EventBridgeConsumer"

// Worker rebroadcasts envelopes published by sibling instances to the
// local SSE listeners. Its own instance's messages are skipped so local
// listeners never see a callback twice.
type Worker struct {
	broadcaster *events.Broadcaster
	consumer    rabbitmq.IRabbitmqConsumer
	origin      string
}

func NewWorker(broadcaster *events.Broadcaster, origin string) *Worker {
	return &Worker{
		broadcaster: broadcaster,
		consumer:    rabbitmq.GetConsumer(ConsumerAlias),
		origin:      origin,
	}
}

func (w *Worker) GetServiceName() string {
	return ConsumerAlias
}

func (w *Worker) StartService() {
	bridgeLogger := logger.Default()
	w.consumer.StartConsuming(func(d amqp.Delivery) {
		w.handleMessage(d.Body)
	})

	bridgeLogger.Info("Listening for bridged proof callbacks...")
}

func (w *Worker) handleMessage(body []byte) {
	bridgeLogger := logger.Default()

	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		bridgeLogger.Errorf(err, "Failed to unmarshal bridged message")
		return
	}
	if msg.Origin == w.origin {
		return
	}

	delivered := w.broadcaster.Broadcast(msg.Envelope)
	bridgeLogger.Debugf("Rebroadcast bridged callback from %s to %d listeners", msg.Origin, delivered)
}
