package callback

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/zkproofport/proofport-app-demo/internal/app/events"
	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

// requestIDKeys are the payload fields recognized as the relay request
// identifier. The relay sends camelCase; snake_case is accepted for older
// relay builds.
var requestIDKeys = []string{"requestId", "request_id"}

// BridgePublisher forwards an envelope to sibling server instances. Wired
// only when the rabbitmq bridge is enabled.
type BridgePublisher interface {
	PublishEnvelope(env events.Envelope) error
}

type IngestOutcome struct {
	RequestID string
	Stored    bool
	Delivered int
}

// Service is the single trust boundary where the relay pushes proof
// completion notifications into this process.
type Service struct {
	Store       ResultStore
	Broadcaster *events.Broadcaster
	Secret      string
	Bridge      BridgePublisher

	log *logger.Logger
}

// ResultStore is the subset of the results store the ingress needs.
type ResultStore interface {
	Set(ctx context.Context, requestID string, payload json.RawMessage) error
}

func NewService(store ResultStore, broadcaster *events.Broadcaster, opts ...func(*Service)) *Service {
	s := &Service{
		Store:       store,
		Broadcaster: broadcaster,
		log:         logger.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ingest accepts a raw callback body. A JSON body is kept verbatim; anything
// else is wrapped as {"raw": <text>} and logged. When a recognizable request
// id is present the payload is staged in the result store; either way the
// payload is wrapped in a proof-callback envelope and broadcast. Ingest
// never rejects: the relay must not be made to retry because of a picky
// ingress.
func (s *Service) Ingest(ctx context.Context, body []byte) IngestOutcome {
	payload, requestID := s.decode(body)

	out := IngestOutcome{RequestID: requestID}

	if requestID != "" {
		if err := s.Store.Set(ctx, requestID, payload); err != nil {
			s.log.Errorf(err, "Could not stage callback result for request: %s", requestID)
		} else {
			out.Stored = true
		}
	}

	env := events.NewProofCallback(payload)
	out.Delivered = s.Broadcaster.Broadcast(env)

	if s.Bridge != nil {
		if err := s.Bridge.PublishEnvelope(env); err != nil {
			s.log.Errorf(err, "Event bridge publish failed")
		}
	}

	return out
}

// IngestQuery is the degenerate body-less variant: the query parameters
// become the payload.
func (s *Service) IngestQuery(ctx context.Context, params map[string]string) IngestOutcome {
	body, err := json.Marshal(params)
	if err != nil {
		// A map[string]string always marshals; keep the fallback anyway.
		body = []byte("{}")
	}
	return s.Ingest(ctx, body)
}

// VerifySignature checks the hex-encoded HMAC-SHA256 of body against the
// configured shared secret. Callers only log on mismatch; a bad signature
// never causes a rejection.
func (s *Service) VerifySignature(body []byte, signature string) bool {
	if s.Secret == "" {
		return true
	}
	mac := hmac.New(sha256.New, []byte(s.Secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *Service) decode(body []byte) (json.RawMessage, string) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		s.log.Warnf("Callback body is not a JSON object, storing as raw text (%d bytes)", len(body))
		wrapped, _ := json.Marshal(map[string]string{"raw": string(body)})
		return wrapped, ""
	}

	for _, key := range requestIDKeys {
		if v, ok := fields[key].(string); ok && v != "" {
			return json.RawMessage(body), v
		}
	}
	return json.RawMessage(body), ""
}
