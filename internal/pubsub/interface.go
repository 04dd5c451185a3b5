package pubsub

// PubSubClient publishes engine events for downstream consumers and decodes
// incoming message payloads.
type PubSubClient interface {
	SendMessage(topic string, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
