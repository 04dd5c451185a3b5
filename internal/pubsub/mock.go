package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Mock is an in-memory PubSubClient for tests and for running without a GCP
// project configured.
type Mock struct {
	mu        sync.Mutex
	projectID string

	// Published records every SendMessage call by topic.
	Published map[string][][]byte
}

var _ PubSubClient = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock(projectID string) *Mock {
	return &Mock{
		projectID: projectID,
		Published: make(map[string][][]byte),
	}
}

func (m *Mock) SendMessage(topic string, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published[topic] = append(m.Published[topic], payload)
	return nil
}

func (m *Mock) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
