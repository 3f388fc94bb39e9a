package pubsub

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MockClient records published messages instead of talking to GCP.
type MockClient struct {
	mu   sync.Mutex
	name string

	SentMessages []SentMessage
}

type SentMessage struct {
	Topic string
	Data  []byte
}

var _ PubSubClient = (*MockClient)(nil)

// NewMock creates a new mock instance.
func NewMock(name string) *MockClient {
	return &MockClient{name: name}
}

func (m *MockClient) SendMessage(topic string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	m.SentMessages = append(m.SentMessages, SentMessage{Topic: topic, Data: raw})
	return nil
}

func (m *MockClient) ProcessMessage(data []byte, returnValue any) error {
	return msgpack.Unmarshal(data, returnValue)
}
