package network

import (
	"encoding/json"
	"time"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello   MessageType = "hello"   // sent once on connect
	MsgStats   MessageType = "stats"   // periodic perf + metric snapshot
	MsgDestroy MessageType = "destroy" // model left a layer
)

// ProtocolVersion is carried in every envelope
const ProtocolVersion = 1

// Message is the JSON envelope written as one websocket text frame
type Message struct {
	Ver     int             `json:"ver"`
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq"`
	Time    int64           `json:"time"` // unix millis
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into an envelope of type t
func NewMessage(t MessageType, payload any) (*Message, error) {
	m := &Message{
		Ver:  ProtocolVersion,
		Type: t,
		Time: time.Now().UnixMilli(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		m.Payload = raw
	}
	return m, nil
}

// Encode returns the wire form of the message
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a wire frame
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// HelloPayload is the first frame a peer receives
type HelloPayload struct {
	PeerID     uint32 `json:"peerId"`
	IntervalMs int64  `json:"intervalMs"`
}

// DestroyPayload reports a model leaving a layer
type DestroyPayload struct {
	Layer    string `json:"layer"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}
