package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	TypeSnapshot  MessageType = "catalog.snapshot"
	TypeFavorites MessageType = "favorites.changed"
	TypeDetail    MessageType = "event.detail"
	TypeCountdown MessageType = "event.countdown"
	TypeError     MessageType = "error"
)

// Message is the envelope of every frame exchanged over the socket.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload,omitempty"`
}

func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}
