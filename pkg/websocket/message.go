package websocket

import "time"

// Envelope - "конверт" сообщения: по Type фронтенд понимает, как разобрать Payload.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
