package mykafka

import "time"

type Event struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

func NewEvent(typ string, userID uint, payload any) Event {
	return Event{Type: typ, UserID: userID, OccurredAt: time.Now().UTC(), Payload: payload}
}
