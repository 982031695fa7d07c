package model

import "time"

// StatusEvent is the wire form of a published monitor snapshot.
type StatusEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	Latency      int64     `json:"latency"`
	Error        bool      `json:"error"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

func NewStatusEvent(m Monitor) StatusEvent {
	e := StatusEvent{
		ID:           m.ID,
		Name:         m.Name,
		URL:          m.URL,
		Method:       m.Method,
		Status:       m.Status,
		Latency:      m.Latency,
		Error:        m.Error,
		ErrorMessage: m.ErrorMessage,
	}
	if m.LastCheckedAt != nil {
		e.CheckedAt = *m.LastCheckedAt
	}
	return e
}
