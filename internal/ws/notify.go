package ws

import (
	"encoding/json"
	"time"
)

const (
	EventJobsUpdated    = "jobs_updated"
	EventFilesUpdated   = "files_updated"
	EventReviewUpdated  = "review_updated"
	EventResultsUpdated = "results_updated"
	EventTestsUpdated   = "tests_updated"
)

// Event is the payload pushed to every subscriber when stored data changes.
type Event struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Publisher turns change notifications into hub broadcasts.
type Publisher struct {
	hub *Hub
	now func() time.Time
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub, now: time.Now}
}

func (p *Publisher) Publish(eventType, id, detail string) {
	if p == nil || p.hub == nil {
		return
	}
	b, err := json.Marshal(Event{
		Type:      eventType,
		ID:        id,
		Detail:    detail,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	p.hub.Broadcast(b)
}
