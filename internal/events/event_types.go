package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEnquiryCreated  EventType = "enquiry_created"
	EventEnquiryUpdated  EventType = "enquiry_updated"
	EventEnquiryDeleted  EventType = "enquiry_deleted"
	EventCustomerCreated EventType = "customer_created"
	EventCustomerUpdated EventType = "customer_updated"
	EventCustomerDeleted EventType = "customer_deleted"
)

// EnquiryEvents lists every enquiry mutation.
var EnquiryEvents = []EventType{EventEnquiryCreated, EventEnquiryUpdated, EventEnquiryDeleted}

// CustomerEvents lists every customer mutation.
var CustomerEvents = []EventType{EventCustomerCreated, EventCustomerUpdated, EventCustomerDeleted}

// Event represents a domain event emitted by services after a successful write.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	ResourceID string    `json:"resource_id"`
	// ActorID is empty for unauthenticated writes such as public enquiry submission.
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, resourceID, actorID string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}
