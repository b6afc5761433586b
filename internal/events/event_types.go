package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketUpdated EventType = "ticket_updated"
	EventCommentAdded  EventType = "comment_added"
)

// Event is the envelope every lifecycle change is published in.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	TicketID  string    `json:"ticket_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// TicketCreatedPayload carries the freshly created ticket.
type TicketCreatedPayload struct {
	Ticket domain.Ticket `json:"ticket"`
}

// TicketUpdatedPayload carries the post-update ticket, the pre-update
// snapshot, and the set of notification-relevant fields that actually
// changed.
type TicketUpdatedPayload struct {
	Ticket   domain.Ticket    `json:"ticket"`
	Previous domain.Ticket    `json:"previous"`
	Changed  domain.ChangeSet `json:"changed"`
}

// CommentAddedPayload carries the parent ticket and the new comment.
type CommentAddedPayload struct {
	Ticket  domain.Ticket  `json:"ticket"`
	Comment domain.Comment `json:"comment"`
}
