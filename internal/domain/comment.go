package domain

import "time"

// SystemAuthor is the author recorded on comments the service writes
// itself, such as the seed comment inserted at ticket creation.
const SystemAuthor = "System"

// Comment is a single message in a ticket's discussion thread. Comments
// are append-only: never edited, never deleted on their own, removed
// only when their ticket is deleted.
type Comment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
