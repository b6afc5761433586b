// Package store holds all ticket and comment state in process. It is
// the single owner of that state: every operation runs under one lock,
// so readers always observe fully committed writes and a create, its
// seed comment, and a delete cascade are each indivisible.
package store

import (
	"github.com/spec-kit/helpdesk/internal/domain"
)

// TicketCreateInput describes the fields accepted at ticket creation.
// Status is optional and defaults to open; AssignedTo is optional.
type TicketCreateInput struct {
	Subject        string
	Description    string
	RequesterName  string
	RequesterEmail string
	Status         domain.TicketStatus
	Priority       domain.TicketPriority
	Tags           []string
	AssignedTo     string
}

// Store is the authoritative holder of ticket and comment records.
type Store interface {
	// CreateTicket assigns a fresh id, timestamps the record, and
	// atomically seeds the thread with a system "Ticket created"
	// comment. It never fails for well-typed input.
	CreateTicket(in TicketCreateInput) domain.Ticket

	// GetTicket returns the ticket or a NOT_FOUND error.
	GetTicket(id string) (domain.Ticket, error)

	// UpdateTicket merges the patch over the existing record and
	// refreshes UpdatedAt. ID and CreatedAt are immutable. The second
	// result is the pre-mutation snapshot, captured under the same
	// lock so change diffing never races a concurrent writer.
	UpdateTicket(id string, patch domain.TicketPatch) (updated, previous domain.Ticket, err error)

	// DeleteTicket removes the ticket and its whole comment thread,
	// reporting whether a record existed.
	DeleteTicket(id string) bool

	// ListComments returns the thread in insertion order. An unknown
	// ticket id yields an empty slice, not an error.
	ListComments(ticketID string) []domain.Comment

	// AddComment appends to the thread and bumps the parent ticket's
	// UpdatedAt. The parent must exist; otherwise NOT_FOUND.
	AddComment(ticketID, author, body string) (domain.Comment, error)

	// Snapshot returns a point-in-time copy of every ticket in
	// creation order, safe to scan while writers proceed.
	Snapshot() []domain.Ticket
}
