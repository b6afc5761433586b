package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/clock"
	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// MemoryStore is the map-backed Store implementation. All methods hold
// the mutex for their full duration and every record that crosses the
// boundary is a copy, so callers can never alias internal state.
type MemoryStore struct {
	mu       sync.RWMutex
	clk      clock.Clock
	tickets  map[string]domain.Ticket
	comments map[string][]domain.Comment
	// order holds ticket ids in creation order so Snapshot has a
	// defined iteration order. Ties on UpdatedAt keep this order
	// through the planner's stable sort.
	order []string
}

// NewMemoryStore constructs an empty store using the given clock.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clk:      clk,
		tickets:  make(map[string]domain.Ticket),
		comments: make(map[string][]domain.Comment),
	}
}

// CreateTicket implements Store.
func (s *MemoryStore) CreateTicket(in TicketCreateInput) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(in, s.clk.Now())
}

func (s *MemoryStore) createLocked(in TicketCreateInput, now time.Time) domain.Ticket {
	status := in.Status
	if status == "" {
		status = domain.TicketStatusOpen
	}
	ticket := domain.Ticket{
		ID:             uuid.NewString(),
		Subject:        in.Subject,
		Description:    in.Description,
		RequesterName:  in.RequesterName,
		RequesterEmail: in.RequesterEmail,
		Status:         status,
		Priority:       in.Priority,
		Tags:           copyTags(in.Tags),
		AssignedTo:     in.AssignedTo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.tickets[ticket.ID] = ticket
	s.order = append(s.order, ticket.ID)
	s.comments[ticket.ID] = []domain.Comment{{
		ID:        uuid.NewString(),
		TicketID:  ticket.ID,
		Author:    domain.SystemAuthor,
		Body:      "Ticket created",
		CreatedAt: now,
	}}
	return copyTicket(ticket)
}

// GetTicket implements Store.
func (s *MemoryStore) GetTicket(id string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return copyTicket(ticket), nil
}

// UpdateTicket implements Store.
func (s *MemoryStore) UpdateTicket(id string, patch domain.TicketPatch) (domain.Ticket, domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	previous := copyTicket(ticket)
	if patch.Subject != nil {
		ticket.Subject = *patch.Subject
	}
	if patch.Description != nil {
		ticket.Description = *patch.Description
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
	}
	if patch.Priority != nil {
		ticket.Priority = *patch.Priority
	}
	if patch.AssignedTo != nil {
		ticket.AssignedTo = *patch.AssignedTo
	}
	ticket.UpdatedAt = s.bumpTime(ticket.UpdatedAt)
	s.tickets[id] = ticket
	return copyTicket(ticket), previous, nil
}

// DeleteTicket implements Store.
func (s *MemoryStore) DeleteTicket(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.tickets[id]
	if existed {
		delete(s.tickets, id)
		delete(s.comments, id)
		for i, ticketID := range s.order {
			if ticketID == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	return existed
}

// ListComments implements Store.
func (s *MemoryStore) ListComments(ticketID string) []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread := s.comments[ticketID]
	out := make([]domain.Comment, len(thread))
	copy(out, thread)
	return out
}

// AddComment implements Store.
func (s *MemoryStore) AddComment(ticketID, author, body string) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket, ok := s.tickets[ticketID]
	if !ok {
		return domain.Comment{}, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
	}
	now := s.bumpTime(ticket.UpdatedAt)
	comment := domain.Comment{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		Author:    author,
		Body:      body,
		CreatedAt: now,
	}
	s.comments[ticketID] = append(s.comments[ticketID], comment)
	ticket.UpdatedAt = now
	s.tickets[ticketID] = ticket
	return comment, nil
}

// Snapshot implements Store.
func (s *MemoryStore) Snapshot() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyTicket(s.tickets[id]))
	}
	return out
}

// bumpTime reads the clock and clamps it so UpdatedAt never regresses,
// even if the wall clock does.
func (s *MemoryStore) bumpTime(prev time.Time) time.Time {
	now := s.clk.Now()
	if now.Before(prev) {
		return prev
	}
	return now
}

func copyTicket(t domain.Ticket) domain.Ticket {
	t.Tags = copyTags(t.Tags)
	return t
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
