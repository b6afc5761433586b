package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/clock"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/query"
	"github.com/spec-kit/helpdesk/internal/store"
)

// TicketService coordinates ticket lifecycle workflows: it delegates
// record mutation to the store, diffs the result against the
// pre-mutation state, and emits change events for the notifier. Event
// delivery is fire-and-forget; it never delays or fails the caller's
// result.
type TicketService struct {
	store      store.Store
	planner    *query.Planner
	dispatcher events.Dispatcher
	clk        clock.Clock
}

// TicketDependencies bundles collaborators for the ticket service.
// Clock is optional and defaults to the wall clock; it stamps event
// timestamps.
type TicketDependencies struct {
	Store      store.Store
	Planner    *query.Planner
	Dispatcher events.Dispatcher
	Clock      clock.Clock
}

// TicketCreateInput describes the ticket creation payload.
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

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real()
	}
	return &TicketService{
		store:      deps.Store,
		planner:    deps.Planner,
		dispatcher: deps.Dispatcher,
		clk:        clk,
	}
}

// CreateTicket creates a ticket and emits TicketCreated. The status
// defaults to open and tags to an empty list when absent.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) domain.Ticket {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	ticket := s.store.CreateTicket(store.TicketCreateInput{
		Subject:        strings.TrimSpace(input.Subject),
		Description:    strings.TrimSpace(input.Description),
		RequesterName:  strings.TrimSpace(input.RequesterName),
		RequesterEmail: strings.TrimSpace(input.RequesterEmail),
		Status:         input.Status,
		Priority:       input.Priority,
		Tags:           tags,
		AssignedTo:     strings.TrimSpace(input.AssignedTo),
	})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload:  events.TicketCreatedPayload{Ticket: ticket},
	})
	return ticket
}

// GetTicket fetches a single ticket.
func (s *TicketService) GetTicket(_ context.Context, id string) (domain.Ticket, error) {
	return s.store.GetTicket(id)
}

// ListTickets answers a list query via the planner.
func (s *TicketService) ListTickets(_ context.Context, params query.Params) query.Result {
	return s.planner.ListTickets(params)
}

// UpdateTicket applies a partial patch and emits TicketUpdated with the
// change set. A field counts as changed only when the patch set it to a
// value different from the pre-mutation one; an absent field never
// counts, and neither does re-setting the current value. AssignedTo
// follows presence-in-patch semantics, so an explicit unassign that
// differs from the previous assignee is a change.
func (s *TicketService) UpdateTicket(ctx context.Context, id string, patch domain.TicketPatch) (domain.Ticket, domain.ChangeSet, error) {
	ticket, previous, err := s.store.UpdateTicket(id, patch)
	if err != nil {
		return domain.Ticket{}, domain.ChangeSet{}, err
	}
	changed := domain.Diff(previous, patch)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			Ticket:   ticket,
			Previous: previous,
			Changed:  changed,
		},
	})
	return ticket, changed, nil
}

// DeleteTicket removes a ticket with its whole comment thread and
// reports whether it existed.
func (s *TicketService) DeleteTicket(_ context.Context, id string) bool {
	return s.store.DeleteTicket(id)
}

// ListComments returns a ticket's thread in insertion order. Unknown
// tickets yield an empty thread.
func (s *TicketService) ListComments(_ context.Context, ticketID string) []domain.Comment {
	return s.store.ListComments(ticketID)
}

// AddComment appends a comment to an existing ticket, bumps the parent
// ticket's UpdatedAt, and emits CommentAdded. Commenting on an unknown
// ticket fails with NOT_FOUND.
func (s *TicketService) AddComment(ctx context.Context, ticketID, author, body string) (domain.Comment, error) {
	comment, err := s.store.AddComment(ticketID, strings.TrimSpace(author), strings.TrimSpace(body))
	if err != nil {
		return domain.Comment{}, err
	}
	ticket, err := s.store.GetTicket(ticketID)
	if err == nil {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventCommentAdded,
			TicketID: ticketID,
			Payload:  events.CommentAddedPayload{Ticket: ticket, Comment: comment},
		})
	}
	return comment, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clk.Now()
	}
	// The request context may be cancelled as soon as the response is
	// written; deliveries must outlive it.
	s.dispatcher.Publish(context.WithoutCancel(ctx), event)
}
