package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
)

func notifyConfig() config.NotificationConfig {
	return config.NotificationConfig{
		EmailFrom: "noreply@example.com",
		BaseURL:   "https://helpdesk.example.com",
	}
}

func TestNotificationHandlersNeverError(t *testing.T) {
	n := NewNotificationService(nil, zap.NewNop(), nil, "", notifyConfig())
	ticket := domain.Ticket{
		ID:             "t1",
		Subject:        "Checkout Bug",
		RequesterName:  "Mike Ross",
		RequesterEmail: "mike@example.com",
		AssignedTo:     "Alex Johnson",
	}
	status := domain.TicketStatusResolved

	ctx := context.Background()
	cases := []events.Event{
		{Type: events.EventTicketCreated, TicketID: "t1", Payload: events.TicketCreatedPayload{Ticket: ticket}},
		{Type: events.EventTicketUpdated, TicketID: "t1", Payload: events.TicketUpdatedPayload{
			Ticket:   ticket,
			Previous: ticket,
			Changed:  domain.ChangeSet{Status: &status},
		}},
		{Type: events.EventCommentAdded, TicketID: "t1", Payload: events.CommentAddedPayload{
			Ticket:  ticket,
			Comment: domain.Comment{Author: "Jane", Body: "hi"},
		}},
		// wrong payload shapes are ignored, not fatal
		{Type: events.EventTicketCreated, TicketID: "t1", Payload: "garbage"},
	}
	handlers := map[events.EventType]events.EventHandler{
		events.EventTicketCreated: n.handleTicketCreated,
		events.EventTicketUpdated: n.handleTicketUpdated,
		events.EventCommentAdded:  n.handleCommentAdded,
	}
	for _, event := range cases {
		if err := handlers[event.Type](ctx, event); err != nil {
			t.Errorf("handler for %s returned %v", event.Type, err)
		}
	}
}

func TestRegisterHandlers(t *testing.T) {
	dispatcher := events.NewDispatcher(zap.NewNop())
	n := NewNotificationService(dispatcher, zap.NewNop(), nil, "", notifyConfig())
	n.RegisterHandlers()

	// a published event must reach the registered handler without error
	dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventTicketCreated,
		TicketID: "t1",
		Payload: events.TicketCreatedPayload{Ticket: domain.Ticket{
			ID:             "t1",
			RequesterEmail: "mike@example.com",
		}},
	})
	dispatcher.Wait()
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want int
	}{
		{"duplicates collapse", []string{"a@x.com", "a@x.com", "b@x.com"}, 2},
		{"empties drop", []string{"", "a@x.com", ""}, 1},
		{"nil input", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.in); len(got) != tt.want {
				t.Errorf("dedupe(%v) = %v, want %d entries", tt.in, got, tt.want)
			}
		})
	}
}
