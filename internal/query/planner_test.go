package query

import (
	"testing"
	"time"

	"github.com/spec-kit/helpdesk/internal/clock"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/store"
)

var baseTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// seedPlanner creates three tickets with strictly increasing UpdatedAt:
// oldest "Checkout Bug" (open/urgent), then "Login broken"
// (in_progress/high), newest "Billing question" (open/low).
func seedPlanner(t *testing.T) (*Planner, []domain.Ticket) {
	t.Helper()
	clk := clock.Fake(baseTime)
	st := store.NewMemoryStore(clk)

	inputs := []store.TicketCreateInput{
		{
			Subject:        "Checkout Bug",
			Description:    "Cart total differs between pages.",
			RequesterName:  "Mike Ross",
			RequesterEmail: "mike@example.com",
			Priority:       domain.TicketPriorityUrgent,
		},
		{
			Subject:        "Login broken",
			Description:    "Cannot sign in since yesterday.",
			RequesterName:  "Jane Doe",
			RequesterEmail: "jane@example.com",
			Status:         domain.TicketStatusInProgress,
			Priority:       domain.TicketPriorityHigh,
		},
		{
			Subject:        "Billing question",
			Description:    "Why was I charged twice?",
			RequesterName:  "Omar Ali",
			RequesterEmail: "omar@example.com",
			Priority:       domain.TicketPriorityLow,
		},
	}
	created := make([]domain.Ticket, 0, len(inputs))
	for _, in := range inputs {
		created = append(created, st.CreateTicket(in))
		clk.Advance(time.Minute)
	}
	return NewPlanner(st), created
}

func TestListTicketsSortsByUpdatedAtDesc(t *testing.T) {
	planner, created := seedPlanner(t)

	result := planner.ListTickets(Params{})
	if result.Total != 3 || len(result.Items) != 3 {
		t.Fatalf("total/items = %d/%d, want 3/3", result.Total, len(result.Items))
	}
	want := []string{created[2].ID, created[1].ID, created[0].ID}
	for i, ticket := range result.Items {
		if ticket.ID != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, ticket.Subject, want[i])
		}
	}
}

func TestListTicketsSearch(t *testing.T) {
	planner, _ := seedPlanner(t)

	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"subject lowercase", "checkout", []string{"Checkout Bug"}},
		{"subject uppercase", "BUG", []string{"Checkout Bug"}},
		{"requester name", "jane", []string{"Login broken"}},
		{"requester email", "omar@", []string{"Billing question"}},
		{"or across fields", "o", []string{"Billing question", "Login broken", "Checkout Bug"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := planner.ListTickets(Params{Q: tt.q})
			if result.Total != len(tt.want) {
				t.Fatalf("total = %d, want %d", result.Total, len(tt.want))
			}
			for i, subject := range tt.want {
				if result.Items[i].Subject != subject {
					t.Errorf("items[%d] = %q, want %q", i, result.Items[i].Subject, subject)
				}
			}
		})
	}
}

func TestListTicketsFieldFilters(t *testing.T) {
	planner, _ := seedPlanner(t)

	result := planner.ListTickets(Params{Status: domain.TicketStatusOpen})
	if result.Total != 2 {
		t.Errorf("status filter total = %d, want 2", result.Total)
	}

	result = planner.ListTickets(Params{Priority: domain.TicketPriorityHigh})
	if result.Total != 1 || result.Items[0].Subject != "Login broken" {
		t.Errorf("priority filter = %+v", result)
	}

	result = planner.ListTickets(Params{Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityUrgent})
	if result.Total != 1 || result.Items[0].Subject != "Checkout Bug" {
		t.Errorf("combined filter = %+v", result)
	}
}

func TestListTicketsPagination(t *testing.T) {
	planner, _ := seedPlanner(t)

	tests := []struct {
		name      string
		params    Params
		wantTotal int
		wantLen   int
		wantPage  int
		wantLimit int
	}{
		{"first page of two", Params{Page: 1, Limit: 2}, 3, 2, 1, 2},
		{"second page remainder", Params{Page: 2, Limit: 2}, 3, 1, 2, 2},
		{"out of range page", Params{Page: 9, Limit: 2}, 3, 0, 9, 2},
		{"defaults", Params{}, 3, 3, 1, 50},
		{"non-positive clamped", Params{Page: -1, Limit: 0}, 3, 3, 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := planner.ListTickets(tt.params)
			if result.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", result.Total, tt.wantTotal)
			}
			if len(result.Items) != tt.wantLen {
				t.Errorf("len(items) = %d, want %d", len(result.Items), tt.wantLen)
			}
			if result.Page != tt.wantPage || result.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", result.Page, result.Limit, tt.wantPage, tt.wantLimit)
			}
			if len(result.Items) > result.Limit {
				t.Errorf("page larger than limit: %d > %d", len(result.Items), result.Limit)
			}
		})
	}
}

func TestListTicketsTotalUnaffectedByPaging(t *testing.T) {
	planner, _ := seedPlanner(t)
	for page := 1; page <= 5; page++ {
		result := planner.ListTickets(Params{Status: domain.TicketStatusOpen, Page: page, Limit: 1})
		if result.Total != 2 {
			t.Errorf("page %d: total = %d, want 2", page, result.Total)
		}
	}
}

func TestListTicketsDeterministicForEqualUpdatedAt(t *testing.T) {
	clk := clock.Fake(baseTime)
	st := store.NewMemoryStore(clk)
	want := make([]string, 0, 8)
	for _, subject := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		created := st.CreateTicket(store.TicketCreateInput{
			Subject:        "Ticket " + subject,
			Description:    "Same instant as the others.",
			RequesterName:  "Jane Doe",
			RequesterEmail: "jane@example.com",
			Priority:       domain.TicketPriorityMedium,
		})
		want = append(want, created.ID)
	}
	planner := NewPlanner(st)

	for run := 0; run < 50; run++ {
		result := planner.ListTickets(Params{})
		for i, id := range want {
			if result.Items[i].ID != id {
				t.Fatalf("run %d: items[%d] = %q, want %q (ties must keep creation order)", run, i, result.Items[i].Subject, id)
			}
		}
	}

	// Paging over tied tickets must neither skip nor repeat any of them.
	seen := make([]string, 0, len(want))
	for page := 1; page <= 3; page++ {
		result := planner.ListTickets(Params{Page: page, Limit: 3})
		for _, item := range result.Items {
			seen = append(seen, item.ID)
		}
	}
	if len(seen) != len(want) {
		t.Fatalf("pages covered %d tickets, want %d", len(seen), len(want))
	}
	for i, id := range want {
		if seen[i] != id {
			t.Errorf("paged[%d] = %q, want %q", i, seen[i], id)
		}
	}
}

// fixedStore serves a snapshot in a deterministic order so tie-breaking
// behavior is observable.
type fixedStore struct {
	store.Store
	tickets []domain.Ticket
}

func (f *fixedStore) Snapshot() []domain.Ticket {
	out := make([]domain.Ticket, len(f.tickets))
	copy(out, f.tickets)
	return out
}

func TestListTicketsStableOrderForEqualUpdatedAt(t *testing.T) {
	later := baseTime.Add(time.Hour)
	st := &fixedStore{tickets: []domain.Ticket{
		{ID: "a", Subject: "first", Status: domain.TicketStatusOpen, UpdatedAt: baseTime},
		{ID: "b", Subject: "second", Status: domain.TicketStatusOpen, UpdatedAt: later},
		{ID: "c", Subject: "third", Status: domain.TicketStatusOpen, UpdatedAt: baseTime},
		{ID: "d", Subject: "fourth", Status: domain.TicketStatusOpen, UpdatedAt: baseTime},
	}}
	planner := NewPlanner(st)

	result := planner.ListTickets(Params{})
	want := []string{"b", "a", "c", "d"}
	if len(result.Items) != len(want) {
		t.Fatalf("len(items) = %d, want %d", len(result.Items), len(want))
	}
	for i, id := range want {
		if result.Items[i].ID != id {
			t.Errorf("items[%d] = %q, want %q (equal keys must keep prior order)", i, result.Items[i].ID, id)
		}
	}
}
