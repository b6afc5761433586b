package store

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

type seedTicket struct {
	input  TicketCreateInput
	age    time.Duration
	status domain.TicketStatus
}

var demoTickets = []seedTicket{
	{
		input: TicketCreateInput{
			Subject:        "Cannot access premium features",
			Description:    "I upgraded to premium but features are still locked.",
			RequesterName:  "Jane Doe",
			RequesterEmail: "jane@example.com",
			Priority:       domain.TicketPriorityHigh,
			Tags:           []string{"account"},
			AssignedTo:     "Alex Johnson",
		},
		age:    1 * time.Hour,
		status: domain.TicketStatusOpen,
	},
	{
		input: TicketCreateInput{
			Subject:        "Bug: Checkout shows wrong total",
			Description:    "Cart total differs between pages.",
			RequesterName:  "Mike Ross",
			RequesterEmail: "mike@example.com",
			Priority:       domain.TicketPriorityUrgent,
			Tags:           []string{"bug"},
		},
		age:    2 * time.Hour,
		status: domain.TicketStatusInProgress,
	},
	{
		input: TicketCreateInput{
			Subject:        "Request for data export",
			Description:    "Need CSV export of last month's orders.",
			RequesterName:  "Priya Sharma",
			RequesterEmail: "priya@example.com",
			Priority:       domain.TicketPriorityMedium,
			Tags:           []string{"export", "reporting"},
			AssignedTo:     "Alex Johnson",
		},
		age:    3 * time.Hour,
		status: domain.TicketStatusWaiting,
	},
	{
		input: TicketCreateInput{
			Subject:        "How to reset password?",
			Description:    "I forgot my password.",
			RequesterName:  "Omar Ali",
			RequesterEmail: "omar@example.com",
			Priority:       domain.TicketPriorityLow,
			Tags:           []string{"account"},
		},
		age:    4 * time.Hour,
		status: domain.TicketStatusResolved,
	},
}

// SeedDemo loads a small set of sample tickets with staggered creation
// times so a fresh instance has something to browse. Intended for
// development only; gated behind APP_SEED_DEMO.
func (s *MemoryStore) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clk.Now()
	for _, seed := range demoTickets {
		in := seed.input
		in.Status = seed.status
		s.createLocked(in, now.Add(-seed.age))
	}
}
