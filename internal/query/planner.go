// Package query answers ticket list queries: text search, field
// filters, deterministic ordering, and pagination over a store
// snapshot.
package query

import (
	"sort"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/store"
)

const defaultLimit = 50

// Params describes a ticket list query. Zero values mean "no filter";
// non-positive Page and Limit are clamped to 1 and 50.
type Params struct {
	Q        string
	Status   domain.TicketStatus
	Priority domain.TicketPriority
	Page     int
	Limit    int
}

// Result is one page of matching tickets. Total counts every match
// before pagination.
type Result struct {
	Total int             `json:"total"`
	Items []domain.Ticket `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// Planner executes list queries against the store.
type Planner struct {
	store store.Store
}

// NewPlanner constructs a planner reading from the given store.
func NewPlanner(st store.Store) *Planner {
	return &Planner{store: st}
}

// ListTickets filters, sorts, and paginates the current ticket set.
// The scan runs over a snapshot, so concurrent mutations never tear a
// result. It has no failure modes: unknown filter values simply match
// nothing, and out-of-range pages return an empty page with Total
// intact.
func (p *Planner) ListTickets(params Params) Result {
	items := p.store.Snapshot()

	if q := strings.ToLower(strings.TrimSpace(params.Q)); q != "" {
		filtered := items[:0]
		for _, t := range items {
			if strings.Contains(strings.ToLower(t.Subject), q) ||
				strings.Contains(strings.ToLower(t.RequesterName), q) ||
				strings.Contains(strings.ToLower(t.RequesterEmail), q) {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}
	if params.Status != "" {
		filtered := items[:0]
		for _, t := range items {
			if t.Status == params.Status {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}
	if params.Priority != "" {
		filtered := items[:0]
		for _, t := range items {
			if t.Priority == params.Priority {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})

	total := len(items)
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Total: total,
		Items: items[start:end],
		Page:  page,
		Limit: limit,
	}
}
