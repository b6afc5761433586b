package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusWaiting    TicketStatus = "waiting"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidStatus reports whether s is a known ticket status.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known ticket priority.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. ID and CreatedAt are
// immutable after creation; UpdatedAt never goes backwards and is bumped
// on every mutation, comment appends included. An empty AssignedTo means
// the ticket is unassigned.
type Ticket struct {
	ID             string         `json:"id"`
	Subject        string         `json:"subject"`
	Description    string         `json:"description"`
	RequesterName  string         `json:"requesterName"`
	RequesterEmail string         `json:"requesterEmail"`
	Status         TicketStatus   `json:"status"`
	Priority       TicketPriority `json:"priority"`
	Tags           []string       `json:"tags"`
	AssignedTo     string         `json:"assignedTo,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TicketPatch carries a partial ticket update. A nil field means "leave
// untouched"; a non-nil field is applied even when it equals the current
// value. AssignedTo pointing at the empty string unassigns.
type TicketPatch struct {
	Subject     *string
	Description *string
	Status      *TicketStatus
	Priority    *TicketPriority
	AssignedTo  *string
}

// IsZero reports whether the patch carries no fields at all.
func (p TicketPatch) IsZero() bool {
	return p.Subject == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssignedTo == nil
}

// ChangeSet lists the notification-relevant fields whose new value
// differs from the pre-update value. A field is present only when the
// patch set it to something different; setting a field to its current
// value never counts. AssignedTo is present for an explicit unassign
// too, which is why it is a pointer rather than an empty-means-absent
// string.
type ChangeSet struct {
	Status     *TicketStatus   `json:"status,omitempty"`
	Priority   *TicketPriority `json:"priority,omitempty"`
	AssignedTo *string         `json:"assignedTo,omitempty"`
}

// Empty reports whether no tracked field changed.
func (c ChangeSet) Empty() bool {
	return c.Status == nil && c.Priority == nil && c.AssignedTo == nil
}

// Diff computes the ChangeSet produced by applying patch on top of prev.
func Diff(prev Ticket, patch TicketPatch) ChangeSet {
	var changed ChangeSet
	if patch.Status != nil && *patch.Status != prev.Status {
		status := *patch.Status
		changed.Status = &status
	}
	if patch.Priority != nil && *patch.Priority != prev.Priority {
		priority := *patch.Priority
		changed.Priority = &priority
	}
	if patch.AssignedTo != nil && *patch.AssignedTo != prev.AssignedTo {
		assignee := *patch.AssignedTo
		changed.AssignedTo = &assignee
	}
	return changed
}
