package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// CreateTicketRequest payload. Status and AssignedTo are optional;
// status defaults to open downstream.
type CreateTicketRequest struct {
	Subject        string                `json:"subject"`
	Description    string                `json:"description"`
	RequesterName  string                `json:"requesterName"`
	RequesterEmail string                `json:"requesterEmail"`
	Priority       domain.TicketPriority `json:"priority"`
	Status         domain.TicketStatus   `json:"status"`
	Tags           []string              `json:"tags"`
	AssignedTo     string                `json:"assignedTo"`
}

// Validate enforces the boundary contract so the core only ever sees
// well-typed input.
func (r CreateTicketRequest) Validate() error {
	details := map[string]any{}
	if len(strings.TrimSpace(r.Subject)) < 3 {
		details["subject"] = "must be at least 3 characters"
	}
	if len(strings.TrimSpace(r.Description)) < 3 {
		details["description"] = "must be at least 3 characters"
	}
	if strings.TrimSpace(r.RequesterName) == "" {
		details["requesterName"] = "required"
	}
	if !validEmail(r.RequesterEmail) {
		details["requesterEmail"] = "must be a valid email address"
	}
	if !domain.ValidPriority(r.Priority) {
		details["priority"] = fmt.Sprintf("unknown priority %q", r.Priority)
	}
	if r.Status != "" && !domain.ValidStatus(r.Status) {
		details["status"] = fmt.Sprintf("unknown status %q", r.Status)
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid ticket payload", details)
	}
	return nil
}

// UpdateTicketRequest carries a partial ticket update. Nil fields are
// absent from the patch; a non-nil assignedTo set to "" unassigns.
type UpdateTicketRequest struct {
	Subject     *string                `json:"subject"`
	Description *string                `json:"description"`
	Status      *domain.TicketStatus   `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	AssignedTo  *string                `json:"assignedTo"`
}

// Validate checks every field that is present.
func (r UpdateTicketRequest) Validate() error {
	details := map[string]any{}
	if r.Subject != nil && len(strings.TrimSpace(*r.Subject)) < 3 {
		details["subject"] = "must be at least 3 characters"
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) < 3 {
		details["description"] = "must be at least 3 characters"
	}
	if r.Status != nil && !domain.ValidStatus(*r.Status) {
		details["status"] = fmt.Sprintf("unknown status %q", *r.Status)
	}
	if r.Priority != nil && !domain.ValidPriority(*r.Priority) {
		details["priority"] = fmt.Sprintf("unknown priority %q", *r.Priority)
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid ticket patch", details)
	}
	return nil
}

// Patch converts the request into the typed domain patch.
func (r UpdateTicketRequest) Patch() domain.TicketPatch {
	patch := domain.TicketPatch{
		Status:   r.Status,
		Priority: r.Priority,
	}
	if r.Subject != nil {
		subject := strings.TrimSpace(*r.Subject)
		patch.Subject = &subject
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		patch.Description = &description
	}
	if r.AssignedTo != nil {
		assignee := strings.TrimSpace(*r.AssignedTo)
		patch.AssignedTo = &assignee
	}
	return patch
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// Validate enforces non-empty author and body.
func (r CreateCommentRequest) Validate() error {
	details := map[string]any{}
	if strings.TrimSpace(r.Author) == "" {
		details["author"] = "required"
	}
	if strings.TrimSpace(r.Body) == "" {
		details["body"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid comment payload", details)
	}
	return nil
}

// UpdateTicketResponse pairs the updated ticket with the fields that
// actually changed.
type UpdateTicketResponse struct {
	Ticket  domain.Ticket    `json:"ticket"`
	Changed domain.ChangeSet `json:"changed"`
}

// CommentListResponse wraps a comment thread.
type CommentListResponse struct {
	Items []domain.Comment `json:"items"`
}

// AgentListResponse lists assignable agents.
type AgentListResponse struct {
	Agents []string `json:"agents"`
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	return err == nil && addr.Address == strings.TrimSpace(value)
}
