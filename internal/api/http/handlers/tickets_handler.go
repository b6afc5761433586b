package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/query"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ticket := h.service.CreateTicket(c.UserContext(), service.TicketCreateInput{
		Subject:        req.Subject,
		Description:    req.Description,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		Status:         req.Status,
		Priority:       req.Priority,
		Tags:           req.Tags,
		AssignedTo:     req.AssignedTo,
	})
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	result := h.service.ListTickets(c.UserContext(), parseListQuery(c))
	return c.JSON(result)
}

// GetTicket GET /api/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// UpdateTicket PATCH /api/tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ticket, changed, err := h.service.UpdateTicket(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateTicketResponse{Ticket: ticket, Changed: changed})
}

// DeleteTicket DELETE /api/tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	if !h.service.DeleteTicket(c.UserContext(), c.Params("id")) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListComments GET /api/tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	items := h.service.ListComments(c.UserContext(), c.Params("id"))
	return c.JSON(dto.CommentListResponse{Items: items})
}

// AddComment POST /api/tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	comment, err := h.service.AddComment(c.UserContext(), c.Params("id"), req.Author, req.Body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// parseListQuery maps query params onto planner params. Malformed enum
// filters are dropped rather than failed, matching the planner's
// no-error contract.
func parseListQuery(c *fiber.Ctx) query.Params {
	params := query.Params{
		Q:     strings.TrimSpace(c.Query("q")),
		Page:  parseInt(c.Query("page"), 1),
		Limit: parseInt(c.Query("limit"), 50),
	}
	if status := domain.TicketStatus(c.Query("status")); domain.ValidStatus(status) {
		params.Status = status
	}
	if priority := domain.TicketPriority(c.Query("priority")); domain.ValidPriority(priority) {
		params.Priority = priority
	}
	return params
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
