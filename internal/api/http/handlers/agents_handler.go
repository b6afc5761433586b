package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/domain"
)

// AgentsHandler exposes the agent directory for assignment UIs.
type AgentsHandler struct{}

// NewAgentsHandler returns a new handler instance.
func NewAgentsHandler() *AgentsHandler {
	return &AgentsHandler{}
}

// List GET /api/agents.
func (h *AgentsHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.AgentListResponse{Agents: domain.Agents})
}
