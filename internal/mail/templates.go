// Package mail renders the email bodies handed to the external
// notifier: one template per lifecycle event, each with a subject, an
// HTML body, and a plain-text fallback.
package mail

import (
	"fmt"
	"strings"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Message is a rendered email, ready for a delivery backend.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func ticketURL(baseURL, ticketID string) string {
	return strings.TrimRight(baseURL, "/") + "/tickets/" + ticketID
}

func layoutHTML(title, bodyHTML string) string {
	return fmt.Sprintf(`
  <div style="font-family: -apple-system, BlinkMacSystemFont, Segoe UI, Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #111; padding: 24px;">
    <h2 style="margin: 0 0 16px; font-size: 20px;">%s</h2>
    <div>%s</div>
    <hr style="margin: 24px 0; border: none; border-top: 1px solid #eee;">
    <p style="color: #666; font-size: 12px;">You are receiving this because you interacted with a ticket on our Help Desk.</p>
  </div>
  `, title, bodyHTML)
}

// TicketCreated renders the confirmation sent when a ticket is opened.
func TicketCreated(ticket domain.Ticket, baseURL string) Message {
	subject := fmt.Sprintf("[#%s] Ticket received: %s", shortID(ticket.ID), ticket.Subject)
	url := ticketURL(baseURL, ticket.ID)
	html := layoutHTML(subject, fmt.Sprintf(`
      <p>Hi %s,</p>
      <p>We've received your request and created a ticket. Our support team will follow up.</p>
      <ul>
        <li><strong>Status:</strong> %s</li>
        <li><strong>Priority:</strong> %s</li>
      </ul>
      <p>You can view your ticket here: <a href="%s">%s</a></p>
    `, ticket.RequesterName, ticket.Status, ticket.Priority, url, url))
	text := fmt.Sprintf("Hi %s,\n\nWe've received your request and created a ticket.\nStatus: %s\nPriority: %s\n\nView your ticket: %s\n",
		ticket.RequesterName, ticket.Status, ticket.Priority, url)
	return Message{Subject: subject, HTML: html, Text: text}
}

// TicketUpdated renders the notification for a ticket update, listing
// only the fields that actually changed.
func TicketUpdated(ticket domain.Ticket, changed domain.ChangeSet, baseURL string) Message {
	var parts []string
	if changed.Status != nil {
		parts = append(parts, fmt.Sprintf("Status -> %s", *changed.Status))
	}
	if changed.Priority != nil {
		parts = append(parts, fmt.Sprintf("Priority -> %s", *changed.Priority))
	}
	if changed.AssignedTo != nil {
		assignee := *changed.AssignedTo
		if assignee == "" {
			assignee = "Unassigned"
		}
		parts = append(parts, "Assignee -> "+assignee)
	}
	changes := strings.Join(parts, ", ")
	if changes == "" {
		changes = "No visible changes"
	}
	subject := fmt.Sprintf("[#%s] Ticket updated: %s", shortID(ticket.ID), ticket.Subject)
	url := ticketURL(baseURL, ticket.ID)
	html := layoutHTML(subject, fmt.Sprintf(`
      <p>Your ticket has been updated.</p>
      <p><strong>Changes:</strong> %s</p>
      <p>View details: <a href="%s">%s</a></p>
    `, changes, url, url))
	text := fmt.Sprintf("Your ticket has been updated.\nChanges: %s\nView details: %s\n", changes, url)
	return Message{Subject: subject, HTML: html, Text: text}
}

// CommentAdded renders the notification for a new comment on a ticket.
func CommentAdded(ticket domain.Ticket, comment domain.Comment, baseURL string) Message {
	subject := fmt.Sprintf("[#%s] New comment on: %s", shortID(ticket.ID), ticket.Subject)
	url := ticketURL(baseURL, ticket.ID)
	html := layoutHTML(subject, fmt.Sprintf(`
      <p><strong>%s</strong> commented:</p>
      <blockquote style="margin: 12px 0; padding: 12px; background: #f8f8f8; border-left: 3px solid #ddd;">
        %s
      </blockquote>
      <p>Reply or view the thread: <a href="%s">%s</a></p>
    `, comment.Author, strings.ReplaceAll(comment.Body, "\n", "<br/>"), url, url))
	text := fmt.Sprintf("%s commented:\n\n%s\n\nReply: %s\n", comment.Author, comment.Body, url)
	return Message{Subject: subject, HTML: html, Text: text}
}
