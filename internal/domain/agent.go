package domain

// Agents lists the support agents tickets can be assigned to, in the
// order assignment UIs should present them. No referential constraint is
// enforced on Ticket.AssignedTo; the directory exists for display and
// for resolving notification recipients.
var Agents = []string{
	"Alex Johnson",
	"Maria Chen",
	"Samir Patel",
	"Taylor Smith",
	"Jordan Lee",
}

var agentEmails = map[string]string{
	"Alex Johnson": "alex@example.com",
	"Maria Chen":   "maria@example.com",
	"Samir Patel":  "samir@example.com",
	"Taylor Smith": "taylor@example.com",
	"Jordan Lee":   "jordan@example.com",
}

// AgentEmail returns the email address for a known agent name. The
// second result is false for unknown or empty names.
func AgentEmail(name string) (string, bool) {
	email, ok := agentEmails[name]
	return email, ok
}
