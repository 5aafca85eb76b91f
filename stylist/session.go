// Package stylist runs the chat-style styling assistant: a transcript of
// turns forwarded in full to a remote completion API, one request in
// flight at a time.
package stylist

import (
	"context"
	"errors"
	"sync"

	"github.com/nomad-essentials/storefront/models"
)

// WelcomeMessage opens every transcript.
const WelcomeMessage = "Welcome to NOMAD. I am your personal stylist. How can I help you curate your uniform today?"

// In-character fallbacks. Remote failures and empty replies never surface
// as errors; they degrade to these lines.
const (
	fallbackReply = "I'm experiencing a brief moment of reflection. Please try again in a moment."
	emptyReply    = "I'm sorry, I couldn't process that request. How else can I help you style your NOMAD collection today?"
)

// ErrBusy is returned while a previous reply is still pending. Callers
// disable submission until the pending call resolves.
var ErrBusy = errors.New("stylist: a reply is already pending")

// Session is one visitor's conversation with the stylist.
type Session struct {
	responder Responder
	catalog   Catalog

	mu         sync.Mutex
	pending    bool
	transcript []models.ChatMessage
}

// NewSession seeds the transcript with the welcome message.
func NewSession(responder Responder, catalog Catalog) *Session {
	return &Session{
		responder:  responder,
		catalog:    catalog,
		transcript: []models.ChatMessage{{Role: models.RoleModel, Text: WelcomeMessage}},
	}
}

// Transcript returns the conversation so far.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

// Send appends the user's turn, forwards the full transcript plus the
// system prompt to the responder, appends the reply, and returns it.
//
// The only error Send ever returns is ErrBusy; remote failures are mapped
// to the fixed fallback line and an empty reply to the fixed empty-reply
// line. No timeout is enforced beyond whatever the caller's context
// carries; a hung backend leaves the session pending.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.pending = true
	s.transcript = append(s.transcript, models.ChatMessage{Role: models.RoleUser, Text: text})
	transcript := append([]models.ChatMessage(nil), s.transcript...)
	s.mu.Unlock()

	reply, err := s.responder.Reply(ctx, systemPrompt(s.catalog), transcript)
	if err != nil {
		reply = fallbackReply
	} else if reply == "" {
		reply = emptyReply
	}

	s.mu.Lock()
	s.pending = false
	s.transcript = append(s.transcript, models.ChatMessage{Role: models.RoleModel, Text: reply})
	s.mu.Unlock()

	return reply, nil
}
