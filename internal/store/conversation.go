package store

import (
	"context"
	"fmt"

	"finconnect/internal/core"
)

// SendAssistantMessage appends the user's message to the conversation log,
// waits out the simulated inference delay, then appends the responder's
// reply and returns it. Cancelling the context after the user message has
// been appended leaves it in the log, as the original did.
func (s *Store) SendAssistantMessage(ctx context.Context, content, projectContext string) (core.AssistantMessage, error) {
	s.mu.Lock()
	userMsg := core.AssistantMessage{
		ID:             newID("ai"),
		Role:           core.RoleUser,
		Content:        content,
		Timestamp:      s.now(),
		ProjectContext: projectContext,
	}
	s.messages = append(s.messages, userMsg)
	s.mu.Unlock()

	if err := s.simulateLatency(ctx); err != nil {
		return core.AssistantMessage{}, err
	}

	reply, err := s.responder.Respond(ctx, content, projectContext)
	if err != nil {
		return core.AssistantMessage{}, fmt.Errorf("generate assistant reply: %w", err)
	}

	s.mu.Lock()
	assistantMsg := core.AssistantMessage{
		ID:             newID("ai"),
		Role:           core.RoleAssistant,
		Content:        reply,
		Timestamp:      s.now(),
		ProjectContext: projectContext,
	}
	s.messages = append(s.messages, assistantMsg)
	s.mu.Unlock()

	return assistantMsg, nil
}

// ClearAssistantHistory resets the conversation log to the seed greeting.
func (s *Store) ClearAssistantHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []core.AssistantMessage{s.greeting}
}

// Messages returns the conversation log in append order.
func (s *Store) Messages() []core.AssistantMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.AssistantMessage(nil), s.messages...)
}
