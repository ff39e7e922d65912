// Package assistant provides the mocked budget-assistant reply generation.
//
// The responder is a strategy interface so a real inference backend can be
// swapped in without touching the store's message-log management.
package assistant

import (
	"context"
	"strings"
)

// ResponseGenerator produces an assistant reply for a user prompt.
// projectContext is the optional project the conversation is scoped to.
type ResponseGenerator interface {
	Respond(ctx context.Context, content, projectContext string) (string, error)
}

// Greeting is the seed message the conversation log starts with and is reset
// to when the history is cleared.
const Greeting = "Hi Sarah! I'm your AI Budget Assistant. I can help you analyze your spending, suggest ways to save, and answer questions about your projects. What would you like to know?"

const (
	overspendResponse = "Based on your spending data, you're currently spending within your planned budget for most categories. However, I notice your \"Food\" spending is 15% higher than planned. Consider meal planning and cooking at home more often to reduce this expense."

	savingsResponse = "Here are some personalized saving tips:\n\n1. Transportation: You've spent $850 on flights. Consider using flight comparison tools and booking in advance for better deals.\n\n2. Food: Your food expenses could be reduced by 20-30% through meal prepping and limiting dining out to once per week.\n\n3. Set up automatic transfers to a savings account right after payday to make saving effortless."

	categoryResponse = "Your top 3 spending categories are:\n\n1. Accommodation: $1,400 (28% of total)\n2. Transportation: $850 (17% of total)\n3. Materials: $450 (9% of total)\n\nYour spending pattern looks healthy and aligns with your vacation planning goals."

	budgetResponse = "Your current spending is $2,430 out of your $5,000 budget (49% used). You're on track! I recommend allocating the remaining $2,570 as follows:\n\n- Food: $800\n- Activities: $1,200\n- Contingency: $570\n\nThis will give you a comfortable buffer for unexpected expenses."

	fallbackResponse = "I'd be happy to help you with that! I can analyze your spending patterns, compare planned vs actual budgets, suggest ways to save money, or answer specific questions about your projects. What would you like to explore?"
)

// KeywordResponder selects a canned reply by substring matching against the
// lower-cased prompt. Branches are mutually exclusive and evaluated in a fixed
// priority order, first match wins.
type KeywordResponder struct{}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{}
}

func (r *KeywordResponder) Respond(_ context.Context, content, _ string) (string, error) {
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(lower, "overspend") || strings.Contains(lower, "over budget"):
		return overspendResponse, nil
	case strings.Contains(lower, "save") || strings.Contains(lower, "reduce"):
		return savingsResponse, nil
	case strings.Contains(lower, "category") || strings.Contains(lower, "spending"):
		return categoryResponse, nil
	case strings.Contains(lower, "budget") || strings.Contains(lower, "plan"):
		return budgetResponse, nil
	}
	return fallbackResponse, nil
}
