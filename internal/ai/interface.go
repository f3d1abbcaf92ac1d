// README: Provider contract for the site support assistant.
package ai

import (
	"context"
)

// Assistant defines the contract for the support-chat model backend.
// The interface allows swapping providers (Gemini, OpenAI, etc.) without
// touching the HTTP layer.
type Assistant interface {
	// Answer produces one assistant turn for userMessage, given the prior
	// conversation history in order.
	Answer(ctx context.Context, history []Message, userMessage string) (*Reply, error)
}
