// Package llm is the port scorers use to talk to a chat model.
package llm

import "context"

// ChatModel answers one system + user prompt pair with plain text.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ChatFunc adapts a function to ChatModel.
type ChatFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f ChatFunc) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}
