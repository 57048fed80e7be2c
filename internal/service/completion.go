package service

import (
	"context"
	"encoding/json"
	"errors"

	"project-plan-api/internal/client"
	"project-plan-api/internal/response"
)

// completeJSONStrict runs a completion and decodes the reply, separating
// provider failures from replies that do not match the promised shape.
// The two get distinct error codes so callers can tell an outage from a
// broken contract.
func completeJSONStrict(ctx context.Context, cl client.CompletionClient, system, user string, out interface{}) error {
	messages := []client.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	return completeMessagesJSONStrict(ctx, cl, messages, out)
}

func completeMessagesJSONStrict(ctx context.Context, cl client.CompletionClient, messages []client.Message, out interface{}) error {
	text, err := cl.Complete(ctx, messages)
	if err != nil {
		if errors.Is(err, client.ErrMissingAPIKey) {
			return response.NewAppError(response.ErrCodeUpstreamAI, "Completion provider is not configured", err.Error())
		}
		return response.NewAppError(response.ErrCodeUpstreamAI, "Completion provider call failed", err.Error())
	}

	if err := json.Unmarshal([]byte(client.StripCodeFences(text)), out); err != nil {
		return response.NewAppError(response.ErrCodeUpstreamContract, "Completion reply did not match the expected schema", err.Error())
	}
	return nil
}
