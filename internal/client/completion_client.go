package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"project-plan-api/internal/config"
	"project-plan-api/internal/metrics"
)

// ErrMissingAPIKey is returned when a completion is requested but no API
// key was configured. Construction itself never fails: the key is only
// required once an AI endpoint is actually invoked.
var ErrMissingAPIKey = errors.New("completion API key is not configured")

// Message is a single chat message in a completion request
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient defines the interface for the external chat-completion
// provider. There is deliberately no retry policy: a failure surfaces
// directly to the caller.
type CompletionClient interface {
	// Complete sends the messages and returns the assistant's raw text
	Complete(ctx context.Context, messages []Message) (string, error)
}

// completionClient implements CompletionClient against an OpenAI-style
// chat-completions endpoint
type completionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewCompletionClient creates a new completion client from config
func NewCompletionClient(cfg config.AIConfig, logger *zap.Logger, m *metrics.Metrics) CompletionClient {
	return &completionClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends a chat-completion request and returns the reply text
func (c *completionClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	jsonBody, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall("/chat/completions", http.MethodPost, statusCode, duration, err)
	}
	if err != nil {
		c.logger.Error("Completion request failed",
			zap.Duration("duration", duration),
			zap.Error(err))
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		c.logger.Error("Completion provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return "", fmt.Errorf("completion provider returned status %d: %s", resp.StatusCode, message)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response contains no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// StripCodeFences removes a surrounding markdown code fence, with or
// without a language tag, from a completion reply.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json")
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
