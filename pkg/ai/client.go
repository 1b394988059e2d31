package ai

import (
	"context"

	"google.golang.org/genai"
)

// Client is the inference-service boundary. Exactly one outbound call per
// Invoke; no retries, and no interpretation of the returned payload — the
// schema only biases generation toward the expected shape, validation
// happens downstream.
type Client interface {
	Invoke(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}
