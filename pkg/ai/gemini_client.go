package ai

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGemini builds the production gateway. The client is constructed here
// once and injected by the composition root; there is no package-level
// instance.
func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, &GatewayError{Cause: err}
	}
	return &gemini{client: c, model: model, log: log}, nil
}

func (g *gemini) Invoke(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(float32(0.2)),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		g.log.Warn("generate content failed", zap.String("model", g.model), zap.Error(err))
		return "", &GatewayError{Cause: err}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	g.log.Debug("generate content ok", zap.String("model", g.model), zap.Int("bytes", len(text)))
	return text, nil
}
