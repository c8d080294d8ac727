package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

// Backend performs one text generation call with the given credential.
type Backend interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
}

// GeminiBackend talks to the Gemini API. Credentials belong to sessions, so
// a client is opened for every call and closed when it returns.
type GeminiBackend struct {
	model string
}

func NewGeminiBackend(model string) *GeminiBackend {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiBackend{model: model}
}

func (g *GeminiBackend) Model() string {
	return g.model
}

func (g *GeminiBackend) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no content generated")
	}
	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
