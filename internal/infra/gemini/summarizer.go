// Package gemini implements the summarization service on top of the Google
// generative language API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"igpress/config"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const promptTemplate = `You are a professional social media content summarizer.
Your task is to summarize the following social media post into concise, engaging content
that fits Instagram's character limit (max 2200 characters).
Maintain the original message's key points and tone while making it more concise.
Do not include hashtags unless they were in the original content.
Do not add any additional commentary or notes.
Just return the summarized content.

Here's the content to summarize:
%s`

type summarizer struct {
	model *genai.GenerativeModel
}

// NewSummarizer creates a Gemini-backed summarizer from the service
// configuration.
func NewSummarizer(ctx context.Context, cfg *config.Config) (service.Summarizer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative language client: %w", err)
	}

	model := client.GenerativeModel(cfg.Gemini.Model)
	if instruction := strings.TrimSpace(cfg.Gemini.SystemInstruction); instruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(instruction)},
		}
	}
	if cfg.Gemini.Temperature > 0 {
		model.SetTemperature(cfg.Gemini.Temperature)
	}

	return &summarizer{model: model}, nil
}

// Summarize sends the content through the model and returns the produced
// caption. Model failures surface as upstream errors.
func (s *summarizer) Summarize(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, content)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerrors.NewUpstreamError(err.Error())
	}

	summary := extractText(resp)
	if summary == "" {
		return "", domainerrors.NewUpstreamError("summarization model returned no content")
	}

	return summary, nil
}

// extractText flattens the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String())
}
