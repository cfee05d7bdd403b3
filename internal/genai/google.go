package genai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	googleoption "google.golang.org/api/option"
)

const defaultGoogleModel = "gemini-1.5-pro"

// Gemini 1.5 Pro pricing per million tokens.
const (
	googleInputPerMTok  = 1.25
	googleOutputPerMTok = 5.0
)

// googleService implements Service using the Google Generative AI SDK.
// The API key is stored at construction time; a new genai.Client is created
// per call so that the caller's context governs the connection and the
// client is always closed after use.
type googleService struct {
	apiKey string
	model  string
}

func newGoogleService(model string) (Service, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("genai: GOOGLE_API_KEY environment variable not set")
	}
	if model == "" {
		model = defaultGoogleModel
	}
	return &googleService{apiKey: apiKey, model: model}, nil
}

func (s *googleService) GenerateFromBrief(ctx context.Context, brief string) (*Result, error) {
	return s.complete(ctx, buildBriefPrompt(brief))
}

func (s *googleService) PatchCode(ctx context.Context, currentCode, instruction string) (*Result, error) {
	return s.complete(ctx, buildPatchPrompt(currentCode, instruction))
}

func (s *googleService) complete(ctx context.Context, userPrompt string) (*Result, error) {
	client, err := genai.NewClient(ctx, googleoption.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("google: genai client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(s.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	maxOut := int32(maxOutputTokens)
	m.MaxOutputTokens = &maxOut

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("google: generate content: %w", err)
	}

	var parts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				parts = append(parts, string(t))
			}
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("google: response contained no text content")
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			InputTokens:  int64(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return &Result{
		Code:    extractCode(strings.Join(parts, "")),
		Model:   s.model,
		Usage:   usage,
		CostUSD: tokenCost(usage, googleInputPerMTok, googleOutputPerMTok),
	}, nil
}
