package genai

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// Claude Sonnet pricing per million tokens.
const (
	anthropicInputPerMTok  = 3.0
	anthropicOutputPerMTok = 15.0
)

// anthropicService implements Service using the Anthropic SDK.
// anthropic.Client is a value type; the SDK's NewClient returns it by value.
type anthropicService struct {
	client anthropic.Client
	model  string
}

func newAnthropicService(model string) (Service, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("genai: ANTHROPIC_API_KEY environment variable not set")
	}
	if model == "" {
		model = defaultAnthropicModel
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &anthropicService{client: client, model: model}, nil
}

func (s *anthropicService) GenerateFromBrief(ctx context.Context, brief string) (*Result, error) {
	return s.complete(ctx, buildBriefPrompt(brief))
}

func (s *anthropicService) PatchCode(ctx context.Context, currentCode, instruction string) (*Result, error) {
	return s.complete(ctx, buildPatchPrompt(currentCode, instruction))
}

func (s *anthropicService) complete(ctx context.Context, userPrompt string) (*Result, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: maxOutputTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		// block.Type is a string field from the Anthropic API; "text" is the
		// only content type that carries assistant text output.
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("anthropic: response contained no text content blocks")
	}

	usage := Usage{
		InputTokens:  msg.Usage.InputTokens,
		OutputTokens: msg.Usage.OutputTokens,
	}
	return &Result{
		Code:    extractCode(strings.Join(parts, "")),
		Model:   string(msg.Model),
		Usage:   usage,
		CostUSD: tokenCost(usage, anthropicInputPerMTok, anthropicOutputPerMTok),
	}, nil
}

// tokenCost converts reported usage into dollars at per-million-token rates.
func tokenCost(u Usage, inputPerMTok, outputPerMTok float64) float64 {
	return float64(u.InputTokens)/1_000_000*inputPerMTok +
		float64(u.OutputTokens)/1_000_000*outputPerMTok
}
