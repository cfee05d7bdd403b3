package genai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const defaultOpenAIModel = "gpt-4o"

// GPT-4o pricing per million tokens.
const (
	openaiInputPerMTok  = 2.5
	openaiOutputPerMTok = 10.0
)

// openaiService implements Service using the OpenAI SDK.
type openaiService struct {
	client openai.Client
	model  string
}

func newOpenAIService(model string) (Service, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("genai: OPENAI_API_KEY environment variable not set")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &openaiService{client: client, model: model}, nil
}

func (s *openaiService) GenerateFromBrief(ctx context.Context, brief string) (*Result, error) {
	return s.complete(ctx, buildBriefPrompt(brief))
}

func (s *openaiService) PatchCode(ctx context.Context, currentCode, instruction string) (*Result, error) {
	return s.complete(ctx, buildPatchPrompt(currentCode, instruction))
}

func (s *openaiService) complete(ctx context.Context, userPrompt string) (*Result, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     shared.ChatModel(s.model),
		MaxTokens: openai.Int(maxOutputTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: chat.completions.new: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response contained no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("openai: response contained no content")
	}

	usage := Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}
	return &Result{
		Code:    extractCode(content),
		Model:   resp.Model,
		Usage:   usage,
		CostUSD: tokenCost(usage, openaiInputPerMTok, openaiOutputPerMTok),
	}, nil
}
