package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements RankingBackend over any OpenAI-compatible API.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds the provider settings.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // optional; empty means the default OpenAI endpoint
	Model   string
}

func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIBackend{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// RankCandidates sends one ranking request. Transport failures surface as
// errors; an undecodable reply comes back as an empty RankResponse.
func (o *OpenAIBackend) RankCandidates(ctx context.Context, req RankRequest) (RankResponse, error) {
	prompt, err := buildRankPrompt(req)
	if err != nil {
		return RankResponse{}, err
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: rankInstruction(req.Language)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return RankResponse{}, fmt.Errorf("openai completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return RankResponse{}, nil
	}

	return RankResponse{Results: decodeRankResults(resp.Choices[0].Message.Content)}, nil
}
