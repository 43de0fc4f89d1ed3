package main

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ========== OpenAI 相容端點 ==========
//
// 走 chat completions，DeepSeek 之類的相容 API 設 OPENAI_BASE_URL 就能用。

type openaiGenerator struct {
	apiKey  string
	model   string
	baseURL string
}

func (o *openaiGenerator) Generate(ctx context.Context, req TripRequest) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(o.apiKey)}
	if o.baseURL != "" {
		opts = append(opts, option.WithBaseURL(o.baseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a travel planning assistant. Respond only with the requested JSON."),
			openai.UserMessage(buildPlanPrompt(req)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
