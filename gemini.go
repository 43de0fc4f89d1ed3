package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ========== Gemini 呼叫 ==========

type geminiGenerator struct {
	apiKey string
	model  string
}

// Generate 單次呼叫 Gemini，回傳原始文字；網路或模型錯誤原封不動往上丟
func (g *geminiGenerator) Generate(ctx context.Context, req TripRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(8192)

	prompt := buildPlanPrompt(req)
	log.Printf("📤 sending plan request to Gemini (%s)", g.model)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var responseText string
	if len(res.Candidates) > 0 {
		for _, part := range res.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				responseText += string(txt)
			}
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	log.Printf("✅ Gemini responded (%d chars)", len(responseText))
	return responseText, nil
}
