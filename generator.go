package main

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// ========== 生成端介面 ==========

// PlanGenerator 抽象生成端，換供應商或測試時 Mock 都走這裡
type PlanGenerator interface {
	Generate(ctx context.Context, req TripRequest) (string, error)
}

// buildGenerator 依 LLM_PROVIDER 選擇實作，預設走 Gemini
func buildGenerator() (PlanGenerator, error) {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	switch provider {
	case "", "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		return &geminiGenerator{apiKey: apiKey, model: geminiModelName()}, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return &openaiGenerator{
			apiKey:  apiKey,
			model:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
			baseURL: os.Getenv("OPENAI_BASE_URL"),
		}, nil
	case "mock":
		// 本地開發不打外部模型
		return mockGenerator{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", provider)
	}
}

func geminiModelName() string {
	return envOr("GEMINI_MODEL", "gemini-2.5-flash-lite")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// mockGenerator 回傳固定的範例行程，方便本地跑整個流程
type mockGenerator struct{}

func (mockGenerator) Generate(_ context.Context, req TripRequest) (string, error) {
	days := tripDays(req.StartDate, req.EndDate)
	if days < 1 {
		days = 1
	}
	var sb strings.Builder
	sb.WriteString("```json\n{\n")
	sb.WriteString(fmt.Sprintf("  %q: %q,\n", "location", req.Location))
	sb.WriteString(fmt.Sprintf("  %q: %d,\n", "budget", budgetInINR(req.Budget)))
	sb.WriteString(fmt.Sprintf("  %q: %q,\n", "start_date", req.StartDate))
	sb.WriteString(fmt.Sprintf("  %q: %q,\n", "end_date", req.EndDate))
	sb.WriteString("  \"daily_plan\": [\n")
	for i := 0; i < days; i++ {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(fmt.Sprintf(`    {"day": "Day %d", "date": %q, "activities": {"morning": "Walk around %s", "afternoon": "Local market", "evening": "Street food"}, "estimated_cost": 3000}`,
			i+1, req.StartDate, req.Location))
	}
	sb.WriteString("\n  ]\n}\n```")
	return sb.String(), nil
}
