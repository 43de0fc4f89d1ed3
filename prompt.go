package main

import (
	"fmt"
	"math"
	"strings"
)

// ========== 提示詞 ==========

// usdToINR 固定匯率，只在組提示詞時換算一次。
// 這是已知的近似值，不是即時查詢。
const usdToINR = 83

// budgetInINR 預算換算成顯示幣別（INR），四捨五入取整
func budgetInINR(budget float64) int {
	return int(math.Round(budget * usdToINR))
}

// buildPlanPrompt 組出給模型的提示詞：嵌入四個參數並附上要求的 JSON 結構
func buildPlanPrompt(req TripRequest) string {
	inr := budgetInINR(req.Budget)
	days := tripDays(req.StartDate, req.EndDate)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"Generate a detailed travel plan for %s within a budget of $%.0f (₹%d) from %s to %s for %d days. The response **must be in JSON format** as per the structure below:\n\n",
		req.Location, req.Budget, inr, req.StartDate, req.EndDate, days))

	sb.WriteString(fmt.Sprintf(`{
  "location": "%s",
  "budget": %d,
  "total_days": %d,
  "start_date": "%s",
  "end_date": "%s",
  "daily_plan": [
    {
      "day": "Day 1",
      "date": "%s",
      "activities": {
        "morning": "Visit [Place] and have breakfast at [Local Eatery]",
        "afternoon": "Explore [Market] and enjoy local lunch",
        "evening": "Street food tour at [Location] and local shopping"
      },
      "estimated_cost": 3000
    }
  ],
  "accommodation": {
    "type": "Budget Hotel",
    "estimated_cost": 4000
  },
  "total_estimated_cost": %d
}

`, req.Location, inr, days, req.StartDate, req.EndDate, req.StartDate, inr))

	sb.WriteString(fmt.Sprintf("- Replace placeholders like [Place], [Market], [Local Eatery] with actual popular spots in %s.\n", req.Location))
	sb.WriteString(fmt.Sprintf("- Ensure the estimated cost is realistic and within the ₹%d budget.\n", inr))
	sb.WriteString("- Format all amounts in INR.\n")
	sb.WriteString("- Respond **only with the JSON object** without any additional text or explanations.\n")
	sb.WriteString("- Ensure the output is well-formatted JSON.")

	return sb.String()
}
