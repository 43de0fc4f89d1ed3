package main

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ========== 回應修復與正規化 ==========
//
// 模型不保證回傳嚴格 JSON，這裡只做兩段式的有限修復：
// 先處理 undefined、再補上未加引號的 key，各針對實際觀察過的壞輸出，
// 不做通用的寬鬆解析器，修不好就直接失敗。

// 預先編譯的修復 pattern
var (
	// fencePattern 去掉 markdown code fence 標記
	fencePattern = regexp.MustCompile("```json|```")
	// bareKeyPattern 找出物件裡沒加引號的 key：{ 或 , 之後的識別字接冒號
	bareKeyPattern = regexp.MustCompile(`([{,]\s*)([a-zA-Z0-9_]+)(\s*:)`)
	// singleQuotePattern 單引號字串換成雙引號
	singleQuotePattern = regexp.MustCompile(`'([^']*)'`)
)

// parseOutcome 標記是哪一段解析成功的
type parseOutcome int

const (
	parseDirect parseOutcome = iota
	parseRepaired
)

// repairJSON 套用兩個針對性修復：undefined 值換 null、bare key 補引號。
// 單引號字串順手換成雙引號，否則補完 key 之後值還是解不開。
func repairJSON(s string) string {
	s = strings.ReplaceAll(s, ": undefined", ": null")
	s = bareKeyPattern.ReplaceAllString(s, `$1"$2"$3`)
	s = singleQuotePattern.ReplaceAllString(s, `"$1"`)
	return s
}

// parseWithRepair 先直接解析，失敗才修復後再試一次，之後不再重試
func parseWithRepair(raw string) (map[string]any, parseOutcome, error) {
	stripped := strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripped), &parsed); err == nil {
		return parsed, parseDirect, nil
	}

	repaired := repairJSON(stripped)
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, parseRepaired, fmt.Errorf("travel plan response is not valid JSON: %w", err)
	}
	return parsed, parseRepaired, nil
}

// normalizeResponse 將模型回傳的原始文字轉成完整的 Itinerary。
// 解析失敗回傳 MalformedResponseError；解析成功則保證每個欄位都有值。
func normalizeResponse(raw string) (Itinerary, parseOutcome, error) {
	parsed, outcome, err := parseWithRepair(raw)
	if err != nil {
		return Itinerary{}, outcome, &MalformedResponseError{Err: err}
	}
	return buildItinerary(parsed), outcome, nil
}

// buildItinerary 逐欄位補預設值，daily_plan 不是陣列一律當空陣列
func buildItinerary(parsed map[string]any) Itinerary {
	it := Itinerary{
		Location:           toString(parsed["location"]),
		Budget:             toFloat(parsed["budget"]),
		TotalDays:          int(toFloat(parsed["total_days"])),
		StartDate:          toString(parsed["start_date"]),
		EndDate:            toString(parsed["end_date"]),
		DailyPlan:          []DayPlan{},
		TotalEstimatedCost: toFloat(parsed["total_estimated_cost"]),
	}

	if acc, ok := parsed["accommodation"].(map[string]any); ok {
		it.Accommodation = &Accommodation{
			Type:          toString(acc["type"]),
			EstimatedCost: coerceCost(acc["estimated_cost"]),
		}
	}

	days, _ := parsed["daily_plan"].([]any)
	for _, entry := range days {
		m, ok := entry.(map[string]any)
		if !ok {
			// 不是物件的項目直接丟掉，不佔編號
			continue
		}
		i := len(it.DailyPlan)
		it.DailyPlan = append(it.DailyPlan, buildDayPlan(m, i))
	}

	return it
}

// buildDayPlan 單日行程的逐欄位預設，i 是保留序列中的位置（0 起算）
func buildDayPlan(m map[string]any, i int) DayPlan {
	acts, _ := m["activities"].(map[string]any)

	return DayPlan{
		Day:  stringOr(m["day"], fmt.Sprintf("Day %d", i+1)),
		Date: stringOr(m["date"], "N/A"),
		Activities: Activities{
			Morning:   stringOr(acts["morning"], "No activities planned"),
			Afternoon: stringOr(acts["afternoon"], "No activities planned"),
			Evening:   stringOr(acts["evening"], "No activities planned"),
		},
		EstimatedCost: coerceCost(m["estimated_cost"]),
	}
}
