package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDirectParse(t *testing.T) {
	raw := `{
		"location": "Paris",
		"budget": 83000,
		"start_date": "2024-06-01",
		"end_date": "2024-06-03",
		"daily_plan": [
			{
				"day": "Day 1",
				"date": "2024-06-01",
				"activities": {"morning": "Louvre", "afternoon": "Seine walk", "evening": "Dinner"},
				"estimated_cost": 3000
			}
		]
	}`

	it, outcome, err := normalizeResponse(raw)
	require.NoError(t, err)
	require.Equal(t, parseDirect, outcome)
	require.Equal(t, "Paris", it.Location)
	require.Equal(t, float64(83000), it.Budget)
	require.Len(t, it.DailyPlan, 1)
	require.Equal(t, "Louvre", it.DailyPlan[0].Activities.Morning)
	require.Equal(t, float64(3000), it.DailyPlan[0].EstimatedCost)
}

func TestNormalizeFencedMissingCost(t *testing.T) {
	raw := "```json\n{\n" +
		`"location": "Paris", "budget": 83000, "start_date": "2024-06-01", "end_date": "2024-06-03",` +
		`"daily_plan": [{"day": "Day 1", "date": "2024-06-01", "activities": {"morning": "Louvre", "afternoon": "Seine walk", "evening": "Dinner"}}]` +
		"\n}\n```"

	it, outcome, err := normalizeResponse(raw)
	require.NoError(t, err)
	require.Equal(t, parseDirect, outcome)
	require.Len(t, it.DailyPlan, 1)
	d := it.DailyPlan[0]
	require.Equal(t, "Day 1", d.Day)
	require.Equal(t, "2024-06-01", d.Date)
	require.Equal(t, "Louvre", d.Activities.Morning)
	require.Equal(t, "Seine walk", d.Activities.Afternoon)
	require.Equal(t, "Dinner", d.Activities.Evening)
	require.Equal(t, float64(0), d.EstimatedCost)
}

func TestNormalizeRepairLadder(t *testing.T) {
	// 未加引號的 key 加上 undefined 值，是實際看過的兩種壞輸出
	raw := "{location: 'Paris', daily_plan: undefined}"

	it, outcome, err := normalizeResponse(raw)
	require.NoError(t, err)
	require.Equal(t, parseRepaired, outcome)
	require.Equal(t, "Paris", it.Location)
	require.NotNil(t, it.DailyPlan)
	require.Empty(t, it.DailyPlan)
}

func TestNormalizeGarbageFails(t *testing.T) {
	_, _, err := normalizeResponse("sorry, I could not generate a plan today")
	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
}

func TestNormalizeDefaultingTotality(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want DayPlan
	}{
		{
			name: "entirely empty entry",
			raw:  `{"daily_plan": [{}]}`,
			want: DayPlan{
				Day:  "Day 1",
				Date: "N/A",
				Activities: Activities{
					Morning:   "No activities planned",
					Afternoon: "No activities planned",
					Evening:   "No activities planned",
				},
				EstimatedCost: 0,
			},
		},
		{
			name: "partial activities",
			raw:  `{"daily_plan": [{"day": "Arrival", "activities": {"morning": "Check in"}}]}`,
			want: DayPlan{
				Day:  "Arrival",
				Date: "N/A",
				Activities: Activities{
					Morning:   "Check in",
					Afternoon: "No activities planned",
					Evening:   "No activities planned",
				},
				EstimatedCost: 0,
			},
		},
		{
			name: "string cost is coerced",
			raw:  `{"daily_plan": [{"estimated_cost": "₹2500"}]}`,
			want: DayPlan{
				Day:  "Day 1",
				Date: "N/A",
				Activities: Activities{
					Morning:   "No activities planned",
					Afternoon: "No activities planned",
					Evening:   "No activities planned",
				},
				EstimatedCost: 2500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, _, err := normalizeResponse(tt.raw)
			require.NoError(t, err)
			require.Len(t, it.DailyPlan, 1)
			require.Equal(t, tt.want, it.DailyPlan[0])
		})
	}
}

func TestNormalizeDropsNonObjectEntries(t *testing.T) {
	raw := `{"daily_plan": ["junk", {"date": "2024-06-01"}, 42, {}, null]}`

	it, _, err := normalizeResponse(raw)
	require.NoError(t, err)
	require.Len(t, it.DailyPlan, 2)
	// 保留下來的序列重新連號，從 Day 1 開始
	require.Equal(t, "Day 1", it.DailyPlan[0].Day)
	require.Equal(t, "2024-06-01", it.DailyPlan[0].Date)
	require.Equal(t, "Day 2", it.DailyPlan[1].Day)
}

func TestNormalizeNonArrayDailyPlan(t *testing.T) {
	tests := []string{
		`{"location": "Kyoto"}`,
		`{"location": "Kyoto", "daily_plan": null}`,
		`{"location": "Kyoto", "daily_plan": "three days of fun"}`,
		`{"location": "Kyoto", "daily_plan": {"day": "Day 1"}}`,
	}
	for _, raw := range tests {
		it, _, err := normalizeResponse(raw)
		require.NoError(t, err, raw)
		require.NotNil(t, it.DailyPlan, raw)
		require.Empty(t, it.DailyPlan, raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := "```json\n{location: 'Paris', budget: 83000, " +
		"daily_plan: [{day: undefined, activities: {morning: 'Louvre'}}]}\n```"

	once, _, err := normalizeResponse(raw)
	require.NoError(t, err)

	data, err := json.Marshal(once)
	require.NoError(t, err)

	twice, outcome, err := normalizeResponse(string(data))
	require.NoError(t, err)
	require.Equal(t, parseDirect, outcome)
	require.Equal(t, once, twice)
}

func TestNormalizeAccommodation(t *testing.T) {
	raw := `{"location": "Delhi", "daily_plan": [], "accommodation": {"type": "Budget Hotel", "estimated_cost": 4000}, "total_estimated_cost": 82000}`

	it, _, err := normalizeResponse(raw)
	require.NoError(t, err)
	require.NotNil(t, it.Accommodation)
	require.Equal(t, "Budget Hotel", it.Accommodation.Type)
	require.Equal(t, float64(4000), it.Accommodation.EstimatedCost)
	require.Equal(t, float64(82000), it.TotalEstimatedCost)
}
