package main

import (
	"errors"
	"fmt"
)

// ========== 資料模型 ==========

// TripRequest 前端送出的規劃請求
type TripRequest struct {
	Location  string  `json:"location"`
	Budget    float64 `json:"budget"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

// Activities 一天的三個時段，全部都是自由文字
type Activities struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// DayPlan 正規化後的單日行程，四個欄位都有預設值，不會缺漏
type DayPlan struct {
	Day           string     `json:"day"`
	Date          string     `json:"date"`
	Activities    Activities `json:"activities"`
	EstimatedCost float64    `json:"estimated_cost"`
}

// Accommodation 模型回覆裡的住宿建議（可能缺）
type Accommodation struct {
	Type          string  `json:"type"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Itinerary 正規化後的完整行程
type Itinerary struct {
	Location           string         `json:"location"`
	Budget             float64        `json:"budget"`
	TotalDays          int            `json:"total_days,omitempty"`
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	DailyPlan          []DayPlan      `json:"daily_plan"`
	Accommodation      *Accommodation `json:"accommodation,omitempty"`
	TotalEstimatedCost float64        `json:"total_estimated_cost,omitempty"`
}

// ========== 狀態機 ==========

// PlanState 規劃流程目前所在的狀態
type PlanState string

const (
	StateIdle        PlanState = "idle"
	StateValidating  PlanState = "validating"
	StateRequesting  PlanState = "requesting"
	StateNormalizing PlanState = "normalizing"
	StateReady       PlanState = "ready"
	StateFailed      PlanState = "failed"
)

// ========== 錯誤分類 ==========

var (
	// ErrInvalidDateRange 日期順序錯誤，請求不會送出
	ErrInvalidDateRange = errors.New("start date cannot be after end date")

	// ErrPlannerBusy 已有請求進行中，新的提交直接拒絕不排隊
	ErrPlannerBusy = errors.New("a travel plan request is already in progress")

	// ErrNotReady 尚未有行程可供重新排序
	ErrNotReady = errors.New("no travel plan is ready")
)

// GenerationError 生成端（網路 / 模型）失敗，原始錯誤訊息保留給使用者
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate travel plan: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedResponseError 修復流程用盡後仍解析失敗
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse travel plan data: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
