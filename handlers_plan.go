package main

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

// ========== API Handlers ==========

type app struct {
	planner *Planner
}

func newApp(gen PlanGenerator) *app {
	return &app{planner: NewPlanner(gen)}
}

// submitPlan POST /api/plan — 整個提交流程同步跑完才回應
func (a *app) submitPlan(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "JSON 格式錯誤: " + err.Error()})
		return
	}

	err := a.planner.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(200, a.renderSnapshot())
	case errors.Is(err, ErrPlannerBusy):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidDateRange):
		c.JSON(400, gin.H{"error": err.Error(), "state": StateFailed})
	default:
		var genErr *GenerationError
		if errors.As(err, &genErr) {
			c.JSON(502, gin.H{"error": "Failed to generate travel plan: " + genErr.Err.Error(), "state": StateFailed})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to parse travel plan data. Please try again.", "state": StateFailed})
	}
}

// getPlan GET /api/plan — 目前狀態快照
func (a *app) getPlan(c *gin.Context) {
	c.JSON(200, a.renderSnapshot())
}

// reorderPlan POST /api/plan/reorder — 只改顯示順序，行程本身不動
func (a *app) reorderPlan(c *gin.Context) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := a.planner.Reorder(req.From, req.To); err != nil {
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, a.renderSnapshot())
}

// resetPlan POST /api/plan/reset — 清掉呈現層故障狀態，不重送請求
func (a *app) resetPlan(c *gin.Context) {
	a.planner.ResetDisplay()
	c.JSON(200, a.renderSnapshot())
}

// ========== 呈現層 ==========

// renderSnapshot 組出畫面要的 JSON。卡片渲染包在 recover 裡，
// 單一行程的意外欄位不會弄掛整個回應，只會換成 fallback。
func (a *app) renderSnapshot() gin.H {
	snap := a.planner.Snapshot()

	out := gin.H{"state": snap.State}
	if snap.Error != "" {
		out["error"] = snap.Error
	}
	if snap.RequestID != "" {
		out["request_id"] = snap.RequestID
	}

	if a.planner.Faulted() {
		out["render_fault"] = true
		out["fallback"] = "There was an error loading your travel plan. Please try again or refresh the page."
		return out
	}

	if snap.Itinerary != nil {
		cards, ok := a.safeRenderCards(snap.Itinerary, snap.Order)
		if !ok {
			out["render_fault"] = true
			out["fallback"] = "There was an error loading your travel plan. Please try again or refresh the page."
			return out
		}
		out["itinerary"] = snap.Itinerary
		out["order"] = snap.Order
		out["cards"] = cards
	}
	return out
}

// safeRenderCards 把渲染包進 recover，恐慌時標記故障並回 fallback
func (a *app) safeRenderCards(it *Itinerary, order []int) (cards []gin.H, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ render fault: %v", r)
			a.planner.MarkFaulted()
			cards, ok = nil, false
		}
	}()
	return renderCards(it, order), true
}

// renderCards 依顯示順序展開卡片，費用轉成 ₹ 前綴的顯示字串
func renderCards(it *Itinerary, order []int) []gin.H {
	cards := make([]gin.H, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(it.DailyPlan) {
			continue
		}
		d := it.DailyPlan[idx]
		cards = append(cards, gin.H{
			"day":            d.Day,
			"date":           d.Date,
			"activities":     d.Activities,
			"estimated_cost": formatCost(d.EstimatedCost),
		})
	}
	return cards
}
