package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ========== 規劃流程控制 ==========
//
// Planner 是整個提交流程的狀態機：
//   Idle → Validating → Requesting → Normalizing → Ready
// 任何一步失敗就進 Failed，下一次提交會重新走一遍。
// 同時間最多一個請求在途，忙碌中的提交直接拒絕不排隊。

type Planner struct {
	gen PlanGenerator

	mu        sync.Mutex
	state     PlanState
	lastError string
	itinerary *Itinerary
	order     DisplayOrder
	requestID string
	faulted   bool
	inFlight  bool
}

func NewPlanner(gen PlanGenerator) *Planner {
	return &Planner{gen: gen, state: StateIdle}
}

// Snapshot 畫面層需要的目前狀態
type Snapshot struct {
	State     PlanState  `json:"state"`
	Error     string     `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	Order     []int      `json:"order,omitempty"`
}

// Submit 跑完整個提交流程：驗證 → 請求 → 正規化 → 儲存。
// 回傳的錯誤屬於 §錯誤分類 其中之一，訊息已經存進狀態裡。
func (p *Planner) Submit(ctx context.Context, req TripRequest) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return ErrPlannerBusy
	}
	p.inFlight = true
	p.state = StateValidating
	p.requestID = uuid.NewString()
	reqID := p.requestID
	p.mu.Unlock()

	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		p.fail(err.Error())
		return err
	}

	p.setState(StateRequesting)
	log.Printf("[plan %s] requesting plan for %q (%s ~ %s)", reqID, req.Location, req.StartDate, req.EndDate)

	raw, err := p.gen.Generate(ctx, req)
	if err != nil {
		genErr := &GenerationError{Err: err}
		p.fail("Failed to generate travel plan: " + err.Error())
		return genErr
	}

	p.setState(StateNormalizing)

	it, outcome, err := normalizeResponse(raw)
	if err != nil {
		p.fail("Failed to parse travel plan data. Please try again.")
		return err
	}
	if outcome == parseRepaired {
		log.Printf("[plan %s] response needed textual repair before parsing", reqID)
	}

	p.mu.Lock()
	p.itinerary = &it
	p.order.Reset(len(it.DailyPlan))
	p.state = StateReady
	p.lastError = ""
	p.faulted = false
	p.inFlight = false
	p.mu.Unlock()

	log.Printf("[plan %s] ready with %d day(s)", reqID, len(it.DailyPlan))
	return nil
}

// Reorder 只在 Ready 狀態下調整顯示順序，id 無效時由 DisplayOrder 自己忽略
func (p *Planner) Reorder(fromID, toID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateReady {
		return ErrNotReady
	}
	p.order.Move(fromID, toID)
	return nil
}

// Snapshot 回傳目前狀態的複本
func (p *Planner) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		State:     p.state,
		Error:     p.lastError,
		RequestID: p.requestID,
	}
	if p.state == StateReady && p.itinerary != nil {
		it := *p.itinerary
		snap.Itinerary = &it
		snap.Order = p.order.Current()
	}
	return snap
}

// MarkFaulted 呈現過程出錯時記下來，畫面改走 fallback
func (p *Planner) MarkFaulted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.faulted = true
}

// ResetDisplay 清掉呈現層的故障旗標，不重送請求
func (p *Planner) ResetDisplay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.faulted = false
}

// Faulted 呈現層是否處於故障狀態
func (p *Planner) Faulted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.faulted
}

func (p *Planner) setState(s PlanState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Planner) fail(msg string) {
	p.mu.Lock()
	p.state = StateFailed
	p.lastError = msg
	p.inFlight = false
	p.mu.Unlock()
}

// validateDates 日期格式與先後順序的本地驗證，不會碰到網路
func validateDates(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, ErrInvalidDateRange)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, ErrInvalidDateRange)
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}
