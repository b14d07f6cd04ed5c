// ============================================================================
// Shift-Roster 配置引擎 - 系統核心協調器
// ============================================================================
//
// Package: internal/assignment
// 文件: engine.go
// 功能: 系統核心引擎，把一份配置計畫跑成人員編制與報表
//
// 架構設計:
//   這是整個系統的"大腦"，負責協調以下組件：
//   - staff: 人員實體（Employee / ProductionWorker / ShiftSupervisor）
//     與靜默修正政策
//   - metrics: Prometheus 指標（選配，nil 時自動停用）
//
// 執行流程 (Run):
//   1. 建構所有主管與作業員，逐欄位稽核靜默修正
//   2. 依計畫把作業員提供給主管（Offers 為空時全員提供給每位主管）
//   3. 配置完成後評估每位主管的獎金資格
//   4. 產生每位主管的報表
//
// 修正偵測:
//   staff 層的建構器靜默改寫非法欄位，不回報也不記錄。引擎是
//   唯一的觀測點：它在建構後立即讀回每個欄位與請求值比對，
//   把差異記入日誌與指標。班別不符的指派同樣是靜默的
//   （AddWorker 回傳 nil），引擎靠收編前後的人數差辨認
//
// 額滿處理:
//   編制額滿是唯一會回報錯誤的拒絕。預設整趟執行立即中止；
//   設定 ContinueOnFull 後改為記數並繼續處理剩餘指派
//
// 並發安全:
//   Run 是批次操作，單一 goroutine 執行即可。
//   編制容器本身有自己的鎖，引擎不額外加鎖
//
// ============================================================================

package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ChuLiYu/shift-roster/internal/metrics"
	"github.com/ChuLiYu/shift-roster/internal/staff"
)

var log = slog.Default()

// ============================================================================
// 資料結構定義
// ============================================================================

// Config Engine 配置
type Config struct {
	ContinueOnFull bool               // 編制額滿時繼續處理剩餘指派
	Metrics        *metrics.Collector // 指標收集器（可為 nil）
}

// Engine 核心配置引擎
type Engine struct {
	config Config
}

// ============================================================================
// 核心方法實作
// ============================================================================

// New 建立新的 Engine 實例
//
// 參數：
//   - config: Engine 配置
//
// 返回值：
//   - *Engine: Engine 實例
func New(config Config) *Engine {
	return &Engine{config: config}
}

// Run 執行一份完整的配置計畫
//
// 流程：
//  1. 建構階段：建立所有實體並稽核欄位修正
//  2. 指派階段：依 Offers 把作業員提供給主管
//  3. 結算階段：評估獎金、產生報表、更新指標
//
// 參數：
//   - ctx: 取消用的 context，於主管之間檢查
//   - plan: 配置計畫
//
// 返回值：
//   - *Result: 執行結果
//   - error: 計畫無效或編制額滿（未設 ContinueOnFull）的錯誤
func (e *Engine) Run(ctx context.Context, plan Plan) (*Result, error) {
	start := time.Now()

	if len(plan.Offers) > 0 && len(plan.Offers) != len(plan.Supervisors) {
		return nil, fmt.Errorf("plan has %d offer lists for %d supervisors",
			len(plan.Offers), len(plan.Supervisors))
	}

	result := &Result{}

	// 1. 建構所有主管，稽核靜默修正
	for _, spec := range plan.Supervisors {
		s, corrections := BuildSupervisor(spec)
		e.recordCorrections(spec.Name, corrections)
		result.Corrections += len(corrections)
		result.Supervisors = append(result.Supervisors, s)
	}

	// 2. 建構所有作業員，稽核靜默修正
	for _, spec := range plan.Workers {
		w, corrections := BuildWorker(spec)
		e.recordCorrections(spec.Name, corrections)
		result.Corrections += len(corrections)
		result.Workers = append(result.Workers, w)
	}

	// 3. 指派階段
	for i, s := range result.Supervisors {
		// 在主管之間檢查取消訊號
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		offers, err := e.offersFor(plan, i, len(result.Workers))
		if err != nil {
			return nil, err
		}

		for _, idx := range offers {
			w := result.Workers[idx]
			if err := e.offer(s, w, result); err != nil {
				return nil, err
			}
		}
	}

	// 4. 獎金結算：配置完成後評估一次
	for _, s := range result.Supervisors {
		if s.AwardBonus() {
			result.Bonuses++
			e.config.Metrics.RecordBonus()
			log.Info("Bonus awarded",
				"supervisor", s.Name(),
				"workers", s.WorkerCount(),
				"salary", s.Salary())
		}
	}

	// 5. 產生報表
	for _, s := range result.Supervisors {
		result.Reports = append(result.Reports, s.Describe())
	}

	e.config.Metrics.SetRosterStats(result.Assigned, len(result.Supervisors))

	log.Info("Assignment run completed",
		"duration", time.Since(start),
		"supervisors", len(result.Supervisors),
		"workers", len(result.Workers),
		"assigned", result.Assigned,
		"mismatched", result.Mismatched,
		"rejected", result.Rejected,
		"corrections", result.Corrections,
		"bonuses", result.Bonuses)

	return result, nil
}

// offersFor 解析第 i 位主管的作業員索引列表
//
// Offers 為空時回傳全部索引；索引越界視為計畫錯誤
func (e *Engine) offersFor(plan Plan, i, workers int) ([]int, error) {
	if len(plan.Offers) == 0 {
		all := make([]int, workers)
		for idx := range all {
			all[idx] = idx
		}
		return all, nil
	}

	for _, idx := range plan.Offers[i] {
		if idx < 0 || idx >= workers {
			return nil, fmt.Errorf("offer list for supervisor %d: worker index %d out of range [0,%d)",
				i, idx, workers)
		}
	}
	return plan.Offers[i], nil
}

// offer 把單一作業員提供給主管並分類結果
//
// AddWorker 對班別不符回傳 nil，和成功收編無法從回傳值區分，
// 只能靠收編前後的人數差辨認
func (e *Engine) offer(s *staff.ShiftSupervisor, w *staff.ProductionWorker, result *Result) error {
	before := s.WorkerCount()

	err := s.AddWorker(w)
	if err != nil {
		if errors.Is(err, staff.ErrRosterFull) {
			result.Rejected++
			e.config.Metrics.RecordRosterFull()
			log.Warn("Roster full, offer rejected",
				"supervisor", s.Name(),
				"worker", w.Name(),
				"capacity", s.Capacity())

			if e.config.ContinueOnFull {
				return nil
			}
			return fmt.Errorf("assigning %q to %q: %w", w.Name(), s.Name(), err)
		}
		return fmt.Errorf("assigning %q to %q: %w", w.Name(), s.Name(), err)
	}

	if s.WorkerCount() > before {
		result.Assigned++
		e.config.Metrics.RecordAssignment()
		log.Debug("Worker assigned",
			"supervisor", s.Name(),
			"worker", w.Name(),
			"shift", w.Shift())
		return nil
	}

	// 人數未變：班別不符，收編被靜默忽略
	result.Mismatched++
	e.config.Metrics.RecordShiftMismatch()
	log.Warn("Shift mismatch, offer ignored",
		"supervisor", s.Name(),
		"supervisor_shift", s.Shift(),
		"worker", w.Name(),
		"worker_shift", w.Shift())
	return nil
}

// recordCorrections 把一個實體的欄位修正寫入日誌與指標
func (e *Engine) recordCorrections(who string, corrections []Correction) {
	for _, c := range corrections {
		log.Warn("Field corrected",
			"who", who,
			"field", c.Field,
			"requested", c.Requested,
			"stored", c.Stored)
	}
	e.config.Metrics.RecordCorrections(len(corrections))
}
