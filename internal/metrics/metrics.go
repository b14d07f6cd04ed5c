// ============================================================================
// Shift-Roster Metrics - Prometheus 監控指標
// ============================================================================
//
// Package: internal/metrics
// 文件: metrics.go
// 功能: 收集人員配置流程的運行指標，支持 Prometheus 監控
//
// 監控理念:
//   欄位修正是靜默的：建構器不回報它改寫了哪些欄位，呼叫端只能靠
//   讀回值發現。指標層把這些靜默事件變成可觀測的累計值，
//   讓營運端不必逐筆比對就能看到資料品質的趨勢
//
// 指標分類:
//
//   1. 配置計數器 (Counter) - 累計值，只增不減：
//      - roster_field_corrections_total: 被改寫為預設值的欄位總數
//      - roster_assignments_total: 成功收編的作業員總數
//      - roster_shift_mismatch_total: 因班別不符被靜默忽略的指派總數
//      - roster_full_rejections_total: 因編制額滿被拒絕的指派總數
//      - roster_bonuses_awarded_total: 發放的主管獎金總次數
//
//   2. 狀態指標 (Gauge) - 瞬時值：
//      - roster_workers_assigned: 目前已收編的作業員數
//      - roster_supervisors: 目前管理的班別主管數
//
// 使用場景:
//
//   資料品質:
//   - roster_field_corrections_total 增長率 → 上游資料品質告警
//   - roster_shift_mismatch_total 突增 → 檢查名單的班別欄位
//
//   容量規劃:
//   - roster_full_rejections_total → 編制上限需要調高
//   - roster_workers_assigned / roster_supervisors → 平均編制使用率
//
// Prometheus 查詢示例:
//
//   # 每分鐘修正欄位數
//   rate(roster_field_corrections_total[1m])
//
//   # 指派拒絕率
//   rate(roster_full_rejections_total[5m]) / rate(roster_assignments_total[5m])
//
// 性能考慮:
//   - Counter/Gauge 操作是原子的，線程安全
//   - Collector 為選配：所有 Record 方法對 nil 接收者都是 no-op，
//     呼叫端不需要逐處判空
//
// ============================================================================
// Metrics 監控模組
// 職責：收集並暴露 Prometheus 指標
// ============================================================================

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector Prometheus 指標收集器
type Collector struct {
	// 配置相關指標
	fieldCorrections prometheus.Counter
	assignments      prometheus.Counter
	shiftMismatches  prometheus.Counter
	rosterFull       prometheus.Counter
	bonuses          prometheus.Counter

	// 狀態指標
	workersAssigned prometheus.Gauge
	supervisors     prometheus.Gauge
}

// NewCollector 創建新的指標收集器
func NewCollector() *Collector {
	c := &Collector{
		fieldCorrections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_field_corrections_total",
			Help: "Total number of staff fields silently replaced by defaults",
		}),
		assignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_assignments_total",
			Help: "Total number of workers accepted onto a roster",
		}),
		shiftMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_shift_mismatch_total",
			Help: "Total number of assignments ignored due to shift mismatch",
		}),
		rosterFull: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_full_rejections_total",
			Help: "Total number of assignments rejected by a full roster",
		}),
		bonuses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_bonuses_awarded_total",
			Help: "Total number of supervisor bonuses awarded",
		}),
		workersAssigned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_workers_assigned",
			Help: "Current number of workers assigned across all rosters",
		}),
		supervisors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_supervisors",
			Help: "Current number of shift supervisors managed",
		}),
	}

	// 註冊所有指標
	prometheus.MustRegister(c.fieldCorrections)
	prometheus.MustRegister(c.assignments)
	prometheus.MustRegister(c.shiftMismatches)
	prometheus.MustRegister(c.rosterFull)
	prometheus.MustRegister(c.bonuses)
	prometheus.MustRegister(c.workersAssigned)
	prometheus.MustRegister(c.supervisors)

	return c
}

// RecordCorrections 記錄被改寫為預設值的欄位數
func (c *Collector) RecordCorrections(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.fieldCorrections.Add(float64(n))
}

// RecordAssignment 記錄作業員被成功收編
func (c *Collector) RecordAssignment() {
	if c == nil {
		return
	}
	c.assignments.Inc()
}

// RecordShiftMismatch 記錄因班別不符被忽略的指派
func (c *Collector) RecordShiftMismatch() {
	if c == nil {
		return
	}
	c.shiftMismatches.Inc()
}

// RecordRosterFull 記錄因編制額滿被拒絕的指派
func (c *Collector) RecordRosterFull() {
	if c == nil {
		return
	}
	c.rosterFull.Inc()
}

// RecordBonus 記錄一次主管獎金發放
func (c *Collector) RecordBonus() {
	if c == nil {
		return
	}
	c.bonuses.Inc()
}

// SetRosterStats 更新編制狀態統計
func (c *Collector) SetRosterStats(workers, supervisors int) {
	if c == nil {
		return
	}
	c.workersAssigned.Set(float64(workers))
	c.supervisors.Set(float64(supervisors))
}
