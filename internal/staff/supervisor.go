// ============================================================================
// Shift-Roster 班別主管 - 名冊管理核心
// ============================================================================
//
// Package: internal/staff
// 文件: supervisor.go
// 功能: 班別主管記錄：年薪、班別，以及名下的固定容量工人名冊
//
// 收編規則 (AddWorker):
//   兩道關卡依固定順序把關，順序本身是對外可觀察的行為：
//   1. 班別關卡 - 工人班別與主管不同：靜默忽略，回傳 nil
//      （即使名冊已滿也先走到這裡，不會回報 ErrRosterFull）
//   2. 容量關卡 - 名冊已滿：回傳 ErrRosterFull，呼叫端以 errors.Is 判斷
//   兩關都通過才加入名冊，工人數隨之遞增
//
// 獎金規則 (AwardBonus):
//   名下工人數「超過」BonusWorkerThreshold 時，年薪直接加 BonusAmount
//   並回傳 true。注意兩點：
//   - 獎金繞過薪資範圍驗證，加總後可能超過 MaxSalary
//   - 非冪等：重複呼叫會持續累加，由呼叫端自行決定呼叫次數
//
// 並發安全:
//   - 名冊操作由 roster 內部的 RWMutex 保護
//   - 純量欄位（salary, shift）沿用一般記錄語義，不支援並發寫入
//
// ============================================================================

package staff

import (
	"fmt"
	"strings"

	"github.com/ChuLiYu/shift-roster/pkg/types"
)

// ShiftSupervisor 班別主管
type ShiftSupervisor struct {
	Employee
	salary int         // 年薪（美元）
	shift  types.Shift // 負責的班別
	roster *roster     // 名下工人名冊
}

// NewShiftSupervisor 建立班別主管
//
// 參數說明：
//   - name: 姓名，套用欄位政策
//   - id: 員工編號，套用欄位政策
//   - salary: 年薪，套用欄位政策
//   - shift: 負責班別，套用欄位政策
//   - capacity: 名冊容量，不合法時套用 DefaultCapacity
//
// 名冊一律從空開始，工人數為 0；人數只能經由 AddWorker 增加，
// 因此「工人數 == 名冊實際人數」自建構起恆成立。
//
// 使用範例：
//
//	sup := staff.NewShiftSupervisor("Zach Mccall", 2566, 68590, types.ShiftNight, 3)
//	err := sup.AddWorker(worker)
func NewShiftSupervisor(name string, id, salary int, shift types.Shift, capacity int) *ShiftSupervisor {
	s := &ShiftSupervisor{}
	s.SetName(name)
	s.SetID(id)
	s.SetSalary(salary)
	s.SetShift(shift)
	s.roster = newRoster(capacity)
	return s
}

// SetSalary 寫入年薪，不合法時套用 DefaultSalary
func (s *ShiftSupervisor) SetSalary(salary int) {
	if !ValidSalary(salary) {
		salary = DefaultSalary
	}
	s.salary = salary
}

// SetShift 寫入班別，序數超出 1..3 時套用 DefaultShift
func (s *ShiftSupervisor) SetShift(shift types.Shift) {
	if !shift.Valid() {
		shift = DefaultShift
	}
	s.shift = shift
}

// Salary 回傳目前年薪
func (s *ShiftSupervisor) Salary() int {
	return s.salary
}

// Shift 回傳負責班別
func (s *ShiftSupervisor) Shift() types.Shift {
	return s.shift
}

// WorkerCount 回傳名下工人數（由名冊人數推導）
func (s *ShiftSupervisor) WorkerCount() int {
	return s.roster.count()
}

// Workers 回傳名冊成員（依加入順序的複本切片）
func (s *ShiftSupervisor) Workers() []*ProductionWorker {
	return s.roster.workers()
}

// Capacity 回傳名冊固定容量
func (s *ShiftSupervisor) Capacity() int {
	return s.roster.capacity
}

// AddWorker 嘗試將工人收編進名冊
//
// 參數說明：
//   - w: 要收編的工人
//
// 返回值：
//   - error: 班別不符時回傳 nil（靜默忽略）；名冊已滿回傳
//     ErrRosterFull；工人為 nil 回傳 ErrNilWorker
//
// 關卡順序固定：先比對班別，再檢查容量。班別不符的工人即使
// 在名冊已滿時送入，也只會被靜默忽略而不是收到 ErrRosterFull。
//
// 使用範例：
//
//	if err := sup.AddWorker(w); errors.Is(err, staff.ErrRosterFull) {
//	    log.Printf("名冊已滿: %v", err)
//	}
func (s *ShiftSupervisor) AddWorker(w *ProductionWorker) error {
	if w == nil {
		return ErrNilWorker
	}

	// 班別關卡：不符即靜默忽略
	if w.Shift() != s.shift {
		return nil
	}

	// 容量關卡與實際加入
	return s.roster.add(w)
}

// AwardBonus 評估並發放工人數獎金
//
// 返回值：
//   - bool: 是否發放（工人數 > BonusWorkerThreshold 時發放）
//
// 獎金直接累加到年薪上，不經過 SetSalary 的範圍驗證，因此
// 接近 MaxSalary 的主管領取獎金後年薪可能超出範圍上限。
// 重複呼叫會重複發放，呼叫端自行控制評估時機。
func (s *ShiftSupervisor) AwardBonus() bool {
	if s.roster.count() <= BonusWorkerThreshold {
		return false
	}
	s.salary += BonusAmount
	return true
}

// Describe 回傳完整報表：基礎員工行、主管區塊，以及依序編號的
// 名冊成員區塊
func (s *ShiftSupervisor) Describe() string {
	members := s.roster.workers()

	var b strings.Builder
	b.WriteString(s.Employee.Describe())
	b.WriteString("\nTitle: Shift Supervisor")
	fmt.Fprintf(&b, "\nAnnual Salary $%d", s.salary)
	fmt.Fprintf(&b, "\nShift: %s", s.shift)
	fmt.Fprintf(&b, "\n%d workers in their shift", len(members))

	for i, w := range members {
		fmt.Fprintf(&b, "\n\nWorkers %d\n%s", i+1, w.Describe())
	}

	return b.String()
}
