// ============================================================================
// Shift-Roster 名冊 - 固定容量的工人容器
// ============================================================================
//
// Package: internal/staff
// 文件: roster.go
// 功能: 主管名下的固定容量工人名冊
//
// 設計理念:
//   1. 名冊建立時即固定容量，之後不可擴張
//   2. 保留加入順序，報表依序編號輸出
//   3. 容量已滿時回傳 ErrRosterFull，呼叫端以 errors.Is 判斷
//
// 計數不變式:
//   工人數一律由 len(members) 推導，不另外維護計數欄位，
//   因此「工人數 == 名冊實際人數」恆成立，無法被外部打破。
//
// 並發安全:
//   - 使用 sync.RWMutex 保護 members
//   - 讀操作使用 RLock，寫操作使用 Lock
//
// ============================================================================

package staff

import "sync"

// roster 固定容量名冊，僅供 ShiftSupervisor 持有
type roster struct {
	mu       sync.RWMutex
	capacity int                 // 固定容量，建立後不變
	members  []*ProductionWorker // 已加入的工人，保留順序
}

// newRoster 建立空名冊；容量不合法時套用 DefaultCapacity
func newRoster(capacity int) *roster {
	if !ValidCapacity(capacity) {
		capacity = DefaultCapacity
	}
	return &roster{
		capacity: capacity,
		members:  make([]*ProductionWorker, 0, capacity),
	}
}

// add 將工人加入名冊
//
// 返回值：
//   - error: 名冊已滿回傳 ErrRosterFull；工人為 nil 回傳 ErrNilWorker
//
// 併發安全：使用互斥鎖保護
func (r *roster) add(w *ProductionWorker) error {
	if w == nil {
		return ErrNilWorker
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) >= r.capacity {
		return ErrRosterFull
	}

	r.members = append(r.members, w)
	return nil
}

// workers 回傳名冊成員的複本切片（依加入順序）
//
// 併發安全：使用讀鎖保護
func (r *roster) workers() []*ProductionWorker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ProductionWorker, len(r.members))
	copy(out, r.members)
	return out
}

// count 回傳名冊目前人數
//
// 併發安全：使用讀鎖保護
func (r *roster) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
