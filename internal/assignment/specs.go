// ============================================================================
// Assignment Specs - 配置輸入與稽核
// ============================================================================
//
// Package: internal/assignment
// 文件: specs.go
// 功能: 定義配置計畫的輸入記錄，並提供欄位修正的稽核工具
//
// Spec records carry the raw, unvalidated values exactly as the caller
// provided them. Validation only happens when a record is built into a
// staff entity, and the entity never reports what it changed. The audit
// helpers here recover that information the only way the staff package
// allows: build the entity, read every field back, and diff it against
// the request.
//
// ============================================================================

package assignment

import (
	"strconv"

	"github.com/ChuLiYu/shift-roster/internal/staff"
	"github.com/ChuLiYu/shift-roster/pkg/types"
)

// WorkerSpec 作業員的原始輸入記錄
type WorkerSpec struct {
	Name  string
	ID    int
	Shift types.Shift
	Rate  int
	Hours int
}

// SupervisorSpec 班別主管的原始輸入記錄
type SupervisorSpec struct {
	Name     string
	ID       int
	Salary   int
	Shift    types.Shift
	Capacity int
}

// Plan 一次完整的配置計畫
//
// Offers[i] 列出要提供給第 i 位主管的作業員索引。
// Offers 為空時，每位作業員都會被提供給每位主管。
type Plan struct {
	Supervisors []SupervisorSpec
	Workers     []WorkerSpec
	Offers      [][]int
}

// Correction records one field the staff constructors silently replaced.
type Correction struct {
	Field     string // which field was replaced
	Requested string // the value the caller asked for
	Stored    string // the default that was stored instead
}

// Result 一次配置執行的完整結果
type Result struct {
	Supervisors []*staff.ShiftSupervisor
	Workers     []*staff.ProductionWorker

	Corrections int // 被改寫為預設值的欄位總數
	Assigned    int // 成功收編的作業員數
	Mismatched  int // 因班別不符被忽略的指派數
	Rejected    int // 因編制額滿被拒絕的指派數
	Bonuses     int // 發放的獎金次數

	Reports []string // 每位主管的 Describe 輸出
}

// BuildWorker constructs a production worker from a spec and reports every
// field the constructor replaced with a default.
func BuildWorker(spec WorkerSpec) (*staff.ProductionWorker, []Correction) {
	w := staff.NewProductionWorker(spec.Name, spec.ID, spec.Shift, spec.Rate, spec.Hours)

	var corrections []Correction
	if w.Name() != spec.Name {
		corrections = append(corrections, Correction{"name", spec.Name, w.Name()})
	}
	if w.ID() != spec.ID {
		corrections = append(corrections, Correction{"id", strconv.Itoa(spec.ID), strconv.Itoa(w.ID())})
	}
	if w.Shift() != spec.Shift {
		corrections = append(corrections, Correction{"shift", spec.Shift.String(), w.Shift().String()})
	}
	if w.Rate() != spec.Rate {
		corrections = append(corrections, Correction{"rate", strconv.Itoa(spec.Rate), strconv.Itoa(w.Rate())})
	}
	if w.Hours() != spec.Hours {
		corrections = append(corrections, Correction{"hours", strconv.Itoa(spec.Hours), strconv.Itoa(w.Hours())})
	}
	return w, corrections
}

// BuildSupervisor constructs a shift supervisor from a spec and reports every
// field the constructor replaced with a default.
func BuildSupervisor(spec SupervisorSpec) (*staff.ShiftSupervisor, []Correction) {
	s := staff.NewShiftSupervisor(spec.Name, spec.ID, spec.Salary, spec.Shift, spec.Capacity)

	var corrections []Correction
	if s.Name() != spec.Name {
		corrections = append(corrections, Correction{"name", spec.Name, s.Name()})
	}
	if s.ID() != spec.ID {
		corrections = append(corrections, Correction{"id", strconv.Itoa(spec.ID), strconv.Itoa(s.ID())})
	}
	if s.Salary() != spec.Salary {
		corrections = append(corrections, Correction{"salary", strconv.Itoa(spec.Salary), strconv.Itoa(s.Salary())})
	}
	if s.Shift() != spec.Shift {
		corrections = append(corrections, Correction{"shift", spec.Shift.String(), s.Shift().String()})
	}
	if s.Capacity() != spec.Capacity {
		corrections = append(corrections, Correction{"capacity", strconv.Itoa(spec.Capacity), strconv.Itoa(s.Capacity())})
	}
	return s, corrections
}

// CheckWorker audits a worker spec without keeping the built entity.
func CheckWorker(spec WorkerSpec) []Correction {
	_, corrections := BuildWorker(spec)
	return corrections
}

// CheckSupervisor audits a supervisor spec without keeping the built entity.
func CheckSupervisor(spec SupervisorSpec) []Correction {
	_, corrections := BuildSupervisor(spec)
	return corrections
}
