// ============================================================================
// Shift-Roster Production Worker - Hourly Staff Record
// ============================================================================
//
// Package: internal/staff
// File: worker.go
// Purpose: Hourly production worker: an Employee plus shift, wage rate and
// weekly hours.
//
// Gross pay contract:
//   GrossPay revalidates BOTH stored fields at read time and returns 0 when
//   either is out of range. The setters keep stored state valid, so the 0
//   path is only reachable when package code mutates fields directly, but
//   revalidation-at-read is the contract rather than an optimization: pay
//   must never be computed from values the policy would not accept.
//
// ============================================================================

package staff

import (
	"fmt"
	"strings"

	"github.com/ChuLiYu/shift-roster/pkg/types"
)

// ProductionWorker 生產線工人，按時薪計酬
type ProductionWorker struct {
	Employee
	shift types.Shift
	rate  int // 時薪（美元）
	hours int // 本週工時
}

// NewProductionWorker creates a ProductionWorker, applying the field policy
// to every argument.
func NewProductionWorker(name string, id int, shift types.Shift, rate, hours int) *ProductionWorker {
	w := &ProductionWorker{}
	w.SetName(name)
	w.SetID(id)
	w.SetShift(shift)
	w.SetRate(rate)
	w.SetHours(hours)
	return w
}

// SetShift stores shift, or DefaultShift when the ordinal is outside the
// closed 1..3 set. Passing a plain integer works through the Shift type:
// SetShift(types.Shift(7)) stores DAY.
func (w *ProductionWorker) SetShift(shift types.Shift) {
	if !shift.Valid() {
		shift = DefaultShift
	}
	w.shift = shift
}

// SetRate stores rate, or DefaultRate when the value is rejected.
func (w *ProductionWorker) SetRate(rate int) {
	if !ValidRate(rate) {
		rate = DefaultRate
	}
	w.rate = rate
}

// SetHours stores hours, or DefaultHours when the value is rejected.
func (w *ProductionWorker) SetHours(hours int) {
	if !ValidHours(hours) {
		hours = DefaultHours
	}
	w.hours = hours
}

// Shift returns the stored shift.
func (w *ProductionWorker) Shift() types.Shift {
	return w.shift
}

// Rate returns the stored hourly wage.
func (w *ProductionWorker) Rate() int {
	return w.rate
}

// Hours returns the stored weekly hours.
func (w *ProductionWorker) Hours() int {
	return w.hours
}

// GrossPay recomputes the weekly pay from the current fields, revalidating
// both. Either field out of range yields 0.
func (w *ProductionWorker) GrossPay() int {
	if !ValidRate(w.rate) || !ValidHours(w.hours) {
		return 0
	}
	return w.rate * w.hours
}

// Describe returns the base employee line followed by the worker block.
func (w *ProductionWorker) Describe() string {
	lines := []string{
		w.Employee.Describe(),
		"Title: Production Worker",
		fmt.Sprintf("Shift: %s", w.shift),
		fmt.Sprintf("Wage: $%d /hr", w.rate),
		fmt.Sprintf("Hours Worked: %d hrs this week", w.hours),
		fmt.Sprintf("Gross Pay: $%d", w.GrossPay()),
	}
	return strings.Join(lines, "\n")
}
