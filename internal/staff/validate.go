// ============================================================================
// Shift-Roster Field Policy - validate or default
// ============================================================================
//
// Package: internal/staff
// File: validate.go
// Purpose: Central definition of the field acceptance ranges and the defaults
// applied when a value falls outside them.
//
// Policy:
//   Every staff field is validated on write. An out-of-range value is never
//   rejected with an error; the field is silently replaced by its default.
//   Callers that need to know whether a value survived must read the field
//   back and compare (see internal/assignment).
//
// Ranges:
//   name     non-empty and not purely numeric   default "unidentified"
//   id       1000..99999                        default 1234
//   rate     0..20 ($/hr)                       default 1
//   hours    0..40 (per week)                   default 0
//   salary   50000..200000 (annual)             default 50000
//   shift    DAY/SWING/NIGHT (ordinal 1..3)     default DAY
//   capacity >= 1                               default 10
//
// ============================================================================

package staff

import (
	"unicode"

	"github.com/ChuLiYu/shift-roster/pkg/types"
)

// 欄位範圍與預設值常數
const (
	DefaultName = "unidentified" // 無效姓名的佔位名稱

	MinID     = 1000
	MaxID     = 99999
	DefaultID = 1234

	// BenefitsIDLimit 以下（不含）的員工編號享有福利
	BenefitsIDLimit = 5000

	MinRate     = 0
	MaxRate     = 20
	DefaultRate = 1

	MinHours     = 0
	MaxHours     = 40
	DefaultHours = 0

	MinSalary     = 50000
	MaxSalary     = 200000
	DefaultSalary = 50000

	DefaultCapacity = 10

	// BonusAmount 達標主管每次加薪的固定獎金
	BonusAmount = 10000
	// BonusWorkerThreshold 名額：名下工人數需「超過」此數才發獎金
	BonusWorkerThreshold = 4
)

// DefaultShift 無效班別的預設值
const DefaultShift = types.ShiftDay

// ValidName reports whether name is acceptable: non-empty and not composed
// entirely of numeric runes.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// ValidID reports whether id falls within the employee number range.
func ValidID(id int) bool {
	return id >= MinID && id <= MaxID
}

// ValidRate reports whether rate falls within the hourly wage range.
func ValidRate(rate int) bool {
	return rate >= MinRate && rate <= MaxRate
}

// ValidHours reports whether hours falls within the weekly hours range.
func ValidHours(hours int) bool {
	return hours >= MinHours && hours <= MaxHours
}

// ValidSalary reports whether salary falls within the annual salary range.
func ValidSalary(salary int) bool {
	return salary >= MinSalary && salary <= MaxSalary
}

// ValidCapacity reports whether capacity is a usable roster size.
func ValidCapacity(capacity int) bool {
	return capacity >= 1
}
