// Package types 定義了 shift-roster 系統中使用的核心領域詞彙
package types

import (
	"fmt"
	"strings"
)

// Shift 輪班班別，封閉枚舉（不允許新增第四種班別）
type Shift int

// 定義班別常數（序數從 1 開始，與排班表慣例一致）
const (
	ShiftDay   Shift = iota + 1 // 日班：序數 1，無效班別的預設值
	ShiftSwing                  // 小夜班：序數 2
	ShiftNight                  // 大夜班：序數 3
)

// Valid 回報班別序數是否落在封閉集合 1..3 內
func (s Shift) Valid() bool {
	return s >= ShiftDay && s <= ShiftNight
}

// String 回傳班別的顯示名稱，報表輸出直接使用此名稱
func (s Shift) String() string {
	switch s {
	case ShiftDay:
		return "DAY"
	case ShiftSwing:
		return "SWING"
	case ShiftNight:
		return "NIGHT"
	default:
		return fmt.Sprintf("Shift(%d)", int(s))
	}
}

// ParseShift 將班別名稱解析為 Shift（大小寫不敏感）
//
// 參數說明：
//   - name: 班別名稱，例如 "day"、"SWING"、"Night"
//
// 返回值：
//   - Shift: 解析出的班別
//   - bool: 名稱是否為合法班別
func ParseShift(name string) (Shift, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DAY":
		return ShiftDay, true
	case "SWING":
		return ShiftSwing, true
	case "NIGHT":
		return ShiftNight, true
	default:
		return 0, false
	}
}

// AllShifts 回傳全部班別（依序數排序），供驗證與報表圖例使用
func AllShifts() []Shift {
	return []Shift{ShiftDay, ShiftSwing, ShiftNight}
}
