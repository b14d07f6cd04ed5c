// ============================================================================
// Shift-Roster Employee - Base Staff Record
// ============================================================================
//
// Package: internal/staff
// File: employee.go
// Purpose: The base record shared by every staff role. Concrete roles embed
// Employee and extend its one-line description with their own block.
//
// Field discipline:
//   All fields are unexported and mutated only through setters, so the
//   validate-or-default policy in validate.go cannot be bypassed from
//   outside the package.
//
// Benefits rule:
//   hasBenefits is derived, never set directly. Every SetID recomputes it
//   from the FINAL stored id (default or accepted), so an out-of-range id
//   lands on 1234 and therefore qualifies for benefits.
//
// ============================================================================

package staff

import "fmt"

// Employee 基礎員工記錄，由各具體職位以嵌入方式複用
type Employee struct {
	name        string
	id          int
	hasBenefits bool // 由 id 推導：storedID < BenefitsIDLimit
}

// NewEmployee creates an Employee, applying the field policy to both
// arguments.
func NewEmployee(name string, id int) *Employee {
	e := &Employee{}
	e.SetName(name)
	e.SetID(id)
	return e
}

// SetName stores name, or DefaultName when the value is rejected.
func (e *Employee) SetName(name string) {
	if !ValidName(name) {
		name = DefaultName
	}
	e.name = name
}

// SetID stores id, or DefaultID when the value is rejected, then recomputes
// the benefits flag from the stored id.
func (e *Employee) SetID(id int) {
	if !ValidID(id) {
		id = DefaultID
	}
	e.id = id
	e.hasBenefits = e.id < BenefitsIDLimit
}

// Name returns the stored employee name.
func (e *Employee) Name() string {
	return e.name
}

// ID returns the stored employee number.
func (e *Employee) ID() int {
	return e.id
}

// HasBenefits reports whether the stored id qualifies for benefits.
func (e *Employee) HasBenefits() bool {
	return e.hasBenefits
}

// Describe returns the one-line base description. Role types prepend this
// line to their own block, so the label text here is load-bearing for every
// report in the system.
func (e *Employee) Describe() string {
	benefits := "No Benefits"
	if e.hasBenefits {
		benefits = "Benefits"
	}
	return fmt.Sprintf("%s | ID #: %d | (*%s)", e.name, e.id, benefits)
}
