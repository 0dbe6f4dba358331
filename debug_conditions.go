// debug_conditions.go - breakpoint condition parser/evaluator for the
// debug monitor. Grounded on the teacher's debug_conditions.go
// (ParseCondition/evaluateCondition/compareValues/FormatCondition),
// trimmed to the registers and single address space an 8080 actually
// has.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

type conditionOp int

const (
	condOpEqual conditionOp = iota
	condOpNotEqual
	condOpLess
	condOpGreater
	condOpLessEqual
	condOpGreaterEqual
)

type conditionSource int

const (
	condSourceRegister conditionSource = iota
	condSourceMemory
	condSourceHitCount
)

// breakpointCondition is one parsed `register==value` / `[addr]==value` /
// `hitcount>value` expression.
type breakpointCondition struct {
	Source  conditionSource
	RegName string
	MemAddr uint16
	Op      conditionOp
	Value   uint64
}

// parseAddress parses a $hex, 0xhex, #decimal, or bare-hex literal, the
// same four forms the teacher's command-line tooling accepts.
func parseAddress(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 10, 64)
		return v, err == nil
	}
	if strings.HasPrefix(s, "$") {
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, err == nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	return v, err == nil
}

// parseCondition parses one breakpoint condition expression.
func parseCondition(text string) (*breakpointCondition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty condition")
	}

	var op conditionOp
	var opStr string
	var opIdx int
	for _, candidate := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if idx := strings.Index(text, candidate); idx >= 0 {
			opStr, opIdx = candidate, idx
			break
		}
	}
	if opStr == "" {
		return nil, fmt.Errorf("no operator found (use ==, !=, <, >, <=, >=)")
	}
	switch opStr {
	case "==":
		op = condOpEqual
	case "!=":
		op = condOpNotEqual
	case "<":
		op = condOpLess
	case ">":
		op = condOpGreater
	case "<=":
		op = condOpLessEqual
	case ">=":
		op = condOpGreaterEqual
	}

	lhs := strings.TrimSpace(text[:opIdx])
	rhs := strings.TrimSpace(text[opIdx+len(opStr):])

	value, ok := parseAddress(rhs)
	if !ok {
		return nil, fmt.Errorf("invalid value: %s", rhs)
	}

	if strings.HasPrefix(lhs, "[") && strings.HasSuffix(lhs, "]") {
		addr, ok := parseAddress(lhs[1 : len(lhs)-1])
		if !ok {
			return nil, fmt.Errorf("invalid memory address: %s", lhs)
		}
		return &breakpointCondition{Source: condSourceMemory, MemAddr: uint16(addr), Op: op, Value: value}, nil
	}

	if strings.EqualFold(lhs, "hitcount") {
		return &breakpointCondition{Source: condSourceHitCount, Op: op, Value: value}, nil
	}

	return &breakpointCondition{Source: condSourceRegister, RegName: strings.ToUpper(lhs), Op: op, Value: value}, nil
}

// registerValue reads one named register/pair out of a CpuState; ok is
// false for an unrecognised name, matching the teacher's "unknown
// register - don't fire" behaviour.
func registerValue(s CpuState, name string) (uint64, bool) {
	switch name {
	case "A":
		return uint64(s.A), true
	case "B":
		return uint64(s.B), true
	case "C":
		return uint64(s.C), true
	case "D":
		return uint64(s.D), true
	case "E":
		return uint64(s.E), true
	case "H":
		return uint64(s.H), true
	case "L":
		return uint64(s.L), true
	case "F":
		return uint64(s.F), true
	case "BC":
		return uint64(s.BC()), true
	case "DE":
		return uint64(s.DE()), true
	case "HL":
		return uint64(s.HL()), true
	case "PSW":
		return uint64(s.PSW()), true
	case "SP":
		return uint64(s.SP), true
	case "PC":
		return uint64(s.PC), true
	}
	return 0, false
}

// evaluateCondition reports whether cond holds given the CPU's current
// state, the Memory it runs against, and the breakpoint's accumulated
// hit count.
func evaluateCondition(cond *breakpointCondition, state CpuState, mem *Memory, hitCount uint64) bool {
	if cond == nil {
		return true
	}

	var actual uint64
	switch cond.Source {
	case condSourceRegister:
		v, ok := registerValue(state, cond.RegName)
		if !ok {
			return false
		}
		actual = v
	case condSourceMemory:
		actual = uint64(mem.MustRead(cond.MemAddr))
	case condSourceHitCount:
		actual = hitCount
	}

	return compareValues(actual, cond.Op, cond.Value)
}

func compareValues(actual uint64, op conditionOp, expected uint64) bool {
	switch op {
	case condOpEqual:
		return actual == expected
	case condOpNotEqual:
		return actual != expected
	case condOpLess:
		return actual < expected
	case condOpGreater:
		return actual > expected
	case condOpLessEqual:
		return actual <= expected
	case condOpGreaterEqual:
		return actual >= expected
	}
	return false
}

// formatCondition renders cond back to its textual form, for the debug
// monitor's `breakpoints` listing.
func formatCondition(cond *breakpointCondition) string {
	if cond == nil {
		return ""
	}
	var lhs string
	switch cond.Source {
	case condSourceRegister:
		lhs = cond.RegName
	case condSourceMemory:
		lhs = fmt.Sprintf("[$%X]", cond.MemAddr)
	case condSourceHitCount:
		lhs = "hitcount"
	}
	var opStr string
	switch cond.Op {
	case condOpEqual:
		opStr = "=="
	case condOpNotEqual:
		opStr = "!="
	case condOpLess:
		opStr = "<"
	case condOpGreater:
		opStr = ">"
	case condOpLessEqual:
		opStr = "<="
	case condOpGreaterEqual:
		opStr = ">="
	}
	return fmt.Sprintf("%s%s$%X", lhs, opStr, cond.Value)
}
