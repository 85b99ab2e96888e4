// traceScript.go - Lua breakpoint-condition evaluator for the optional
// debug console. A scriptable generalisation of debug_conditions.go's
// hand-rolled "r1==$FF" parser: instead of a tiny fixed grammar, the
// condition is an arbitrary Lua boolean expression evaluated against
// the current register file and memory, using the library the
// teacher's own go.mod already carries for embedded scripting.
package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// TraceCondition wraps a Lua expression string, compiled afresh on
// every Eval. Empty expressions are always true (an unconditional
// breakpoint).
type TraceCondition struct {
	expr string
}

func NewTraceCondition(expr string) *TraceCondition {
	return &TraceCondition{expr: expr}
}

// Eval runs the expression in a fresh Lua state with the CPU's
// register file and a mem(addr) accessor exposed as globals, and
// reports whether it evaluated truthy.
func (tc *TraceCondition) Eval(cpu *CPU_Z80, mem *MemoryMap) (bool, error) {
	if tc.expr == "" {
		return true, nil
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("a", lua.LNumber(cpu.A))
	L.SetGlobal("f", lua.LNumber(cpu.F))
	L.SetGlobal("b", lua.LNumber(cpu.B))
	L.SetGlobal("c", lua.LNumber(cpu.C))
	L.SetGlobal("d", lua.LNumber(cpu.D))
	L.SetGlobal("e", lua.LNumber(cpu.E))
	L.SetGlobal("h", lua.LNumber(cpu.H))
	L.SetGlobal("l", lua.LNumber(cpu.L))
	L.SetGlobal("bc", lua.LNumber(cpu.BC()))
	L.SetGlobal("de", lua.LNumber(cpu.DE()))
	L.SetGlobal("hl", lua.LNumber(cpu.HL()))
	L.SetGlobal("ix", lua.LNumber(cpu.IX))
	L.SetGlobal("iy", lua.LNumber(cpu.IY))
	L.SetGlobal("sp", lua.LNumber(cpu.SP))
	L.SetGlobal("pc", lua.LNumber(cpu.PC))
	L.SetGlobal("mem", L.NewFunction(func(L *lua.LState) int {
		addr := uint16(L.CheckNumber(1))
		L.Push(lua.LNumber(mem.ReadByte(addr)))
		return 1
	}))

	if err := L.DoString("__result = (" + tc.expr + ")"); err != nil {
		return false, fmt.Errorf("trace condition %q: %w", tc.expr, err)
	}

	result := L.GetGlobal("__result")
	return lua.LVAsBool(result), nil
}
