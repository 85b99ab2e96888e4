// debugConsole.go - optional interactive trace console, an extension
// of the DI/EI trace-log behaviour in spec.md §4.5.3. Puts stdin into
// raw mode the same way terminal_host.go does with golang.org/x/term,
// reads single keystrokes, and on 'b' prompts for a Lua breakpoint
// condition (traceScript.go) that is evaluated against the running
// machine each time 'c' is pressed (the pacing loop never checks it);
// on 's' dumps the current register file to stderr; 'q' ends the
// console. Only started when -debug or -debug-io is set.
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// runDebugConsole reads stdin for the lifetime of the process; it is
// always launched in its own goroutine (see main.go) and never blocks
// the pacing loop.
func runDebugConsole(m *Machine) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug console: %v\n", err)
		return
	}
	defer term.Restore(fd, oldState)

	reader := bufio.NewReader(os.Stdin)
	var cond *TraceCondition

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case 's':
			dumpRegisters(m.CPU)
		case 'b':
			term.Restore(fd, oldState)
			fmt.Fprint(os.Stderr, "\r\ncondition> ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			cond = NewTraceCondition(trimNewline(line))
			oldState, err = term.MakeRaw(fd)
			if err != nil {
				return
			}
		case 'c':
			if cond == nil {
				continue
			}
			ok, err := cond.Eval(m.CPU, m.Mem)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\r\n%v\r\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "\r\ncondition: %v\r\n", ok)
		case 'q':
			return
		}
	}
}

func dumpRegisters(cpu *CPU_Z80) {
	fmt.Fprintf(os.Stderr, "\r\nAF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X SP=%04X PC=%04X\r\n",
		cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL(), cpu.IX, cpu.IY, cpu.SP, cpu.PC)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
