// Package debugger tracks breakpoint lines and a stepping session for
// the editor's debug UI. It is pure state: the host owns the gutter
// rendering and any attachment to a real debugger process.
package debugger

import "sort"

// Breakpoints is a set of 1-based line numbers.
type Breakpoints struct {
	lines map[int]bool
}

// NewBreakpoints returns an empty breakpoint set.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{lines: make(map[int]bool)}
}

// Toggle flips the breakpoint on a line and reports whether the line
// now has one.
func (b *Breakpoints) Toggle(line int) bool {
	if b.lines[line] {
		delete(b.lines, line)
		return false
	}
	b.lines[line] = true
	return true
}

// Add sets a breakpoint on a line.
func (b *Breakpoints) Add(line int) {
	b.lines[line] = true
}

// Remove clears the breakpoint on a line.
func (b *Breakpoints) Remove(line int) {
	delete(b.lines, line)
}

// Has reports whether a line has a breakpoint.
func (b *Breakpoints) Has(line int) bool {
	return b.lines[line]
}

// All returns the breakpoint lines in ascending order.
func (b *Breakpoints) All() []int {
	lines := make([]int, 0, len(b.lines))
	for line := range b.lines {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// Clear removes every breakpoint.
func (b *Breakpoints) Clear() {
	b.lines = make(map[int]bool)
}

// ShiftAfterEdit moves breakpoints at or below fromLine by delta lines,
// for keeping markers attached to their statements when lines are
// inserted or deleted above them. Breakpoints shifted above line 1 are
// dropped.
func (b *Breakpoints) ShiftAfterEdit(fromLine, delta int) {
	shifted := make(map[int]bool, len(b.lines))
	for line := range b.lines {
		if line < fromLine {
			shifted[line] = true
			continue
		}
		if moved := line + delta; moved >= 1 {
			shifted[moved] = true
		}
	}
	b.lines = shifted
}
