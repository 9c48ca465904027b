package main

// LoopTracker follows loop nesting for diagnostics only. Translation never
// depends on it: unbalanced loops are still emitted as-is.
type LoopTracker struct {
	open     []Position
	stray    []Position
	maxDepth int
}

func NewLoopTracker() *LoopTracker {
	return &LoopTracker{}
}

func (t *LoopTracker) Open(pos Position) {
	t.open = append(t.open, pos)
	if len(t.open) > t.maxDepth {
		t.maxDepth = len(t.open)
	}
}

// Close pops the innermost open loop. It returns false, and remembers pos,
// when no loop is open.
func (t *LoopTracker) Close(pos Position) bool {
	if len(t.open) == 0 {
		t.stray = append(t.stray, pos)
		return false
	}
	t.open = t.open[:len(t.open)-1]
	return true
}

func (t *LoopTracker) Depth() int {
	return len(t.open)
}

func (t *LoopTracker) MaxDepth() int {
	return t.maxDepth
}

// Unclosed returns the positions of loop-opens still waiting for a close,
// outermost first.
func (t *LoopTracker) Unclosed() []Position {
	return append([]Position(nil), t.open...)
}

func (t *LoopTracker) Stray() []Position {
	return append([]Position(nil), t.stray...)
}

func (t *LoopTracker) Balanced() bool {
	return len(t.open) == 0 && len(t.stray) == 0
}
