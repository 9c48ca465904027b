package main

import "fmt"

type Symbol byte

const (
	MoveRight   Symbol = '>'
	MoveLeft    Symbol = '<'
	Increment   Symbol = '+'
	Decrement   Symbol = '-'
	LoopOpen    Symbol = '['
	LoopClose   Symbol = ']'
	ReadInput   Symbol = ','
	WriteOutput Symbol = '.'
)

// Alphabet lists the recognized symbols in a stable order.
var Alphabet = []Symbol{MoveRight, MoveLeft, Increment, Decrement, LoopOpen, LoopClose, ReadInput, WriteOutput}

type Statement string

const (
	MoveRightStatement   Statement = "ptr++;"
	MoveLeftStatement    Statement = "ptr--;"
	IncrementStatement   Statement = "++*ptr;"
	DecrementStatement   Statement = "--*ptr;"
	LoopOpenStatement    Statement = "while(*ptr){"
	LoopCloseStatement   Statement = "}"
	ReadInputStatement   Statement = "*ptr = getchar();"
	WriteOutputStatement Statement = "putchar(*ptr);"
)

var symbolStatements = map[Symbol]Statement{
	MoveRight:   MoveRightStatement,
	MoveLeft:    MoveLeftStatement,
	Increment:   IncrementStatement,
	Decrement:   DecrementStatement,
	LoopOpen:    LoopOpenStatement,
	LoopClose:   LoopCloseStatement,
	ReadInput:   ReadInputStatement,
	WriteOutput: WriteOutputStatement,
}

var symbolNames = map[Symbol]string{
	MoveRight:   "move-right",
	MoveLeft:    "move-left",
	Increment:   "increment",
	Decrement:   "decrement",
	LoopOpen:    "loop-open",
	LoopClose:   "loop-close",
	ReadInput:   "read-input",
	WriteOutput: "write-output",
}

// Valid reports whether s is one of the eight recognized symbols. Every other
// byte is a comment.
func (s Symbol) Valid() bool {
	_, ok := symbolStatements[s]
	return ok
}

// Statement returns the C statement emitted for s.
func (s Symbol) Statement() (Statement, bool) {
	stmt, ok := symbolStatements[s]
	return stmt, ok
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("comment(%q)", byte(s))
}

// Position locates a symbol in the source. Line and Column are 1-based.
type Position struct {
	Offset int64
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
