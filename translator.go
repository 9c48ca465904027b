package main

import (
	"fmt"
	"io"
	"log"
)

type SymbolSource interface {
	Symbol() Symbol
	Position() Position
	Err() error
	Scan() bool
}

// Report summarizes one translation run.
type Report struct {
	BytesRead  int64
	Statements int
	Counts     map[Symbol]int
	MaxDepth   int
	Unclosed   []Position
	Stray      []Position
}

func (r Report) Balanced() bool {
	return len(r.Unclosed) == 0 && len(r.Stray) == 0
}

type Option func(*Translator)

// WithHeader replaces the attribution comment at the top of the generated
// file. No lines means no comment.
func WithHeader(lines ...string) Option {
	return func(t *Translator) {
		t.header = append([]string(nil), lines...)
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithLoopDiagnostics logs a warning for every stray loop-close and every
// loop-open left unclosed. Output is unaffected.
func WithLoopDiagnostics(enabled bool) Option {
	return func(t *Translator) {
		t.loopDiagnostics = enabled
	}
}

// Translator turns Brainfuck into C, one statement per recognized symbol.
// It keeps only configuration, so one value can serve any number of calls.
type Translator struct {
	header          []string
	logger          *log.Logger
	loopDiagnostics bool
}

func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		header: defaultHeader,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate is shorthand for NewTranslator().Translate(r, w).
func Translate(r io.Reader, w io.Writer) (Report, error) {
	return NewTranslator().Translate(r, w)
}

// Translate reads r to the end and writes the C program to w. Content never
// causes an error; only reading r or writing w can fail.
func (t *Translator) Translate(r io.Reader, w io.Writer) (Report, error) {
	scanner := NewSymbolScanner(r)
	writer := NewCWriter(w)

	report, err := t.TranslateSymbols(scanner, writer)
	report.BytesRead = scanner.BytesRead()
	return report, err
}

func (t *Translator) TranslateSymbols(symbols SymbolSource, writer *CWriter) (Report, error) {
	report := Report{Counts: make(map[Symbol]int)}
	loops := NewLoopTracker()

	writer.WritePrologue(t.header)

	for symbols.Scan() {
		symbol := symbols.Symbol()
		statement, ok := symbol.Statement()
		if !ok {
			continue
		}
		writer.WriteStatement(statement)
		if err := writer.Err(); err != nil {
			return report, err
		}
		report.Statements++
		report.Counts[symbol]++

		switch symbol {
		case LoopOpen:
			loops.Open(symbols.Position())
		case LoopClose:
			if !loops.Close(symbols.Position()) && t.loopDiagnostics {
				t.logger.Printf("warning: %s: loop-close without matching loop-open", symbols.Position())
			}
		}
	}
	if err := symbols.Err(); err != nil {
		return report, fmt.Errorf("read source: %w", err)
	}

	writer.WriteEpilogue()
	if err := writer.Flush(); err != nil {
		return report, err
	}

	report.MaxDepth = loops.MaxDepth()
	report.Unclosed = loops.Unclosed()
	report.Stray = loops.Stray()
	if t.loopDiagnostics {
		for _, pos := range report.Unclosed {
			t.logger.Printf("warning: %s: loop-open is never closed", pos)
		}
	}
	return report, nil
}
