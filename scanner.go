package main

import (
	"bufio"
	"errors"
	"io"
)

// SymbolScanner reads Brainfuck source byte by byte and yields only the
// recognized symbols. Everything else is skipped as a comment.
type SymbolScanner struct {
	reader     *bufio.Reader
	nextSymbol Symbol
	position   Position
	bytesRead  int64
	line       int
	column     int
	err        error
}

func NewSymbolScanner(r io.Reader) *SymbolScanner {
	return &SymbolScanner{reader: bufio.NewReader(r), line: 1}
}

func (s *SymbolScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		c, err := s.reader.ReadByte()
		if err != nil {
			// EOF ends the stream normally
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}

		s.bytesRead++
		s.column++
		pos := Position{Offset: s.bytesRead - 1, Line: s.line, Column: s.column}
		if c == '\n' {
			s.line++
			s.column = 0
		}

		if symbol := Symbol(c); symbol.Valid() {
			s.nextSymbol = symbol
			s.position = pos
			return true
		}
	}
}

func (s *SymbolScanner) Symbol() Symbol {
	return s.nextSymbol
}

func (s *SymbolScanner) Position() Position {
	return s.position
}

// BytesRead counts every byte consumed, comments included.
func (s *SymbolScanner) BytesRead() int64 {
	return s.bytesRead
}

func (s *SymbolScanner) Err() error {
	return s.err
}
