package main

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, s *SymbolScanner) ([]Symbol, []Position) {
	t.Helper()
	var symbols []Symbol
	var positions []Position
	for s.Scan() {
		symbols = append(symbols, s.Symbol())
		positions = append(positions, s.Position())
	}
	require.NoError(t, s.Err())
	return symbols, positions
}

func TestScannerSkipsComments(t *testing.T) {
	s := NewSymbolScanner(strings.NewReader("add + one\n[loop -]\n."))
	symbols, _ := scanAll(t, s)
	assert.Equal(t, []Symbol{Increment, LoopOpen, Decrement, LoopClose, WriteOutput}, symbols)
	assert.Equal(t, int64(20), s.BytesRead())
}

func TestScannerPositions(t *testing.T) {
	s := NewSymbolScanner(strings.NewReader("x+\n  [\n]"))
	_, positions := scanAll(t, s)
	assert.Equal(t, []Position{
		{Offset: 1, Line: 1, Column: 2},
		{Offset: 5, Line: 2, Column: 3},
		{Offset: 7, Line: 3, Column: 1},
	}, positions)
	assert.Equal(t, "2:3", positions[1].String())
}

func TestScannerEmptyInput(t *testing.T) {
	s := NewSymbolScanner(strings.NewReader(""))
	assert.False(t, s.Scan())
	assert.NoError(t, s.Err())
	assert.Equal(t, int64(0), s.BytesRead())
}

func TestScannerHandlesBinaryInput(t *testing.T) {
	s := NewSymbolScanner(strings.NewReader("\x00\xff+\x80-"))
	symbols, _ := scanAll(t, s)
	assert.Equal(t, []Symbol{Increment, Decrement}, symbols)
}

func TestScannerReadError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSymbolScanner(iotest.ErrReader(boom))
	assert.False(t, s.Scan())
	assert.ErrorIs(t, s.Err(), boom)
	// stays failed
	assert.False(t, s.Scan())
}
