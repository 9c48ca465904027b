package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolStatements(t *testing.T) {
	cases := []struct {
		symbol    Symbol
		statement Statement
		name      string
	}{
		{'>', "ptr++;", "move-right"},
		{'<', "ptr--;", "move-left"},
		{'+', "++*ptr;", "increment"},
		{'-', "--*ptr;", "decrement"},
		{'[', "while(*ptr){", "loop-open"},
		{']', "}", "loop-close"},
		{',', "*ptr = getchar();", "read-input"},
		{'.', "putchar(*ptr);", "write-output"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.symbol.Valid())
			statement, ok := tc.symbol.Statement()
			assert.True(t, ok)
			assert.Equal(t, tc.statement, statement)
			assert.Equal(t, tc.name, tc.symbol.String())
		})
	}
}

func TestAlphabetIsTotal(t *testing.T) {
	recognized := 0
	for b := 0; b < 256; b++ {
		if Symbol(b).Valid() {
			recognized++
		}
	}
	assert.Equal(t, 8, recognized)
	assert.Len(t, Alphabet, 8)
	for _, symbol := range Alphabet {
		assert.True(t, symbol.Valid(), "%s", symbol)
	}
}

func TestCommentSymbol(t *testing.T) {
	symbol := Symbol('a')
	assert.False(t, symbol.Valid())
	_, ok := symbol.Statement()
	assert.False(t, ok)
	assert.Equal(t, `comment('a')`, symbol.String())
}
