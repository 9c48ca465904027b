package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TapeLength is the number of byte cells the generated program allocates.
// Cells start at zero and the cursor starts on the first one. Moving past
// either end is left undefined, exactly as plain C array access is.
const TapeLength = 30000

const (
	tapeName   = "a"
	cursorName = "ptr"
)

var defaultHeader = []string{
	"This C code was automatically generated from Brainfuck source code by the Brainfuck-to-C Interpreter",
	"Axel Ekman © 2018",
}

var includes = []string{"stdio.h", "stdlib.h"}

// CWriter emits C source. The first write error is kept and every later
// write becomes a no-op, so callers only check Err or Flush once.
type CWriter struct {
	output *bufio.Writer
	err    error
}

func NewCWriter(w io.Writer) *CWriter {
	return &CWriter{output: bufio.NewWriter(w)}
}

func (w *CWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.output.WriteString(s)
}

func (w *CWriter) WriteLine(line string) {
	w.writeString(line)
	w.writeString("\n")
}

func (w *CWriter) WriteStatement(statement Statement) {
	w.WriteLine(string(statement))
}

func (w *CWriter) WriteHeader(lines []string) {
	if len(lines) == 0 {
		return
	}
	// "*/" inside a header line would end the comment early
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = strings.ReplaceAll(line, "*/", "* /")
	}
	w.WriteLine("/* " + strings.Join(escaped, "\n") + " */")
}

func (w *CWriter) WriteInclude(header string) {
	w.WriteLine("#include <" + header + ">")
}

// WritePrologue writes everything that precedes the first statement: the
// header comment, includes, the entry point and the tape declaration.
func (w *CWriter) WritePrologue(header []string) {
	w.WriteHeader(header)
	w.WriteLine("")
	for _, include := range includes {
		w.WriteInclude(include)
	}
	w.WriteLine("")
	w.WriteLine("int main (){")
	w.WriteLine(" char " + tapeName + "[" + strconv.Itoa(TapeLength) + "] = {0}, *" + cursorName + " = " + tapeName + ";")
}

func (w *CWriter) WriteEpilogue() {
	w.writeString("return 0;\n}")
}

func (w *CWriter) Flush() error {
	if w.err == nil {
		w.err = w.output.Flush()
	}
	return w.Err()
}

func (w *CWriter) Err() error {
	if w.err != nil {
		return fmt.Errorf("write output: %w", w.err)
	}
	return nil
}
