/*
File    : jack-go/vmwriter/vmwriter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package vmwriter formats and emits Hack VM instructions.
//
// The writer is a thin formatting layer: each Write method emits exactly one
// VM instruction terminated by a newline, in the canonical spelling expected
// by the downstream VM translator (segments "argument" and "constant", never
// the abbreviated forms). It performs no validation of labels or names and
// keeps no state beyond the output sink.
package vmwriter

import (
	"bufio"
	"fmt"
	"io"
)

// Segment names a VM memory segment.
// The string values are the canonical spellings of the Hack VM language.
type Segment string

// Segment Constants:
// The eight memory segments of the Hack VM.
const (
	ConstSegment    Segment = "constant" // Virtual segment of constants
	ArgumentSegment Segment = "argument" // Subroutine arguments
	LocalSegment    Segment = "local"    // Subroutine local variables
	StaticSegment   Segment = "static"   // Class-level variables
	ThisSegment     Segment = "this"     // Current object's fields
	ThatSegment     Segment = "that"     // Indirect (array) access
	PointerSegment  Segment = "pointer"  // Base registers of this/that
	TempSegment     Segment = "temp"     // Scratch slots
)

// Command names a VM arithmetic or logical opcode.
type Command string

// Command Constants:
// The nine arithmetic/logical instructions of the Hack VM.
const (
	AddCommand Command = "add" // Integer addition
	SubCommand Command = "sub" // Integer subtraction
	NegCommand Command = "neg" // Arithmetic negation
	EqCommand  Command = "eq"  // Equality comparison
	GtCommand  Command = "gt"  // Greater-than comparison
	LtCommand  Command = "lt"  // Less-than comparison
	AndCommand Command = "and" // Bitwise AND
	OrCommand  Command = "or"  // Bitwise OR
	NotCommand Command = "not" // Bitwise NOT
)

// Writer emits textual VM instructions to an output sink.
// Writes are buffered; call Flush once compilation of the unit succeeds.
// Write errors are sticky and surface on Flush, which keeps the emit call
// sites free of error plumbing in the middle of code generation.
type Writer struct {
	out *bufio.Writer
}

// NewWriter creates a Writer that emits VM instructions to w.
//
// Parameters:
//   - w: The output sink (an output file, a buffer in tests)
//
// Returns:
//   - *Writer: A ready-to-use VM instruction writer
//
// Example:
//
//	writer := vmwriter.NewWriter(outFile)
//	writer.WritePush(vmwriter.ConstSegment, 2)
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// WritePush emits a push instruction: "push <segment> <index>".
func (w *Writer) WritePush(segment Segment, index int) {
	fmt.Fprintf(w.out, "push %s %d\n", segment, index)
}

// WritePop emits a pop instruction: "pop <segment> <index>".
func (w *Writer) WritePop(segment Segment, index int) {
	fmt.Fprintf(w.out, "pop %s %d\n", segment, index)
}

// WriteArithmetic emits an arithmetic/logical instruction, which is just
// the opcode on a line of its own.
func (w *Writer) WriteArithmetic(command Command) {
	fmt.Fprintf(w.out, "%s\n", command)
}

// WriteLabel emits a label declaration: "label <label>".
// Labels are opaque strings; uniqueness is the caller's concern.
func (w *Writer) WriteLabel(label string) {
	fmt.Fprintf(w.out, "label %s\n", label)
}

// WriteGoto emits an unconditional jump: "goto <label>".
func (w *Writer) WriteGoto(label string) {
	fmt.Fprintf(w.out, "goto %s\n", label)
}

// WriteIf emits a conditional jump: "if-goto <label>".
// The jump is taken when the popped stack top is non-zero.
func (w *Writer) WriteIf(label string) {
	fmt.Fprintf(w.out, "if-goto %s\n", label)
}

// WriteCall emits a subroutine call: "call <name> <nArgs>".
// nArgs counts the arguments already pushed, including the receiver for
// method calls.
func (w *Writer) WriteCall(name string, nArgs int) {
	fmt.Fprintf(w.out, "call %s %d\n", name, nArgs)
}

// WriteFunction emits a subroutine header: "function <name> <nLocals>".
func (w *Writer) WriteFunction(name string, nLocals int) {
	fmt.Fprintf(w.out, "function %s %d\n", name, nLocals)
}

// WriteReturn emits a return instruction.
func (w *Writer) WriteReturn() {
	fmt.Fprintf(w.out, "return\n")
}

// Flush writes any buffered instructions to the underlying sink and
// reports the first write error encountered, if any.
//
// Returns:
//   - error: Non-nil if any write to the sink failed
func (w *Writer) Flush() error {
	return w.out.Flush()
}
