/*
File    : jack-go/vmwriter/vmwriter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package vmwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWriter_Instructions tests that every instruction form emits exactly
// one canonical, newline-terminated VM line
func TestWriter_Instructions(t *testing.T) {
	var sb strings.Builder
	writer := NewWriter(&sb)

	writer.WriteFunction("Point.distance", 2)
	writer.WritePush(ArgumentSegment, 0)
	writer.WritePush(ConstSegment, 1)
	writer.WriteArithmetic(SubCommand)
	writer.WritePop(LocalSegment, 0)
	writer.WriteLabel("while1")
	writer.WritePush(LocalSegment, 0)
	writer.WriteArithmetic(NotCommand)
	writer.WriteIf("while1_end")
	writer.WriteGoto("while1")
	writer.WriteLabel("while1_end")
	writer.WriteCall("Math.multiply", 2)
	writer.WriteReturn()
	assert.NoError(t, writer.Flush())

	expected := "function Point.distance 2\n" +
		"push argument 0\n" +
		"push constant 1\n" +
		"sub\n" +
		"pop local 0\n" +
		"label while1\n" +
		"push local 0\n" +
		"not\n" +
		"if-goto while1_end\n" +
		"goto while1\n" +
		"label while1_end\n" +
		"call Math.multiply 2\n" +
		"return\n"
	assert.Equal(t, expected, sb.String())
}

// TestWriter_SegmentNames tests the canonical segment spellings
func TestWriter_SegmentNames(t *testing.T) {
	segments := map[Segment]string{
		ConstSegment:    "constant",
		ArgumentSegment: "argument",
		LocalSegment:    "local",
		StaticSegment:   "static",
		ThisSegment:     "this",
		ThatSegment:     "that",
		PointerSegment:  "pointer",
		TempSegment:     "temp",
	}

	for segment, spelling := range segments {
		var sb strings.Builder
		writer := NewWriter(&sb)
		writer.WritePush(segment, 3)
		assert.NoError(t, writer.Flush())
		assert.Equal(t, "push "+spelling+" 3\n", sb.String())
	}
}
