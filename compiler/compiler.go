/*
File    : jack-go/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package compiler implements the recursive-descent compilation engine of the
Jack compiler.

The engine is single-pass by design: it consumes tokens from the lexer,
resolves identifiers through the symbol table, and emits Hack VM instructions
through the VM writer as it parses. No syntax tree is built -- each grammar
production generates its code the moment it is recognized. Jack's grammar
makes this possible because every identifier can be resolved locally with
the symbol table in its parse-time state.

The engine handles:
- Class declarations and class-level variables (static, field)
- Subroutines (constructor, function, method) and their calling conventions
- Statements (let, if, while, do, return)
- Expressions (left-associative, no operator precedence)
- Array access through the 'that' segment
- String constants via the OS String class

Cursor discipline:
Every compileX method assumes CurrToken is positioned at the first token of
the construct it parses and leaves the cursor on the first token past that
construct. The first violation of the grammar aborts compilation with an
error carrying the source position; there is no recovery, since resuming
with an inconsistent cursor would desynchronize parsing and code generation.
*/
package compiler

import (
	"fmt"
	"io"

	"github.com/akashmaji946/jack-go/lexer"
	"github.com/akashmaji946/jack-go/symbols"
	"github.com/akashmaji946/jack-go/vmwriter"
)

// Engine represents the compilation engine state.
// It owns the lexer cursor, the symbol table, and the VM writer for the
// duration of one class compilation.
type Engine struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	Table *symbols.Table   // Two-scope symbol table
	VM    *vmwriter.Writer // VM instruction emitter

	ClassName  string // Name of the class being compiled
	LabelCount int    // Per-class counter for unique control-flow labels

	// Verbose, when non-nil, receives symbol table dumps as scopes complete
	Verbose io.Writer

	classScopeDumped bool // Class scope has been rendered to Verbose
}

// NewEngine creates a compilation engine for one Jack class.
// The token window is primed so that CurrToken holds the first token of
// the source when Compile is called.
//
// Parameters:
//
//	src - The Jack source code of a single class
//	out - Destination for the emitted VM instructions
//
// Returns:
//
//	A pointer to a fully initialized Engine instance
func NewEngine(src string, out io.Writer) *Engine {
	eng := &Engine{
		Lex:   lexer.NewLexer(src),
		Table: symbols.NewTable(),
		VM:    vmwriter.NewWriter(out),
	}

	// Prime the two-token window
	eng.advance()
	eng.advance()

	return eng
}

// Compile compiles the entire class and flushes the emitted VM code.
// This is the engine's only entry point.
//
// Returns:
//
//	An error describing the first lexical, syntactic, or semantic problem,
//	or a write error from flushing the output. On error the output must be
//	considered garbage; partial instructions may have been written.
func (eng *Engine) Compile() error {
	if err := eng.compileClass(); err != nil {
		return err
	}
	if eng.CurrToken.Type != lexer.EOF_TYPE {
		return eng.errorf("unexpected input after class declaration")
	}
	return eng.VM.Flush()
}

// compileClass parses: 'class' className '{' classVarDec* subroutineDec* '}'
// and records the class name used to qualify subroutine names and implicit
// method receivers.
func (eng *Engine) compileClass() error {
	if err := eng.expect(lexer.CLASS_KEY); err != nil {
		return err
	}

	name, err := eng.expectIdentifier()
	if err != nil {
		return err
	}
	eng.ClassName = name

	if err := eng.expect(lexer.LEFT_BRACE); err != nil {
		return err
	}

	for eng.CurrToken.Type != lexer.RIGHT_BRACE {
		switch eng.CurrToken.Type {
		case lexer.STATIC_KEY, lexer.FIELD_KEY:
			if err := eng.compileClassVarDec(); err != nil {
				return err
			}
		case lexer.CONSTRUCTOR_KEY, lexer.FUNCTION_KEY, lexer.METHOD_KEY:
			if err := eng.compileSubroutine(); err != nil {
				return err
			}
		case lexer.INVALID_TYPE:
			return eng.invalidTokenError()
		default:
			return eng.errorf("unexpected token %q inside class", eng.CurrToken.Literal)
		}
	}

	return eng.expect(lexer.RIGHT_BRACE)
}

// advance moves the token window forward by one token.
// CurrToken receives the previous lookahead and a fresh token is pulled
// from the lexer into NextToken.
func (eng *Engine) advance() {
	eng.CurrToken = eng.NextToken
	eng.NextToken = eng.Lex.NextToken()
}

// expect verifies that the current token has the wanted type and advances
// past it. This is the workhorse for required punctuation and keywords.
//
// Returns:
//
//	An error carrying the source position if the token does not match
func (eng *Engine) expect(tokenType lexer.TokenType) error {
	if eng.CurrToken.Type == lexer.INVALID_TYPE {
		return eng.invalidTokenError()
	}
	if eng.CurrToken.Type != tokenType {
		return eng.errorf("expected %q, got %q", string(tokenType), eng.CurrToken.Literal)
	}
	eng.advance()
	return nil
}

// expectIdentifier verifies that the current token is an identifier,
// advances past it, and returns its text.
func (eng *Engine) expectIdentifier() (string, error) {
	if eng.CurrToken.Type == lexer.INVALID_TYPE {
		return "", eng.invalidTokenError()
	}
	if eng.CurrToken.Type != lexer.IDENTIFIER_ID {
		return "", eng.errorf("expected identifier, got %q", eng.CurrToken.Literal)
	}
	name := eng.CurrToken.Literal
	eng.advance()
	return name, nil
}

// errorf builds an error prefixed with the current token's line and column.
func (eng *Engine) errorf(format string, a ...interface{}) error {
	position := fmt.Sprintf("line %d:%d: ", eng.CurrToken.Line, eng.CurrToken.Column)
	return fmt.Errorf(position+format, a...)
}

// invalidTokenError converts an INVALID_TYPE token into a compile error,
// preferring the lexer's diagnostic message when it has one.
func (eng *Engine) invalidTokenError() error {
	if eng.CurrToken.Message != "" {
		return eng.errorf("%s", eng.CurrToken.Message)
	}
	return eng.errorf("invalid token %q", eng.CurrToken.Literal)
}

// lookupVariable resolves a name that must be a declared variable
// (the LHS of a let, an array base, a call receiver).
//
// Returns:
//
//	The resolved symbol, or an error if the name is not in any scope
func (eng *Engine) lookupVariable(name string) (symbols.Symbol, error) {
	symbol, ok := eng.Table.Lookup(name)
	if !ok {
		return symbol, eng.errorf("undeclared variable %q", name)
	}
	return symbol, nil
}

// segmentForKind maps a symbol kind to the VM segment addressing it.
// Fields live in the 'this' segment, which the subroutine prologue aligns
// with the current object.
func segmentForKind(kind symbols.Kind) vmwriter.Segment {
	switch kind {
	case symbols.StaticKind:
		return vmwriter.StaticSegment
	case symbols.FieldKind:
		return vmwriter.ThisSegment
	case symbols.ArgKind:
		return vmwriter.ArgumentSegment
	default:
		return vmwriter.LocalSegment
	}
}

// nextLabelID increments and returns the per-class label counter.
// The first control-flow construct of a class gets id 1. Embedding the id
// in every label name keeps labels unique within the class.
func (eng *Engine) nextLabelID() int {
	eng.LabelCount++
	return eng.LabelCount
}
