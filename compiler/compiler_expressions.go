/*
File    : jack-go/compiler/compiler_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"strconv"

	"github.com/akashmaji946/jack-go/lexer"
	"github.com/akashmaji946/jack-go/vmwriter"
)

// binaryOps maps Jack's binary operators to the VM instructions that
// implement them. Multiplication and division have no VM opcode and are
// dispatched to the OS Math class instead; their map value is empty and
// emitOperator special-cases them.
var binaryOps = map[lexer.TokenType]vmwriter.Command{
	lexer.PLUS_OP:    vmwriter.AddCommand,
	lexer.MINUS_OP:   vmwriter.SubCommand,
	lexer.BIT_AND_OP: vmwriter.AndCommand,
	lexer.BIT_OR_OP:  vmwriter.OrCommand,
	lexer.LT_OP:      vmwriter.LtCommand,
	lexer.GT_OP:      vmwriter.GtCommand,
	lexer.ASSIGN_OP:  vmwriter.EqCommand,
	lexer.MUL_OP:     "",
	lexer.DIV_OP:     "",
}

// compileExpression parses: term (op term)*.
//
// Jack expressions are strictly left-associative with no operator
// precedence: 1 + 2 * 3 is (1+2)*3. Each operator's code is emitted right
// after its right-hand term, which realizes that evaluation order on the
// stack without any lookahead or precedence climbing.
func (eng *Engine) compileExpression() error {
	if err := eng.compileTerm(); err != nil {
		return err
	}

	for {
		op := eng.CurrToken.Type
		if _, isOp := binaryOps[op]; !isOp {
			return nil
		}
		eng.advance()
		if err := eng.compileTerm(); err != nil {
			return err
		}
		eng.emitOperator(op)
	}
}

// emitOperator emits the VM code for one binary operator.
// Multiplication and division become OS calls; everything else is a
// single arithmetic instruction.
func (eng *Engine) emitOperator(op lexer.TokenType) {
	switch op {
	case lexer.MUL_OP:
		eng.VM.WriteCall("Math.multiply", 2)
	case lexer.DIV_OP:
		eng.VM.WriteCall("Math.divide", 2)
	default:
		eng.VM.WriteArithmetic(binaryOps[op])
	}
}

// compileTerm parses a single term and emits code leaving its value on
// the stack.
//
// Syntax:
//
//	integerConstant | stringConstant | keywordConstant | varName |
//	varName '[' expression ']' | subroutineCall | '(' expression ')' |
//	('-' | '~') term
//
// Behavior:
//   - true is all-ones (push 1, negate), false and null are 0.
//   - A string constant allocates a String object and appends each
//     character; appendChar returns the string, so the chain leaves the
//     object on the stack.
//   - An identifier needs one token of lookahead to decide between plain
//     variable, array read, and subroutine call.
func (eng *Engine) compileTerm() error {
	switch eng.CurrToken.Type {
	case lexer.INT_LIT:
		value, err := strconv.Atoi(eng.CurrToken.Literal)
		if err != nil {
			return eng.errorf("malformed integer constant %q", eng.CurrToken.Literal)
		}
		eng.VM.WritePush(vmwriter.ConstSegment, value)
		eng.advance()
		return nil

	case lexer.STRING_LIT:
		eng.compileStringConstant(eng.CurrToken.Literal)
		eng.advance()
		return nil

	case lexer.TRUE_KEY:
		eng.VM.WritePush(vmwriter.ConstSegment, 1)
		eng.VM.WriteArithmetic(vmwriter.NegCommand)
		eng.advance()
		return nil

	case lexer.FALSE_KEY, lexer.NULL_KEY:
		eng.VM.WritePush(vmwriter.ConstSegment, 0)
		eng.advance()
		return nil

	case lexer.THIS_KEY:
		eng.VM.WritePush(vmwriter.PointerSegment, 0)
		eng.advance()
		return nil

	case lexer.LEFT_PAREN:
		eng.advance()
		if err := eng.compileExpression(); err != nil {
			return err
		}
		return eng.expect(lexer.RIGHT_PAREN)

	case lexer.MINUS_OP:
		// Unary minus: distinguished from subtraction by position
		eng.advance()
		if err := eng.compileTerm(); err != nil {
			return err
		}
		eng.VM.WriteArithmetic(vmwriter.NegCommand)
		return nil

	case lexer.BIT_NOT_OP:
		eng.advance()
		if err := eng.compileTerm(); err != nil {
			return err
		}
		eng.VM.WriteArithmetic(vmwriter.NotCommand)
		return nil

	case lexer.IDENTIFIER_ID:
		return eng.compileIdentifierTerm()

	case lexer.INVALID_TYPE:
		return eng.invalidTokenError()

	default:
		return eng.errorf("unexpected token %q at start of term", eng.CurrToken.Literal)
	}
}

// compileIdentifierTerm parses a term that starts with an identifier,
// using the lookahead token to pick among four shapes:
//
//	name[expr]     - array element read through pointer 1 / that 0
//	name(...)      - subroutine call (see compileSubroutineCall)
//	name.sub(...)  - qualified subroutine call
//	name        - plain variable read
func (eng *Engine) compileIdentifierTerm() error {
	name := eng.CurrToken.Literal
	eng.advance()

	switch eng.CurrToken.Type {
	case lexer.LEFT_BRACKET:
		symbol, err := eng.lookupVariable(name)
		if err != nil {
			return err
		}
		eng.advance()
		if err := eng.compileExpression(); err != nil {
			return err
		}
		if err := eng.expect(lexer.RIGHT_BRACKET); err != nil {
			return err
		}
		eng.VM.WritePush(segmentForKind(symbol.Kind), symbol.Index)
		eng.VM.WriteArithmetic(vmwriter.AddCommand)
		eng.VM.WritePop(vmwriter.PointerSegment, 1)
		eng.VM.WritePush(vmwriter.ThatSegment, 0)
		return nil

	case lexer.LEFT_PAREN, lexer.DOT_OP:
		return eng.compileSubroutineCall(name)

	default:
		symbol, err := eng.lookupVariable(name)
		if err != nil {
			return err
		}
		eng.VM.WritePush(segmentForKind(symbol.Kind), symbol.Index)
		return nil
	}
}

// compileSubroutineCall parses the remainder of a call whose leading
// identifier has already been consumed, and emits the call.
//
// Three shapes exist, distinguished by the lookahead and the symbol table:
//
//  1. name(args)       - method on the current object: pointer 0 is pushed
//     as the receiver and the call targets the current class.
//  2. Class.name(args) - static call: the qualifier is not in any scope
//     (KindOf returns none), so the call goes out unqualified by a receiver.
//  3. obj.name(args)   - method on another object: the variable is pushed
//     as the receiver and the call targets the variable's declared type.
//
// The argument count passed to the VM call includes the receiver when one
// is pushed.
func (eng *Engine) compileSubroutineCall(name string) error {
	switch eng.CurrToken.Type {
	case lexer.LEFT_PAREN:
		// Implicit method call on the current object
		eng.VM.WritePush(vmwriter.PointerSegment, 0)
		eng.advance()
		nArgs, err := eng.compileExpressionList()
		if err != nil {
			return err
		}
		if err := eng.expect(lexer.RIGHT_PAREN); err != nil {
			return err
		}
		eng.VM.WriteCall(eng.ClassName+"."+name, nArgs+1)
		return nil

	case lexer.DOT_OP:
		eng.advance()
		subroutineName, err := eng.expectIdentifier()
		if err != nil {
			return err
		}

		receiver := false
		target := name
		if symbol, ok := eng.Table.Lookup(name); ok {
			// Variable holding an object: push it as the receiver and
			// dispatch on its declared type
			eng.VM.WritePush(segmentForKind(symbol.Kind), symbol.Index)
			target = symbol.Type
			receiver = true
		}

		if err := eng.expect(lexer.LEFT_PAREN); err != nil {
			return err
		}
		nArgs, err := eng.compileExpressionList()
		if err != nil {
			return err
		}
		if err := eng.expect(lexer.RIGHT_PAREN); err != nil {
			return err
		}

		if receiver {
			nArgs++
		}
		eng.VM.WriteCall(target+"."+subroutineName, nArgs)
		return nil

	default:
		return eng.errorf("expected '(' or '.' in subroutine call, got %q", eng.CurrToken.Literal)
	}
}

// compileExpressionList parses zero or more comma-separated expressions
// and returns how many were compiled. Each expression leaves one value on
// the stack, so the count is also the number of pushed arguments.
func (eng *Engine) compileExpressionList() (int, error) {
	if eng.CurrToken.Type == lexer.RIGHT_PAREN {
		return 0, nil
	}

	count := 1
	if err := eng.compileExpression(); err != nil {
		return 0, err
	}
	for eng.CurrToken.Type == lexer.COMMA_DELIM {
		eng.advance()
		if err := eng.compileExpression(); err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// compileStringConstant emits the allocation of a string object.
// String.new receives the length; each character is then appended with
// String.appendChar, which returns the string itself so the chain keeps
// the object on the stack for the next append (and as the term's value).
func (eng *Engine) compileStringConstant(value string) {
	eng.VM.WritePush(vmwriter.ConstSegment, len(value))
	eng.VM.WriteCall("String.new", 1)
	for i := 0; i < len(value); i++ {
		eng.VM.WritePush(vmwriter.ConstSegment, int(value[i]))
		eng.VM.WriteCall("String.appendChar", 2)
	}
}
