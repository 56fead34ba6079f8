/*
File    : jack-go/compiler/compiler_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"fmt"

	"github.com/akashmaji946/jack-go/lexer"
	"github.com/akashmaji946/jack-go/vmwriter"
)

// compileStatements parses a statement sequence up to the enclosing '}'.
//
// Syntax:
//
//	(letStatement | ifStatement | whileStatement | doStatement | returnStatement)*
//
// The closing brace is not consumed; it belongs to the caller's production.
func (eng *Engine) compileStatements() error {
	for eng.CurrToken.Type != lexer.RIGHT_BRACE {
		var err error
		switch eng.CurrToken.Type {
		case lexer.LET_KEY:
			err = eng.compileLet()
		case lexer.IF_KEY:
			err = eng.compileIf()
		case lexer.WHILE_KEY:
			err = eng.compileWhile()
		case lexer.DO_KEY:
			err = eng.compileDo()
		case lexer.RETURN_KEY:
			err = eng.compileReturn()
		case lexer.INVALID_TYPE:
			err = eng.invalidTokenError()
		default:
			err = eng.errorf("expected statement, got %q", eng.CurrToken.Literal)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// compileLet parses an assignment statement and emits the store.
//
// Syntax:
//
//	'let' varName ('[' expression ']')? '=' expression ';'
//
// Behavior:
//   - Plain variable: the RHS leaves its value on the stack and a single
//     pop stores it into the variable's segment slot.
//   - Array element: the element address (index + base) is computed before
//     the RHS so that nested array expressions on the RHS may freely use
//     the 'that' pointer. The value is parked in temp 0 while the address
//     is installed into pointer 1, then stored through that 0.
func (eng *Engine) compileLet() error {
	eng.advance() // consume 'let'

	name, err := eng.expectIdentifier()
	if err != nil {
		return err
	}
	symbol, err := eng.lookupVariable(name)
	if err != nil {
		return err
	}

	isArrayElement := eng.CurrToken.Type == lexer.LEFT_BRACKET
	if isArrayElement {
		eng.advance()
		if err := eng.compileExpression(); err != nil {
			return err
		}
		if err := eng.expect(lexer.RIGHT_BRACKET); err != nil {
			return err
		}
		eng.VM.WritePush(segmentForKind(symbol.Kind), symbol.Index)
		eng.VM.WriteArithmetic(vmwriter.AddCommand)
	}

	if err := eng.expect(lexer.ASSIGN_OP); err != nil {
		return err
	}
	if err := eng.compileExpression(); err != nil {
		return err
	}
	if err := eng.expect(lexer.SEMICOLON_DELIM); err != nil {
		return err
	}

	if isArrayElement {
		eng.VM.WritePop(vmwriter.TempSegment, 0)
		eng.VM.WritePop(vmwriter.PointerSegment, 1)
		eng.VM.WritePush(vmwriter.TempSegment, 0)
		eng.VM.WritePop(vmwriter.ThatSegment, 0)
	} else {
		eng.VM.WritePop(segmentForKind(symbol.Kind), symbol.Index)
	}
	return nil
}

// compileIf parses a conditional and emits its jump scaffolding.
//
// Syntax:
//
//	'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
//
// Behavior:
//
//	The condition is negated so a single if-goto can skip the then-branch.
//	Labels if<N>_else and if<N>_end share a fresh id; the else label is
//	emitted even when no else clause exists, in which case it falls
//	through to the end label.
func (eng *Engine) compileIf() error {
	eng.advance() // consume 'if'

	if err := eng.expect(lexer.LEFT_PAREN); err != nil {
		return err
	}
	if err := eng.compileExpression(); err != nil {
		return err
	}
	if err := eng.expect(lexer.RIGHT_PAREN); err != nil {
		return err
	}

	id := eng.nextLabelID()
	elseLabel := fmt.Sprintf("if%d_else", id)
	endLabel := fmt.Sprintf("if%d_end", id)

	eng.VM.WriteArithmetic(vmwriter.NotCommand)
	eng.VM.WriteIf(elseLabel)

	if err := eng.expect(lexer.LEFT_BRACE); err != nil {
		return err
	}
	if err := eng.compileStatements(); err != nil {
		return err
	}
	if err := eng.expect(lexer.RIGHT_BRACE); err != nil {
		return err
	}

	eng.VM.WriteGoto(endLabel)
	eng.VM.WriteLabel(elseLabel)

	if eng.CurrToken.Type == lexer.ELSE_KEY {
		eng.advance()
		if err := eng.expect(lexer.LEFT_BRACE); err != nil {
			return err
		}
		if err := eng.compileStatements(); err != nil {
			return err
		}
		if err := eng.expect(lexer.RIGHT_BRACE); err != nil {
			return err
		}
	}

	eng.VM.WriteLabel(endLabel)
	return nil
}

// compileWhile parses a loop and emits its jump scaffolding.
//
// Syntax:
//
//	'while' '(' expression ')' '{' statements '}'
//
// Behavior:
//
//	Label while<N> marks the condition re-entry point and while<N>_end the
//	exit; the condition is negated so a single if-goto leaves the loop.
func (eng *Engine) compileWhile() error {
	eng.advance() // consume 'while'

	id := eng.nextLabelID()
	topLabel := fmt.Sprintf("while%d", id)
	endLabel := fmt.Sprintf("while%d_end", id)

	eng.VM.WriteLabel(topLabel)

	if err := eng.expect(lexer.LEFT_PAREN); err != nil {
		return err
	}
	if err := eng.compileExpression(); err != nil {
		return err
	}
	if err := eng.expect(lexer.RIGHT_PAREN); err != nil {
		return err
	}

	eng.VM.WriteArithmetic(vmwriter.NotCommand)
	eng.VM.WriteIf(endLabel)

	if err := eng.expect(lexer.LEFT_BRACE); err != nil {
		return err
	}
	if err := eng.compileStatements(); err != nil {
		return err
	}
	if err := eng.expect(lexer.RIGHT_BRACE); err != nil {
		return err
	}

	eng.VM.WriteGoto(topLabel)
	eng.VM.WriteLabel(endLabel)
	return nil
}

// compileDo parses a call statement.
//
// Syntax:
//
//	'do' subroutineCall ';'
//
// Behavior:
//
//	Every Jack subroutine pushes a return value; a do statement ignores it,
//	so the value is discarded into temp 0.
func (eng *Engine) compileDo() error {
	eng.advance() // consume 'do'

	name, err := eng.expectIdentifier()
	if err != nil {
		return err
	}
	if err := eng.compileSubroutineCall(name); err != nil {
		return err
	}
	if err := eng.expect(lexer.SEMICOLON_DELIM); err != nil {
		return err
	}

	eng.VM.WritePop(vmwriter.TempSegment, 0)
	return nil
}

// compileReturn parses a return statement.
//
// Syntax:
//
//	'return' expression? ';'
//
// Behavior:
//
//	Void subroutines still return a word; with no expression present the
//	engine pushes constant 0 to keep the calling convention uniform.
func (eng *Engine) compileReturn() error {
	eng.advance() // consume 'return'

	if eng.CurrToken.Type == lexer.SEMICOLON_DELIM {
		eng.VM.WritePush(vmwriter.ConstSegment, 0)
	} else {
		if err := eng.compileExpression(); err != nil {
			return err
		}
	}

	if err := eng.expect(lexer.SEMICOLON_DELIM); err != nil {
		return err
	}
	eng.VM.WriteReturn()
	return nil
}
