/*
File    : jack-go/compiler/compiler_declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"io"

	"github.com/akashmaji946/jack-go/lexer"
	"github.com/akashmaji946/jack-go/symbols"
	"github.com/akashmaji946/jack-go/vmwriter"
)

// compileClassVarDec parses a class-level variable declaration.
//
// Syntax:
//
//	('static' | 'field') type varName (',' varName)* ';'
//
// Behavior:
//   - Every declared name enters the class scope with the kind derived
//     from the leading keyword and the next free index of that kind.
//   - No code is emitted; class variables exist only in the symbol table
//     until expressions reference them.
func (eng *Engine) compileClassVarDec() error {
	kind := symbols.StaticKind
	if eng.CurrToken.Type == lexer.FIELD_KEY {
		kind = symbols.FieldKind
	}
	eng.advance()

	typeName, err := eng.compileType()
	if err != nil {
		return err
	}

	for {
		name, err := eng.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := eng.Table.Define(name, typeName, kind); err != nil {
			return eng.errorf("%s", err.Error())
		}

		if eng.CurrToken.Type != lexer.COMMA_DELIM {
			break
		}
		eng.advance()
	}

	return eng.expect(lexer.SEMICOLON_DELIM)
}

// compileType parses a type name: one of the primitive type keywords or a
// class name, and returns its text.
//
// Syntax:
//
//	'int' | 'char' | 'boolean' | className
func (eng *Engine) compileType() (string, error) {
	switch eng.CurrToken.Type {
	case lexer.INT_KEY, lexer.CHAR_KEY, lexer.BOOLEAN_KEY, lexer.IDENTIFIER_ID:
		typeName := eng.CurrToken.Literal
		eng.advance()
		return typeName, nil
	case lexer.INVALID_TYPE:
		return "", eng.invalidTokenError()
	default:
		return "", eng.errorf("expected type name, got %q", eng.CurrToken.Literal)
	}
}

// compileSubroutine parses one subroutine declaration and emits its VM code.
//
// Syntax:
//
//	('constructor' | 'function' | 'method') ('void' | type) subroutineName
//	'(' parameterList ')' '{' varDec* statements '}'
//
// Behavior:
//   - The subroutine scope is reset first; methods then define the implicit
//     'this' argument at index 0 so user parameters start at index 1.
//   - The "function Class.name nLocals" header is emitted only after all
//     local declarations are parsed, since nLocals must count them all.
//   - Constructors prologue with Memory.alloc over the class's field count
//     and anchor 'this'; methods anchor 'this' from argument 0; functions
//     have no prologue.
//   - The body must reach a return statement on every path; the engine
//     does not synthesize one.
func (eng *Engine) compileSubroutine() error {
	subroutineKind := eng.CurrToken.Type
	eng.advance()

	// Return type: void or a type name; only calling conventions matter,
	// so the text is not recorded.
	if eng.CurrToken.Type == lexer.VOID_KEY {
		eng.advance()
	} else {
		if _, err := eng.compileType(); err != nil {
			return err
		}
	}

	name, err := eng.expectIdentifier()
	if err != nil {
		return err
	}

	eng.Table.StartSubroutine()
	if subroutineKind == lexer.METHOD_KEY {
		// The caller passes the receiver as the first argument
		if _, err := eng.Table.Define("this", eng.ClassName, symbols.ArgKind); err != nil {
			return eng.errorf("%s", err.Error())
		}
	}

	if err := eng.expect(lexer.LEFT_PAREN); err != nil {
		return err
	}
	if err := eng.compileParameterList(); err != nil {
		return err
	}
	if err := eng.expect(lexer.RIGHT_PAREN); err != nil {
		return err
	}

	if err := eng.expect(lexer.LEFT_BRACE); err != nil {
		return err
	}
	for eng.CurrToken.Type == lexer.VAR_KEY {
		if err := eng.compileVarDec(); err != nil {
			return err
		}
	}

	eng.dumpScopes(name)

	eng.VM.WriteFunction(eng.ClassName+"."+name, eng.Table.Count(symbols.VarKind))

	switch subroutineKind {
	case lexer.CONSTRUCTOR_KEY:
		// Allocate the object and anchor 'this' at its base
		eng.VM.WritePush(vmwriter.ConstSegment, eng.Table.Count(symbols.FieldKind))
		eng.VM.WriteCall("Memory.alloc", 1)
		eng.VM.WritePop(vmwriter.PointerSegment, 0)
	case lexer.METHOD_KEY:
		// Anchor 'this' at the caller-supplied receiver
		eng.VM.WritePush(vmwriter.ArgumentSegment, 0)
		eng.VM.WritePop(vmwriter.PointerSegment, 0)
	}

	if err := eng.compileStatements(); err != nil {
		return err
	}
	return eng.expect(lexer.RIGHT_BRACE)
}

// compileParameterList parses zero or more comma-separated parameters and
// defines each as an argument in the subroutine scope.
//
// Syntax:
//
//	((type varName) (',' type varName)*)?
func (eng *Engine) compileParameterList() error {
	if eng.CurrToken.Type == lexer.RIGHT_PAREN {
		return nil
	}

	for {
		typeName, err := eng.compileType()
		if err != nil {
			return err
		}
		name, err := eng.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := eng.Table.Define(name, typeName, symbols.ArgKind); err != nil {
			return eng.errorf("%s", err.Error())
		}

		if eng.CurrToken.Type != lexer.COMMA_DELIM {
			return nil
		}
		eng.advance()
	}
}

// compileVarDec parses one local variable declaration and defines every
// name as a local in the subroutine scope.
//
// Syntax:
//
//	'var' type varName (',' varName)* ';'
func (eng *Engine) compileVarDec() error {
	eng.advance() // consume 'var'

	typeName, err := eng.compileType()
	if err != nil {
		return err
	}

	for {
		name, err := eng.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := eng.Table.Define(name, typeName, symbols.VarKind); err != nil {
			return eng.errorf("%s", err.Error())
		}

		if eng.CurrToken.Type != lexer.COMMA_DELIM {
			break
		}
		eng.advance()
	}

	return eng.expect(lexer.SEMICOLON_DELIM)
}

// dumpScopes renders the symbol tables to the Verbose sink, if one is set.
// The class scope renders once, before the first subroutine's tables.
func (eng *Engine) dumpScopes(subroutineName string) {
	if eng.Verbose == nil {
		return
	}
	if !eng.classScopeDumped {
		eng.classScopeDumped = true
		io.WriteString(eng.Verbose, "class "+eng.ClassName+"\n")
		eng.Table.DumpClassScope(eng.Verbose)
	}
	io.WriteString(eng.Verbose, "subroutine "+eng.ClassName+"."+subroutineName+"\n")
	eng.Table.DumpSubroutineScope(eng.Verbose)
}
