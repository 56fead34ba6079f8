/*
File    : jack-go/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` ~ | & < > = . , ; __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(BIT_NOT_OP, "~"),
				NewToken(BIT_OR_OP, "|"),
				NewToken(BIT_AND_OP, "&"),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
				NewToken(DOT_OP, "."),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: `class constructor function method field static var let do while`,
			ExpectedTokens: []Token{
				NewToken(CLASS_KEY, "class"),
				NewToken(CONSTRUCTOR_KEY, "constructor"),
				NewToken(FUNCTION_KEY, "function"),
				NewToken(METHOD_KEY, "method"),
				NewToken(FIELD_KEY, "field"),
				NewToken(STATIC_KEY, "static"),
				NewToken(VAR_KEY, "var"),
				NewToken(LET_KEY, "let"),
				NewToken(DO_KEY, "do"),
				NewToken(WHILE_KEY, "while"),
			},
		},
		{
			// Reserved words are matched exactly; near-misses are identifiers
			Input: `if else then return classy Let null this true false`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(IDENTIFIER_ID, "then"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "classy"),
				NewToken(IDENTIFIER_ID, "Let"),
				NewToken(NULL_KEY, "null"),
				NewToken(THIS_KEY, "this"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			// Comments are skipped, including block comments with stars
			Input: `
			// line comment
			let x = 1; /* inline */ let y = 2;
			/** api style
			 * spanning lines
			 */
			return x;
			`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `
			class Main {
				function void main() {
					var Array a;
					let a[2] = -32 / 4;
					do Output.printString("done");
					return;
				}
			}
			`,
			ExpectedTokens: []Token{
				NewToken(CLASS_KEY, "class"),
				NewToken(IDENTIFIER_ID, "Main"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(FUNCTION_KEY, "function"),
				NewToken(VOID_KEY, "void"),
				NewToken(IDENTIFIER_ID, "main"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "Array"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(INT_LIT, "2"),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(ASSIGN_OP, "="),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "32"),
				NewToken(DIV_OP, "/"),
				NewToken(INT_LIT, "4"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(DO_KEY, "do"),
				NewToken(IDENTIFIER_ID, "Output"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "printString"),
				NewToken(LEFT_PAREN, "("),
				NewToken(STRING_LIT, "done"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RETURN_KEY, "return"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))

		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

// TestNewLexer_IntegerRange tests the 16-bit boundary of integer constants
func TestNewLexer_IntegerRange(t *testing.T) {
	// 32767 is the largest representable constant
	lex := NewLexer(`32767`)
	token := lex.NextToken()
	assert.Equal(t, INT_LIT, token.Type)
	assert.Equal(t, "32767", token.Literal)

	// 32768 does not fit in a Hack word
	lex = NewLexer(`32768`)
	token = lex.NextToken()
	assert.Equal(t, INVALID_TYPE, token.Type)
	assert.Contains(t, token.Message, "out of range")
}

// TestNewLexer_LexicalErrors tests INVALID token production for malformed input
func TestNewLexer_LexicalErrors(t *testing.T) {
	// Stray character outside the Jack alphabet
	lex := NewLexer(`let x = 1 # 2;`)
	tokens := lex.ConsumeTokens()
	last := tokens[len(tokens)-1]
	assert.Equal(t, INVALID_TYPE, last.Type)
	assert.Contains(t, last.Message, "unexpected character")

	// Unterminated string constant (newline before closing quote)
	lex = NewLexer("let s = \"oops\nlet t = 1;")
	tokens = lex.ConsumeTokens()
	last = tokens[len(tokens)-1]
	assert.Equal(t, INVALID_TYPE, last.Type)
	assert.Contains(t, last.Message, "unterminated string")

	// Unterminated block comment
	lex = NewLexer(`let x = 1; /* no closing`)
	tokens = lex.ConsumeTokens()
	last = tokens[len(tokens)-1]
	assert.Equal(t, INVALID_TYPE, last.Type)
	assert.Contains(t, last.Message, "unterminated block comment")
}

// TestNewLexer_Positions tests line and column metadata on tokens
func TestNewLexer_Positions(t *testing.T) {
	lex := NewLexer("class A {\n  field int x;\n}\n")

	classTok := lex.NextToken()
	assert.Equal(t, CLASS_KEY, classTok.Type)
	assert.Equal(t, 1, classTok.Line)
	assert.Equal(t, 1, classTok.Column)

	nameTok := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, nameTok.Type)
	assert.Equal(t, 1, nameTok.Line)
	assert.Equal(t, 7, nameTok.Column)

	lex.NextToken() // {
	fieldTok := lex.NextToken()
	assert.Equal(t, FIELD_KEY, fieldTok.Type)
	assert.Equal(t, 2, fieldTok.Line)
	assert.Equal(t, 3, fieldTok.Column)
}
