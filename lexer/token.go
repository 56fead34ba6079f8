/*
File    : jack-go/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Jack language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element of Jack:
// a keyword, a symbol, a literal, or an identifier.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Jack language.
// Jack has exactly 21 reserved keywords, 19 single-character symbols,
// integer constants, string constants, and identifiers. There are no
// multi-character operators.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Operators
	// Jack operators are all single characters; operator precedence does
	// not exist in the language, so the lexer makes no distinction
	// between them beyond their identity.
	PLUS_OP    TokenType = "+" // Addition operator
	MINUS_OP   TokenType = "-" // Subtraction operator (also unary negation)
	MUL_OP     TokenType = "*" // Multiplication operator
	DIV_OP     TokenType = "/" // Division operator
	BIT_AND_OP TokenType = "&" // Bitwise AND
	BIT_OR_OP  TokenType = "|" // Bitwise OR
	LT_OP      TokenType = "<" // Less than
	GT_OP      TokenType = ">" // Greater than
	ASSIGN_OP  TokenType = "=" // Assignment / equality comparison
	BIT_NOT_OP TokenType = "~" // Bitwise NOT (unary)

	// Keywords
	// Language keywords for declarations and control flow
	CLASS_KEY       TokenType = "class"       // Class declaration keyword
	CONSTRUCTOR_KEY TokenType = "constructor" // Constructor subroutine keyword
	FUNCTION_KEY    TokenType = "function"    // Static function subroutine keyword
	METHOD_KEY      TokenType = "method"      // Method subroutine keyword
	FIELD_KEY       TokenType = "field"       // Instance variable declaration
	STATIC_KEY      TokenType = "static"      // Class variable declaration
	VAR_KEY         TokenType = "var"         // Local variable declaration
	INT_KEY         TokenType = "int"         // Integer primitive type
	CHAR_KEY        TokenType = "char"        // Character primitive type
	BOOLEAN_KEY     TokenType = "boolean"     // Boolean primitive type
	VOID_KEY        TokenType = "void"        // Void return type
	TRUE_KEY        TokenType = "true"        // Boolean true literal
	FALSE_KEY       TokenType = "false"       // Boolean false literal
	NULL_KEY        TokenType = "null"        // Null literal
	THIS_KEY        TokenType = "this"        // Current object reference
	LET_KEY         TokenType = "let"         // Assignment statement keyword
	DO_KEY          TokenType = "do"          // Call statement keyword
	IF_KEY          TokenType = "if"          // Conditional if keyword
	ELSE_KEY        TokenType = "else"        // Conditional else keyword
	WHILE_KEY       TokenType = "while"       // While loop keyword
	RETURN_KEY      TokenType = "return"      // Return statement keyword

	// Identifiers
	IDENTIFIER_ID TokenType = "Identifier" // User-defined identifier (class/subroutine/variable name)

	// Literals
	INT_LIT    TokenType = "IntLiteral"    // Integer constant in [0, 32767]
	STRING_LIT TokenType = "StringLiteral" // String constant (no embedded quote or newline)

	// Structural Tokens
	// Brackets and braces for grouping and scoping
	LEFT_PAREN    TokenType = "(" // Left parenthesis - parameter lists, grouping
	RIGHT_PAREN   TokenType = ")" // Right parenthesis
	LEFT_BRACE    TokenType = "{" // Left brace - class and statement blocks
	RIGHT_BRACE   TokenType = "}" // Right brace
	LEFT_BRACKET  TokenType = "[" // Left bracket - array indexing
	RIGHT_BRACKET TokenType = "]" // Right bracket

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - separates parameters, declarations, arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator

	// Object member access operator
	DOT_OP TokenType = "." // Dot operator - qualifies subroutine calls
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined names).
//
// The map contains the full closed set of 21 Jack reserved words.
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"class":       CLASS_KEY,       // Class declaration
	"constructor": CONSTRUCTOR_KEY, // Constructor subroutine
	"function":    FUNCTION_KEY,    // Static function subroutine
	"method":      METHOD_KEY,      // Method subroutine
	"field":       FIELD_KEY,       // Instance variable
	"static":      STATIC_KEY,      // Class variable
	"var":         VAR_KEY,         // Local variable
	"int":         INT_KEY,         // Integer type
	"char":        CHAR_KEY,        // Character type
	"boolean":     BOOLEAN_KEY,     // Boolean type
	"void":        VOID_KEY,        // Void return type
	"true":        TRUE_KEY,        // Boolean true
	"false":       FALSE_KEY,       // Boolean false
	"null":        NULL_KEY,        // Null literal
	"this":        THIS_KEY,        // Current object
	"let":         LET_KEY,         // Assignment statement
	"do":          DO_KEY,          // Call statement
	"if":          IF_KEY,          // Conditional if
	"else":        ELSE_KEY,        // Conditional else
	"while":       WHILE_KEY,       // While loop
	"return":      RETURN_KEY,      // Return statement
}

// Token represents a single lexical token in Jack source code.
// It contains the token's type, its literal string representation from the
// source, and metadata about its position in the source file.
//
// Fields:
//   - Type: The category of the token (e.g., keyword, symbol, literal)
//   - Literal: The actual string from the source code that this token
//     represents. For string constants the surrounding quotes are stripped.
//   - Line: The line number where this token appears in the source (1-indexed)
//   - Column: The column number where this token starts in the source (1-indexed)
//   - Message: Diagnostic detail, set only on INVALID_TYPE tokens
//     (e.g., "unterminated string constant")
//
// Example:
//
//	For the source code "let x = 123;" at line 5, column 10:
//	Token{Type: LET_KEY, Literal: "let", Line: 5, Column: 10}
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source file (1-indexed)
	Column  int       // Column number in source file (1-indexed)
	Message string    // Diagnostic detail for INVALID_TYPE tokens
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
//
// Parameters:
//   - tokenType: The type of token to create
//   - literal: The string representation of the token from source code
//
// Returns:
//   - Token: A new token with the specified type and literal, but no position info
//
// Example:
//
//	token := NewToken(PLUS_OP, "+")
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including position.
// This constructor should be used during lexical analysis to preserve source
// location information, which is essential for error reporting.
//
// Parameters:
//   - tokenType: The type of token to create
//   - literal: The string representation of the token from source code
//   - line: The line number where the token appears (1-indexed)
//   - column: The column number where the token starts (1-indexed)
//
// Returns:
//   - Token: A new token with complete type, literal, and position information
//
// Example:
//
//	token := NewTokenWithMetadata(INT_LIT, "42", 10, 5)
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// newInvalidToken creates an INVALID_TYPE token carrying a diagnostic message.
// The compilation engine turns these into fatal errors; the message describes
// the lexical problem (stray character, malformed literal, unterminated
// string or comment).
func newInvalidToken(literal string, message string, line int, column int) Token {
	return Token{
		Type:    INVALID_TYPE,
		Literal: literal,
		Line:    line,
		Column:  column,
		Message: message,
	}
}

// Print outputs a human-readable representation of the token to standard output.
// The format is "literal:type", which shows both the actual text and its
// classification. This is primarily used for debugging and development purposes.
//
// Example output:
//
//	For Token{Type: PLUS_OP, Literal: "+"}:
//	Output: "+:+"
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in
// KEYWORDS_MAP. If found, it returns the corresponding keyword token type;
// otherwise, it returns IDENTIFIER_ID to indicate a user-defined identifier.
//
// Parameters:
//   - ident: The identifier string to look up
//
// Returns:
//   - TokenType: The keyword token type if ident is a keyword, otherwise IDENTIFIER_ID
//
// Example:
//
//	lookupIdent("while") -> WHILE_KEY
//	lookupIdent("myVar") -> IDENTIFIER_ID
func lookupIdent(ident string) TokenType {
	// Check if the identifier is a keyword
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	// Not a keyword, so it's a user-defined identifier
	return IDENTIFIER_ID
}
