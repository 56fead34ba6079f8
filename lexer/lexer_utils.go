/*
File    : jack-go/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"unicode"
)

// MaxIntConstant is the largest integer literal Jack accepts.
// The Hack platform works with 16-bit words, so a bare constant must fit
// in the non-negative half of that range; negative values are expressed
// with the unary minus operator.
const MaxIntConstant = 32767

// isWhitespace checks if the given byte is a whitespace character.
// Uses Unicode's definition of whitespace, which includes:
//   - Space, tab, newline, carriage return, form feed, vertical tab
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is whitespace, false otherwise
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is an alphanumeric character.
// This includes both letters (a-z, A-Z) and digits (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter or digit, false otherwise
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}

// isNumeric checks if the given byte is a numeric digit (0-9).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a digit, false otherwise
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z).
//
// Parameters:
//   - curr: The byte to check
//
// Returns:
//   - bool: true if curr is a letter, false otherwise
func isAlpha(curr byte) bool {
	return ('a' <= curr && curr <= 'z') || ('A' <= curr && curr <= 'Z')
}

// readNumber scans an integer literal starting at the current position.
// Jack integers are plain decimal digit runs; there are no signs, floats,
// or hex forms. The scanned value must fit in [0, MaxIntConstant] -- a
// larger constant cannot be represented in a 16-bit Hack word and yields
// an INVALID_TYPE token.
//
// Parameters:
//   - lex: The lexer positioned at the first digit
//
// Returns:
//   - Token: An INT_LIT token, or INVALID_TYPE if the constant is out of range
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	value, err := strconv.Atoi(literal)
	if err != nil || value > MaxIntConstant {
		return newInvalidToken(literal,
			"integer constant "+literal+" out of range (max 32767)", line, column)
	}

	return NewTokenWithMetadata(INT_LIT, literal, line, column)
}

// readStringLiteral scans a string constant starting at the opening quote.
// Jack strings run to the next double quote and may not contain a newline
// or an embedded quote; there are no escape sequences. The returned token's
// Literal holds the characters between the quotes.
//
// Parameters:
//   - lex: The lexer positioned at the opening '"'
//
// Returns:
//   - Token: A STRING_LIT token, or INVALID_TYPE if the string is
//     unterminated before a newline or end of file
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column

	// Skip the opening quote
	lex.Advance()
	start := lex.Position

	for lex.Current != '"' {
		if lex.Current == 0 || lex.Current == '\n' {
			return newInvalidToken(lex.Src[start:lex.Position],
				"unterminated string constant", line, column)
		}
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	// Skip the closing quote
	lex.Advance()

	return NewTokenWithMetadata(STRING_LIT, literal, line, column)
}

// readIdentifier scans an identifier or keyword starting at the current
// position. Identifiers match [A-Za-z_][A-Za-z0-9_]*; if the scanned word
// is one of the 21 reserved words the corresponding keyword token type is
// produced instead of IDENTIFIER_ID.
//
// Parameters:
//   - lex: The lexer positioned at the first letter or underscore
//
// Returns:
//   - Token: A keyword token or an IDENTIFIER_ID token
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
