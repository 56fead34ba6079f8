/*
File    : jack-go/xmlout/xmlout.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package xmlout renders a Jack token stream as the standard tokenizer-stage
// XML document: a <tokens> element containing one element per token, tagged
// by token class. This output format is the conventional artifact for
// verifying the tokenizer independently of the compilation engine.
package xmlout

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/jack-go/lexer"
)

// WriteTokens writes the token sequence as a <tokens> XML document.
// Each token becomes one line of the form "<keyword> class </keyword>";
// the markup characters <, > and & appearing in symbols or string
// constants are escaped.
//
// Parameters:
//   - w: Destination for the XML text
//   - tokens: The token sequence, as produced by lexer.ConsumeTokens
//
// Returns:
//   - error: Non-nil if the stream contains an INVALID_TYPE token or a
//     write fails
func WriteTokens(w io.Writer, tokens []lexer.Token) error {
	if _, err := io.WriteString(w, "<tokens>\n"); err != nil {
		return err
	}

	for _, token := range tokens {
		if token.Type == lexer.INVALID_TYPE {
			message := token.Message
			if message == "" {
				message = fmt.Sprintf("invalid token %q", token.Literal)
			}
			return fmt.Errorf("line %d:%d: %s", token.Line, token.Column, message)
		}
		tag := tagName(token)
		if _, err := fmt.Fprintf(w, "<%s> %s </%s>\n", tag, escape(token.Literal), tag); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</tokens>\n")
	return err
}

// tagName returns the XML element name for a token's class.
func tagName(token lexer.Token) string {
	switch token.Type {
	case lexer.IDENTIFIER_ID:
		return "identifier"
	case lexer.INT_LIT:
		return "integerConstant"
	case lexer.STRING_LIT:
		return "stringConstant"
	}
	// Keyword token types are spelled as the keyword itself
	if _, isKeyword := lexer.KEYWORDS_MAP[string(token.Type)]; isKeyword {
		return "keyword"
	}
	return "symbol"
}

// escape substitutes the XML markup characters in token text.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(text string) string {
	return escaper.Replace(text)
}
