/*
File    : jack-go/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive loop of the Jack compiler.
The REPL provides an environment where users can:
- Paste or type a Jack class and see the generated VM code immediately
- Inspect the token stream of any Jack fragment
- Navigate input history using arrow keys
- Receive colored feedback for different types of output

Input lines accumulate until the braces balance; a balanced buffer that
starts with the 'class' keyword is compiled and its VM code printed, while
any other balanced input is tokenized and the tokens printed. This makes
the REPL useful both for trying out code generation and for debugging the
lexer on small fragments.

The REPL uses the readline library for enhanced line editing capabilities.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/jack-go/compiler"
	"github.com/akashmaji946/jack-go/lexer"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Emitted VM code and token listings
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive compiler session.
// It encapsulates all the configuration needed to run the loop.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the compiler
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "jack >>> ")
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the compiler
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the ASCII art banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print welcome message and usage instructions in cyan
	cyanColor.Fprintf(writer, "%s\n", "Welcome to the Jack compiler!")
	cyanColor.Fprintf(writer, "%s\n", "Paste a class to see its VM code, or a fragment to see its tokens")
	cyanColor.Fprintf(writer, "%s\n", "Input is compiled once the braces balance")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.clear' to drop the pending buffer")

	// Print bottom separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Parameters:
//
//	reader - Input source (typically os.Stdin, though not directly used due to readline)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Lines accumulate here until the braces balance
	var buffer []string

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \n\t\r")

		// Skip empty lines outside of a pending buffer
		if trimmed == "" && len(buffer) == 0 {
			continue
		}

		// Check for commands
		if trimmed == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if trimmed == ".clear" {
			buffer = nil
			cyanColor.Fprintln(writer, "buffer cleared")
			continue
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		buffer = append(buffer, line)
		source := strings.Join(buffer, "\n")

		// Keep reading until the braces balance
		if braceDepth(source) > 0 {
			continue
		}
		buffer = nil

		r.process(writer, source)
	}
}

// process compiles or tokenizes one balanced input buffer.
// A buffer opening with the 'class' keyword goes through the full engine;
// anything else is shown as its token stream.
func (r *Repl) process(writer io.Writer, source string) {
	first := lexer.NewLexer(source)
	if first.NextToken().Type == lexer.CLASS_KEY {
		var vm strings.Builder
		eng := compiler.NewEngine(source, &vm)
		if err := eng.Compile(); err != nil {
			redColor.Fprintf(writer, "[COMPILE ERROR] %s\n", err)
			return
		}
		yellowColor.Fprint(writer, vm.String())
		return
	}

	lex := lexer.NewLexer(source)
	for _, token := range lex.ConsumeTokens() {
		if token.Type == lexer.INVALID_TYPE {
			redColor.Fprintf(writer, "[LEX ERROR] line %d:%d: %s\n", token.Line, token.Column, token.Message)
			return
		}
		yellowColor.Fprintf(writer, "%s:%v\n", token.Literal, token.Type)
	}
}

// braceDepth counts unbalanced '{' in source, ignoring braces inside
// string constants and comments by running the real lexer.
func braceDepth(source string) int {
	lex := lexer.NewLexer(source)
	depth := 0
	for _, token := range lex.ConsumeTokens() {
		switch token.Type {
		case lexer.LEFT_BRACE:
			depth++
		case lexer.RIGHT_BRACE:
			depth--
		}
	}
	return depth
}
