/*
File    : jack-go/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Jack compiler.
It provides four commands:
1. compile: Translate .jack files (or directories of them) to .vm files
2. tokens:  Dump the token stream of .jack files as <name>T.xml documents
3. repl:    Interactive mode for compiling pasted classes and fragments
4. version: Show version information

The compiler uses a lexer / symbol-table / VM-writer pipeline driven by a
single-pass recursive-descent engine; each class file compiles to its own
VM file independently.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/jack-go/compiler"
	"github.com/akashmaji946/jack-go/config"
	"github.com/akashmaji946/jack-go/lexer"
	"github.com/akashmaji946/jack-go/repl"
	"github.com/akashmaji946/jack-go/xmlout"
)

// VERSION represents the current version of the Jack compiler
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the compiler's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Jack >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
     ██╗ █████╗  ██████╗██╗  ██╗
     ██║██╔══██╗██╔════╝██║ ██╔╝
     ██║███████║██║     █████╔╝
██   ██║██╔══██║██║     ██╔═██╗
╚█████╔╝██║  ██║╚██████╗██║  ██╗
 ╚════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for command output
// These colors provide visual feedback during compilation:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Command-line flags for the compile and tokens commands.
// output-dir, emit-tokens and verbose each have a matching jackc.yaml field;
// for compile, an explicitly set flag wins over the file value. The tokens
// command does not read jackc.yaml and uses only its own --output-dir.
var (
	flagOutputDir  string
	flagEmitTokens bool
	flagVerbose    bool
	flagConfig     string
)

// newRootCmd assembles the cobra command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jackc",
		Short:         "A single-pass compiler from the Jack language to Hack VM bytecode",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: show usage and fail, there is nothing to do
			cmd.Help()
			return fmt.Errorf("no command given")
		},
	}

	compileCmd := &cobra.Command{
		Use:   "compile <path> [<path> ...]",
		Short: "Compile .jack files or directories of them to .vm files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCompile,
	}
	compileCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory for generated files (default: next to inputs)")
	compileCmd.Flags().BoolVarP(&flagEmitTokens, "emit-tokens", "t", false, "also write the <name>T.xml token dump")
	compileCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print symbol tables while compiling")
	compileCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a jackc.yaml config file")

	tokensCmd := &cobra.Command{
		Use:   "tokens <path> [<path> ...]",
		Short: "Write the token stream of .jack files as <name>T.xml",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTokens,
	}
	tokensCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory for generated files (default: next to inputs)")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive compiler",
		Run: func(cmd *cobra.Command, args []string) {
			repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
			repler.Start(os.Stdin, os.Stdout)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			yellowColor.Printf("jackc %s | Author: %s | License: %s\n", VERSION, AUTHOR, LICENCE)
		},
	}

	rootCmd.AddCommand(compileCmd, tokensCmd, replCmd, versionCmd)
	return rootCmd
}

// main is the entry point of the Jack compiler.
// It executes the command tree and exits non-zero on the first failure.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "[ERROR] %s\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run:
// defaults, overridden by a config file (explicit --config path or a
// jackc.yaml in the working directory), overridden by explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	var err error

	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadIfPresent(".")
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("emit-tokens") {
		cfg.EmitTokens = flagEmitTokens
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	return cfg, nil
}

// runCompile compiles every .jack file named by the arguments.
// A directory argument stands for all .jack files directly inside it.
// The first failing file aborts the run.
func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		cyanColor.Printf("Compiling %q\n", file)
		outputPath, err := compileFile(file, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		yellowColor.Printf("Saved as %q\n", outputPath)
	}
	return nil
}

// runTokens writes the token XML dump for every .jack file named by the
// arguments.
func runTokens(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		cyanColor.Printf("Tokenizing %q\n", file)
		outputPath, err := dumpTokens(file, flagOutputDir)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		yellowColor.Printf("Saved as %q\n", outputPath)
	}
	return nil
}

// collectFiles expands the argument list into .jack files.
// Plain files are taken as given; directories contribute every .jack file
// directly inside them (no recursion, matching the course toolchain).
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %q", arg)
		}

		if !stat.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %q", arg)
		}
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == ".jack" {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no .jack files to process")
	}
	return files, nil
}

// compileFile translates one Jack class file into a VM file, plus the
// token dump when configured, and returns the VM file's path.
func compileFile(path string, cfg config.Config) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input file: %w", err)
	}

	outputPath := derivePath(path, cfg.OutputDir, ".vm")
	output, err := createOutput(outputPath)
	if err != nil {
		return outputPath, err
	}
	defer output.Close()

	eng := compiler.NewEngine(string(source), output)
	if cfg.Verbose {
		eng.Verbose = os.Stdout
	}
	if err := eng.Compile(); err != nil {
		return outputPath, err
	}

	if cfg.EmitTokens {
		if _, err := dumpTokens(path, cfg.OutputDir); err != nil {
			return outputPath, err
		}
	}
	return outputPath, nil
}

// dumpTokens writes the token XML document for one Jack file and returns
// the dump's path.
func dumpTokens(path string, outputDir string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input file: %w", err)
	}

	outputPath := derivePath(path, outputDir, "T.xml")
	output, err := createOutput(outputPath)
	if err != nil {
		return outputPath, err
	}
	defer output.Close()

	lex := lexer.NewLexer(string(source))
	if err := xmlout.WriteTokens(output, lex.ConsumeTokens()); err != nil {
		return outputPath, err
	}
	return outputPath, nil
}

// derivePath builds an output path from an input path: the extension is
// replaced by suffix, and the file moves into outputDir when one is set.
func derivePath(inputPath string, outputDir string, suffix string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if outputDir != "" {
		base = filepath.Join(outputDir, filepath.Base(base))
	}
	return base + suffix
}

// createOutput opens an output file for writing, creating the parent
// directory when needed.
func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create output directory %q: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file %q for writing: %w", path, err)
	}
	return file, nil
}
