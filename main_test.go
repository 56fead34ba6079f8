/*
File    : jack-go/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/jack-go/config"
)

// TestDerivePath tests output path derivation
func TestDerivePath(t *testing.T) {
	assert.Equal(t, "proj/Main.vm", derivePath("proj/Main.jack", "", ".vm"))
	assert.Equal(t, "Main.vm", derivePath("Main.jack", "", ".vm"))
	assert.Equal(t, filepath.Join("build", "Main.vm"), derivePath("proj/Main.jack", "build", ".vm"))
	assert.Equal(t, "proj/MainT.xml", derivePath("proj/Main.jack", "", "T.xml"))
}

// TestCollectFiles tests file and directory argument expansion
func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "A.jack")
	b := filepath.Join(dir, "B.jack")
	other := filepath.Join(dir, "README.md")
	for _, path := range []string{a, b, other} {
		assert.NoError(t, os.WriteFile(path, []byte("class X {}"), 0644))
	}

	// A directory contributes only its .jack files
	files, err := collectFiles([]string{dir})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)

	// A plain file is taken as given
	files, err = collectFiles([]string{a})
	assert.NoError(t, err)
	assert.Equal(t, []string{a}, files)

	// Missing paths and empty directories are errors
	_, err = collectFiles([]string{filepath.Join(dir, "missing.jack")})
	assert.Error(t, err)
	empty := t.TempDir()
	_, err = collectFiles([]string{empty})
	assert.Error(t, err)
}

// TestCompileFile tests end-to-end compilation of a file on disk
func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "A.jack")
	source := `class A { function int f() { return 1+2; } }`
	assert.NoError(t, os.WriteFile(input, []byte(source), 0644))

	outputPath, err := compileFile(input, config.Default())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "A.vm"), outputPath)

	vm, err := os.ReadFile(outputPath)
	assert.NoError(t, err)
	expected := "function A.f 0\n" +
		"push constant 1\n" +
		"push constant 2\n" +
		"add\n" +
		"return\n"
	assert.Equal(t, expected, string(vm))
}

// TestCompileFile_EmitTokens tests the token dump side output
func TestCompileFile_EmitTokens(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "A.jack")
	assert.NoError(t, os.WriteFile(input, []byte("class A {}"), 0644))

	cfg := config.Config{EmitTokens: true}
	_, err := compileFile(input, cfg)
	assert.NoError(t, err)

	xml, err := os.ReadFile(filepath.Join(dir, "AT.xml"))
	assert.NoError(t, err)
	assert.Contains(t, string(xml), "<tokens>")
	assert.Contains(t, string(xml), "<keyword> class </keyword>")
}

// TestCompileFile_Error tests that a broken class reports and leaves no
// trustworthy output
func TestCompileFile_Error(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Bad.jack")
	assert.NoError(t, os.WriteFile(input, []byte("class Bad { function }"), 0644))

	_, err := compileFile(input, config.Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line ")
}
