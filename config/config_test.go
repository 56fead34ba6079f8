/*
File    : jack-go/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLoad tests parsing of a full config file
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	content := "output_dir: build\nemit_tokens: true\nverbose: true\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.True(t, cfg.EmitTokens)
	assert.True(t, cfg.Verbose)
}

// TestLoad_Partial tests that omitted fields keep their defaults
func TestLoad_Partial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	assert.NoError(t, os.WriteFile(path, []byte("emit_tokens: true\n"), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "", cfg.OutputDir)
	assert.True(t, cfg.EmitTokens)
	assert.False(t, cfg.Verbose)
}

// TestLoad_Malformed tests the error path for broken yaml
func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	assert.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse config file")
}

// TestLoadIfPresent tests the missing-file and present-file paths
func TestLoadIfPresent(t *testing.T) {
	dir := t.TempDir()

	// No file: defaults, no error
	cfg, err := LoadIfPresent(dir)
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// File present: parsed
	path := filepath.Join(dir, DefaultFileName)
	assert.NoError(t, os.WriteFile(path, []byte("output_dir: out\n"), 0644))
	cfg, err = LoadIfPresent(dir)
	assert.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
}
