/*
File    : jack-go/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional jackc.yaml project file.
//
// The file lets a Jack project fix its compilation options next to the
// sources instead of repeating command-line flags:
//
//	output_dir: build
//	emit_tokens: true
//	verbose: false
//
// Every field is optional; command-line flags override file values, which
// override the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit config path is given.
const DefaultFileName = "jackc.yaml"

// Config holds the compiler options a project can persist.
//
// Fields:
//   - OutputDir: Directory receiving the .vm (and T.xml) files.
//     Empty means next to each input file.
//   - EmitTokens: Also write the <name>T.xml token dump for every input
//   - Verbose: Print symbol tables while compiling
type Config struct {
	OutputDir  string `yaml:"output_dir"`  // Destination directory for outputs
	EmitTokens bool   `yaml:"emit_tokens"` // Write token XML alongside VM code
	Verbose    bool   `yaml:"verbose"`     // Dump symbol tables during compilation
}

// Default returns the configuration used when no file is present:
// outputs next to the inputs, no token dumps, quiet.
func Default() Config {
	return Config{}
}

// Load reads and parses the config file at path.
//
// Parameters:
//   - path: Location of a yaml config file
//
// Returns:
//   - Config: The parsed configuration
//   - error: Non-nil if the file cannot be read or is not valid yaml
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// LoadIfPresent looks for jackc.yaml in the given directory and loads it
// when found. A missing file is not an error; it just yields the defaults.
//
// Parameters:
//   - dir: Directory to probe for DefaultFileName
//
// Returns:
//   - Config: The parsed or default configuration
//   - error: Non-nil only if a present file fails to load
func LoadIfPresent(dir string) (Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}
