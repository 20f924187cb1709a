package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the deserialized test configuration: a mapping of suite name to
// suite definition.
type Config struct {
	TestSuites map[string]SuiteConfig `json:"test_suites" yaml:"test_suites"`
}

// SuiteConfig defines one suite. Name defaults to the suite's key in the
// configuration mapping, Priority to "medium".
type SuiteConfig struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    string       `json:"priority,omitempty" yaml:"priority,omitempty"`
	Tests       []TestConfig `json:"tests" yaml:"tests"`
}

// TestConfig defines one test entry. Path is required and is relative to the
// corpus root; Expected defaults to "pass".
type TestConfig struct {
	Path     string `json:"path" yaml:"path"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ConfigError indicates that the test configuration file exists but could not
// be read or parsed. It is the only run-aborting failure in the harness: no
// suite definitions can be trusted after it.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot load test configuration %s: %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfig reads a suite configuration file. YAML and JSON are both
// accepted, dispatched on the file extension. A missing file yields an empty
// configuration rather than an error, since a partial checkout without test
// definitions is a valid (if uninteresting) state.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{TestSuites: map[string]SuiteConfig{}}, nil
		}
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	if cfg.TestSuites == nil {
		cfg.TestSuites = map[string]SuiteConfig{}
	}
	return cfg, nil
}

// BuildSuites materializes TestSuite values for the named suites, in sorted
// name order so that a given configuration always loads deterministically.
// Names absent from the configuration are skipped without error.
func BuildSuites(cfg Config, names []string) []*TestSuite {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var suites []*TestSuite
	for _, name := range sorted {
		sc, ok := cfg.TestSuites[name]
		if !ok {
			continue
		}
		suite := &TestSuite{
			Name:        sc.Name,
			Description: sc.Description,
			Priority:    sc.Priority,
		}
		if suite.Name == "" {
			suite.Name = name
		}
		if suite.Priority == "" {
			suite.Priority = "medium"
		}
		for _, tc := range sc.Tests {
			expected := Expectation(tc.Expected)
			if expected == "" {
				expected = ExpectPass
			}
			base := filepath.Base(tc.Path)
			suite.Tests = append(suite.Tests, &TestCase{
				Name:     strings.TrimSuffix(base, filepath.Ext(base)),
				Path:     tc.Path,
				Expected: expected,
				Notes:    tc.Notes,
			})
		}
		suites = append(suites, suite)
	}
	return suites
}
