package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/semlint/caseful/internal/caserules"
	"github.com/semlint/caseful/internal/gobind"
)

// Severity tells how a rule's findings are treated.
type Severity int

const (
	severityInvalid Severity = iota

	// SeverityOff disables the rule entirely.
	SeverityOff

	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityOff:     "off",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

func (s Severity) MarshalText() ([]byte, error) {
	v, ok := severityValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Severity(%d)", s)
	}

	return []byte(v), nil
}

// Config is the analyzer configuration.
type Config struct {
	// ForbiddenTerms lists terms that must not appear in switch
	// discriminant identifiers.
	ForbiddenTerms []string `yaml:"forbidden_terms"`

	// IgnoreEnumTypes lists enumeration types excluded from coverage
	// checking, in the `"pkg/path".Type` form.
	IgnoreEnumTypes []gobind.Reference `yaml:"ignore_enum_types"`

	// Severities overrides per-rule severity, keyed by the bare rule code
	// ("CSF000").
	Severities map[string]Severity `yaml:"severities"`
}

// DefaultConfig returns the configuration used when no file is given:
// every rule on, warning severity, nothing ignored.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads the YAML configuration at path. An empty path yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	for code := range cfg.Severities {
		if !knownRuleCode(code) {
			return nil, fmt.Errorf("parse config file %s: unknown rule code %q", path, code)
		}
	}

	return &cfg, nil
}

// SeverityFor returns the effective severity of a rule, SeverityWarning
// unless overridden.
func (c *Config) SeverityFor(r caserules.Rule) Severity {
	if s, ok := c.Severities[ruleCode(r)]; ok {
		return s
	}

	return SeverityWarning
}

func knownRuleCode(code string) bool {
	for _, r := range []caserules.Rule{
		caserules.CSF000MissingCases,
		caserules.CSF010SuppressedSwitch,
		caserules.CSF100ForbiddenTerm,
	} {
		if strings.EqualFold(code, ruleCode(r)) {
			return true
		}
	}

	return false
}
