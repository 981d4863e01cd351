// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"displaylint/internal/react"
	"displaylint/internal/rules/displayname"
)

type Config struct {
	LintPaths []string `toml:"lint_paths"`
	Exclude   Exclude  `toml:"exclude"`
	Watch     Watch    `toml:"watch"`
	Output    Output   `toml:"output"`
	History   History  `toml:"history"`
	Metrics   Metrics  `toml:"metrics"`
	React     React    `toml:"react"`
	Rules     Rules    `toml:"rules"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`  // Glob patterns, e.g. node_modules, dist
	Files []string `toml:"files"` // Glob patterns, e.g. *.min.js
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type Output struct {
	SARIF string `toml:"sarif"`
}

type History struct {
	Path string `toml:"path"`
}

type Metrics struct {
	Addr string `toml:"addr"`

	// OTLPEndpoint enables trace export when set, e.g. localhost:4317.
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

type React struct {
	Pragma      string `toml:"pragma"`
	CreateClass string `toml:"create_class"`
	Version     string `toml:"version"`
}

type Rules struct {
	DisplayName DisplayName `toml:"display-name"`
}

// DisplayName holds the display-name rule options. The keys match the
// upstream option names ignoreTranspilerName, checkContextObjects and
// componentWrapperFunctions in snake_case.
type DisplayName struct {
	IgnoreTranspilerName      bool     `toml:"ignore_transpiler_name"`
	CheckContextObjects       bool     `toml:"check_context_objects"`
	ComponentWrapperFunctions []string `toml:"component_wrapper_functions"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}

	if len(c.LintPaths) == 0 {
		c.LintPaths = []string{"."}
	}

	if len(c.Exclude.Dirs) == 0 {
		c.Exclude.Dirs = []string{"node_modules", ".git", "dist", "build"}
	}
}

// ReactSettings converts the decoded section into the shared rule settings.
func (c *Config) ReactSettings() react.Settings {
	return react.Settings{
		Pragma:      c.React.Pragma,
		CreateClass: c.React.CreateClass,
		Version:     react.ParseVersion(c.React.Version),
	}.Normalize()
}

// DisplayNameOptions converts the decoded rule section.
func (c *Config) DisplayNameOptions() displayname.Options {
	return displayname.Options{
		IgnoreTranspilerName:      c.Rules.DisplayName.IgnoreTranspilerName,
		CheckContextObjects:       c.Rules.DisplayName.CheckContextObjects,
		ComponentWrapperFunctions: c.Rules.DisplayName.ComponentWrapperFunctions,
	}
}
