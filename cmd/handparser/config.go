package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds defaults for the CLI, loadable from an HCL file so bulk
// jobs don't need to repeat the same flags. Flags always win over file
// values.
type Config struct {
	Room        string `hcl:"room,optional"`
	Format      string `hcl:"format,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	Debug       bool   `hcl:"debug,optional"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:      "toml",
		Concurrency: 4,
	}
}

// LoadConfig loads CLI defaults from an HCL file. A missing file is not
// an error; it simply means built-in defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Format == "" {
		config.Format = "toml"
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 4
	}
	return &config, nil
}
