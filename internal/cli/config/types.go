// Package config provides configuration management for the itemdb CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	DatabasePath string `koanf:"database"`
	InputPath    string `koanf:"input"`
	InputFormat  string `koanf:"input_format"`
	PreviewLines int    `koanf:"preview_lines"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDatabase     = "items.db"
	DefaultInput        = "items_to_insert"
	DefaultInputFormat  = "tuple"
	DefaultPreviewLines = 11
	DefaultOutput       = "auto" // Auto-detect: TTY=table, non-TTY=markdown
)

// configFileNames are looked up in the working directory, in order.
var configFileNames = []string{"itemdb.yaml", "itemdb.yml"}
