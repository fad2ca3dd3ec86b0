package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("database is required"))
	}
	if c.PreviewLines <= 0 {
		errs = append(errs, fmt.Errorf("preview_lines must be positive, got %d", c.PreviewLines))
	}
	if _, err := itemfile.ParseFormat(c.InputFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
