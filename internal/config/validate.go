package config

import (
	"errors"
	"fmt"
)

// Encodings accepted by the loader.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return errors.New("input.path is required")
	}
	if len(c.Input.Strip) != 1 {
		return fmt.Errorf("input.strip must be a single byte, got %q", c.Input.Strip)
	}

	switch c.Input.Encoding {
	case EncodingUTF8, EncodingWindows1252:
	default:
		return fmt.Errorf("input.encoding must be %q or %q, got %q",
			EncodingUTF8, EncodingWindows1252, c.Input.Encoding)
	}

	if err := c.Input.Columns.validate("input.columns"); err != nil {
		return err
	}

	return nil
}

func (cols ColumnsConfig) validate(prefix string) error {
	if cols.Title < 0 {
		return fmt.Errorf("%s.title must be >= 0, got %d", prefix, cols.Title)
	}
	if cols.ID < 0 {
		return fmt.Errorf("%s.id must be >= 0, got %d", prefix, cols.ID)
	}
	if cols.Amount < 0 {
		return fmt.Errorf("%s.amount must be >= 0, got %d", prefix, cols.Amount)
	}
	if cols.Fund < 0 {
		return fmt.Errorf("%s.fund must be >= 0, got %d", prefix, cols.Fund)
	}
	return nil
}
