package config

// Config is the root configuration for the bidsort tool.
type Config struct {
	Input InputConfig `yaml:"input"`
}

// InputConfig describes the bid source file and how to read it.
type InputConfig struct {
	Path     string        `yaml:"path"`     // CSV file path
	Strip    string        `yaml:"strip"`    // Currency symbol stripped from amounts (single byte)
	Encoding string        `yaml:"encoding"` // "utf-8" or "windows-1252"
	Columns  ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig maps record fields to zero-based column indexes.
// The defaults match the eBid monthly sales export schema.
type ColumnsConfig struct {
	Title  int `yaml:"title"`
	ID     int `yaml:"id"`
	Amount int `yaml:"amount"`
	Fund   int `yaml:"fund"`
}

// StripByte returns the configured currency symbol as a single byte.
// Validate guarantees the field holds exactly one byte.
func (c InputConfig) StripByte() byte {
	return c.Strip[0]
}
