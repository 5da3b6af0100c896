package config

// Default values for optional configuration fields.
const (
	DefaultInputPath = "eBid_Monthly_Sales.csv"
	DefaultStrip     = "$"
	DefaultEncoding  = "utf-8"

	// Column positions in the eBid monthly sales export.
	DefaultTitleColumn  = 0
	DefaultIDColumn     = 1
	DefaultAmountColumn = 4
	DefaultFundColumn   = 8
)

func (c *Config) applyDefaults() {
	if c.Input.Path == "" {
		c.Input.Path = DefaultInputPath
	}
	if c.Input.Strip == "" {
		c.Input.Strip = DefaultStrip
	}
	if c.Input.Encoding == "" {
		c.Input.Encoding = DefaultEncoding
	}

	// An absent columns block unmarshals as all zeroes, which is never a
	// usable mapping (four fields in one column). Treat it as unset.
	if c.Input.Columns == (ColumnsConfig{}) {
		c.Input.Columns = ColumnsConfig{
			Title:  DefaultTitleColumn,
			ID:     DefaultIDColumn,
			Amount: DefaultAmountColumn,
			Fund:   DefaultFundColumn,
		}
	}
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}
