package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LedgerConfig struct {
	// TransferLimit is the per-transaction ceiling, as a decimal
	// string so the config file never goes through float64.
	TransferLimit string `mapstructure:"transfer_limit"`
	MaxRetries    int    `mapstructure:"max_retries"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Ledger: LedgerConfig{
			TransferLimit: "10000.00",
			MaxRetries:    5,
		},
	}
}
