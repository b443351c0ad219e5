// Package config loads typed configuration from the environment and from
// YAML files.
//
// Load reads the default `.env` file once (github.com/joho/godotenv), parses
// `env` struct tags with github.com/caarlos0/env/v11 and caches one value per
// config type, so every caller of Load for the same type sees the same
// snapshot. MustLoad panics instead of returning an error, for configuration
// required at startup.
//
// LoadFile is used for chain composition files. envDefault values come
// first, the YAML document (gopkg.in/yaml.v3) overrides them, and environment
// variables that are set override both.
//
//	type ChainConfig struct {
//		Wrappers []string `env:"WRAPKIT_WRAPPERS" envSeparator:"," yaml:"wrappers"`
//		Retries  int      `env:"WRAPKIT_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`
//	}
//
//	var cfg ChainConfig
//	if err := config.LoadFile("chain.yaml", &cfg); err != nil {
//		return err
//	}
//
// ResetCache clears cached values and is intended for tests.
package config
