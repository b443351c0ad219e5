package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// typeCache holds one parsed value per config type.
type typeCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cache = &typeCache{values: make(map[reflect.Type]any)}

	dotenvOnce sync.Once
)

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once per process if present. Each config
// type is parsed once; later calls for the same type get a copy of the
// cached value.
//
//	type ChainConfig struct {
//		Retries int `env:"RETRY_ATTEMPTS" envDefault:"3"`
//	}
//
//	var cfg ChainConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile layers three sources into v, each overriding the previous one:
// envDefault values, the YAML file at path, then environment variables that
// are actually set. `required` env tags are enforced. Results are not cached.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	// defaults and required checks
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	// set variables only; an unknown default tag keeps envDefault from
	// overwriting file values
	if err := env.ParseWithOptions(v, env.Options{DefaultValueTagName: noDefaultTag}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

const noDefaultTag = "envDefaultIgnored"

// LoadEnv reads variables from the given dotenv files into the process
// environment without overriding values that are already set.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	return nil
}

// ResetCache drops every cached config value.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
