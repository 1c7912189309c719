package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load receives a nil pointer.
var ErrNilTarget = errors.New("config: target cannot be nil")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (value of the config type)
	loadMu     sync.Mutex
)

// Load parses environment variables into dst.
// The first call loads a .env file from the working directory when present.
// The parsed value is cached per type: later calls for the same type copy the
// cached value without reading the environment again.
func Load[T any](dst *T) error {
	if dst == nil {
		return ErrNilTarget
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*dst = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*dst = cached.(T)
		return nil
	}

	loadDotenv()

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache.Store(typ, cfg)
	*dst = cfg
	return nil
}

// Reset drops every cached configuration. The .env file is not read again.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func loadDotenv() {
	dotenvOnce.Do(func() {
		// A missing .env is the normal case outside development.
		_ = godotenv.Load()
	})
}
