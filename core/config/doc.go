// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/matiboux/totp-online/core/config"
//
//	type BuildConfig struct {
//		RepositoryURL string `env:"GITHUB_REPOSITORY_URL"`
//		CommitSHA     string `env:"GITHUB_SHA"`
//		VersionTag    string `env:"VERSION_TAG"`
//	}
//
//	func main() {
//		var cfg BuildConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 BuildConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 BuildConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Reset clears the cache, which
// tests use after changing the environment.
package config
