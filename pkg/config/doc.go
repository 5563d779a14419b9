// Package config loads typed configuration structs from environment
// variables.
//
// Struct fields are mapped to environment variables via `env` tags handled by
// github.com/caarlos0/env. A .env file in the working directory is loaded
// once, lazily, through github.com/joho/godotenv; a missing file is not an
// error.
//
// Parsed configurations are cached per struct type, so independent packages
// can each call Load for their own Config without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//		TokenTTL time.Duration `env:"BOTGUARD_TOKEN_TTL" envDefault:"600s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
