// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is read once on first use, then the
// struct is populated with caarlos0/env. Each configuration type is parsed
// once and cached, so later calls return the same values:
//
//	type StorageConfig struct {
//		Dir string `env:"STORAGE_DIR" envDefault:"./storage"`
//	}
//
//	var cfg StorageConfig
//	config.MustLoad(&cfg)
package config
