// Package config loads typed configuration structs from environment
// variables using struct tags.
//
// It builds on caarlos0/env for parsing and joho/godotenv for local
// development: the first Load call attempts to read a .env file from the
// working directory, silently continuing when none exists.
//
// Usage:
//
//	type AppConfig struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
