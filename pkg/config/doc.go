// Package config loads typed configuration structs from environment
// variables with optional .env file support.
//
// Each configuration type is parsed once per process and cached, so
// components can call Load independently without coordinating. Field
// mapping uses caarlos0/env struct tags:
//
//	type DatabaseConfig struct {
//		URL          string `env:"DATABASE_URL,required"`
//		MaxOpenConns int32  `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
//	}
package config
