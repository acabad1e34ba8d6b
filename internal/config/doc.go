// Package config loads runtime configuration for the NewsBoard CLI and
// HTTP server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with NEWSBOARD_. A .env file in the
//     working directory is loaded first; real environment values win.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory for the flat-file tables
//	-s string   storage backend: file or sqlite
//	-q string   SQLite DSN (sqlite backend only)
//	-a string   HTTP listen address
//	-k string   JWT signing secret
//	-t int      token validity (minutes)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so values may be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "data_dir": "./app_data",
//	  "storage": "file",
//	  "http_addr": ":8080",
//	  "token_validity": "24h",
//	  "advisor": {"endpoint": "https://api.openai.com/v1/chat/completions", "model": "gpt-4o-mini", "timeout": "30s"},
//	  "s3": {"bucket": "newsboard", "base_endpoint": "http://127.0.0.1:9000/"}
//	}
package config
