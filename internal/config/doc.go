// Package config handles configuration loading for bulletin-gateway.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// Anything the file leaves out keeps the value from Default().
//
// # Configuration File
//
// Location (in order):
//
//  1. Path from BULLETIN_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/bulletin/gateway.yaml
//  3. ~/.config/bulletin/gateway.yaml
//
// When no file exists, `bulletin-gateway serve` runs with Default().
//
// # Environment Variable Expansion
//
//	store:
//	  seed_path: "${BULLETIN_SEED}"
//
// # Configuration Sections
//
//	server:
//	  grpc_addr: "127.0.0.1:50051"
//	  http_addr: "127.0.0.1:8080"   # health and metrics
//
//	store:
//	  id_strategy: "max_plus_one"   # max_plus_one, high_water
//	  seed_path: ""                 # .yaml/.yml/.toml; empty = five built-in news items
//
//	logging:
//	  level: "info"    # debug, info, warn, error
//	  format: "text"   # text, json
//
//	metrics:
//	  enabled: true
//	  path: "/metrics"
//
//	shutdown:
//	  timeout: "5s"
package config
