// Package config handles configuration loading for taskdeck.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${TASKDECK_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
// Database:
//
//	database:
//	  path: "/var/lib/taskdeck/taskdeck.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${TASKDECK_JWT_SECRET}"  # Required, >= 32 bytes
//	  session_ttl: "168h"                   # Default 7 days
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret presence and minimum length (32 bytes)
//   - Database path presence
//   - Duration format validity
//   - Logging level and format values
package config
