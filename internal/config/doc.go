// Package config manages application configuration for the Gambit API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // every misconfigured variable is reported at once
//	}
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, staging, or production
//	CORS_ALLOWED_ORIGINS  - Comma-separated list of allowed origins
//	DB_HOST               - SurrealDB host (default: localhost)
//	DB_PORT               - SurrealDB port (default: 8000)
//	DB_NAMESPACE          - Database namespace (default: gambit)
//	DB_DATABASE           - Database name (default: main)
//	JWT_PRIVATE_KEY_PATH  - Path to the RS256 private key
//	JWT_PUBLIC_KEY_PATH   - Path to the RS256 public key
//	JWT_EXPIRATION_MINS   - Access token lifetime in minutes (default: 15)
//	JWT_ISSUER            - Token issuer claim
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
