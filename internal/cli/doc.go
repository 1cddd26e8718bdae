// Package cli implements the gambit command-line companion tool.
//
// The CLI provisions keys for the API server and drives the REST surface
// from a terminal. Commands are built with cobra and registered on RootCmd:
//
//   - keygen: generate the server's RS256 key pair
//   - token: sign a service JWT directly with the private key
//   - login: exchange credentials for an access token
//   - registry create|get|list: manage card registries
//   - card mint|get|list|transfer: manage cards and holdings
//   - duel: resolve a duel between two cards
//
// # Configuration
//
// The API base URL and bearer token live in a TOML file at
// $XDG_CONFIG_HOME/gambit/gambit.toml (default ~/.config/gambit/gambit.toml),
// created with defaults on first run:
//
//	api_url = "http://localhost:8080"
//	token = "..."
//
// Both values can be overridden per invocation with the persistent --api and
// --token flags. login and token --save write the token back to the file.
//
// # API access
//
// Commands talk to the server through a small HTTP client that unwraps the
// API's {"data": ...} envelope and renders RFC 9457 Problem Details bodies
// as readable errors, including per-field validation messages.
package cli
