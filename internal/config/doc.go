// Package config loads, merges and validates the bookmark keeper
// configuration.
//
// Sources are applied in the following order, later non-zero values
// overriding earlier ones:
//  1. Built-in defaults
//  2. A .env file (path from DOTENV, or ./.env when present)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file (path from CONFIG or -c / -config)
//
// [GetStructuredConfig] returns the merged result; [GetClientConfig] narrows
// it to what the client runtime needs and validates it.
package config
