// Package config loads calculator configuration from layered sources.
//
// Values are resolved lowest to highest precedence:
//
//  1. built-in defaults
//  2. an optional JSON configuration file
//  3. environment variables (ABACUS_*)
//
// A .env file in the working directory is loaded into the environment
// first, so dotenv entries behave exactly like exported variables.
// Invalid values fail loading with a typed *Error; configuration failure
// at startup is the only globally fatal error in the application.
package config
