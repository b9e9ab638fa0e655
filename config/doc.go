// Package config loads and validates the settings of the maxcut command.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (SetDefaults);
//  2. an optional config file (yaml, toml or json; "maxcut.*" in the working
//     directory when no explicit path is given);
//  3. environment variables prefixed with MAXCUT_ (MAXCUT_EXACT_LIMIT=20);
//  4. command-line flags bound to the same viper instance.
//
// Keys use the flag spelling ("exact-limit", "min-n"). Load decodes the
// merged settings into Config and runs Validate, whose error messages are
// translated to plain English.
package config
