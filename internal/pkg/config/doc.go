// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file whose ${VAR} references are expanded from the
// environment (optionally seeded from a .env file), defaulted and then validated
// section by section before anything else in the service is initialized.
package config
