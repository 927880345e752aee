// Package config defines the settings structs for the ClaimGuard services
// and loads them from YAML files with environment variable overrides.
package config
