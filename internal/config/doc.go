// Package config defines the application configuration structure and loads
// it from the environment and optional config files using viper. The loaded
// Config is validated once and injected into components; no part of the
// application reads configuration globally after startup.
package config
