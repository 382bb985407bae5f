// Package config loads, defaults and validates the server configuration from
// environment variables (prefix NEWSROOM_), an optional YAML file and an
// optional .env file. Environment variables take precedence over the file.
package config
