package config

import "os"

// Environment variables read by the CLI.
const (
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvSSHAddr     = "INVADERS_SSH_ADDR"
)

// GetEnv returns the value of the environment variable key, or fallback if unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
