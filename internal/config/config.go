package config

import "os"

// Get returns the environment value for key, or fallback when unset or
// empty. godotenv is loaded by the composition roots before lookups.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
