package os

import "os"

// GetEnvOr returns the value of the environment variable name, or fallback when it is unset or empty.
func GetEnvOr(name, fallback string) string {
	if val, ok := os.LookupEnv(name); ok && val != "" {
		return val
	}
	return fallback
}
