package env

import (
	"os"
	"strings"
)

// Prefix namespaces every service variable.
const Prefix = "FACTORYOPS_"

// Get returns FACTORYOPS_<key> when set, then the bare key, then fallback.
func Get(key, fallback string) string {
	if !strings.HasPrefix(key, Prefix) {
		if val := strings.TrimSpace(os.Getenv(Prefix + key)); val != "" {
			return val
		}
	}
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
