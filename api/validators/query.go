package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

const maxQueryLength = 256

// SanitizeString trims whitespace and truncates to maxLen bytes when maxLen > 0.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

func QueryString(r *http.Request, key string) string {
	return SanitizeString(r.URL.Query().Get(key), maxQueryLength)
}

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validate.Field(key, "must be numeric")
	}
	if value < min || value > max {
		return 0, validate.Field(key, fmt.Sprintf("must be between %d and %d", min, max))
	}
	return value, nil
}

// ParseQueryEnum runs parse on a present query value. ok is false when the
// parameter was omitted.
func ParseQueryEnum[T any](r *http.Request, key string, parse func(string) (T, error)) (value T, ok bool, err error) {
	raw := QueryString(r, key)
	if raw == "" {
		return value, false, nil
	}
	value, err = parse(raw)
	if err != nil {
		return value, false, validate.Field(key, "has an unsupported value")
	}
	return value, true, nil
}
