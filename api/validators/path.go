package validators

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

const maxIDLength = 64

// PathID returns the trimmed chi URL parameter or a validation error when it is empty.
func PathID(r *http.Request, key string) (string, error) {
	id := SanitizeString(chi.URLParam(r, key), maxIDLength)
	if id == "" {
		return "", validate.Field(key, "is required")
	}
	return id, nil
}
