package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ExtractIDFromParams returns the {id} path segment with the trailing .json
// stripped, e.g. "FR42" from /api/preplan/packs-for-requirement/FR42.json.
func ExtractIDFromParams(r *http.Request) string {
	return strings.TrimSuffix(r.PathValue("id"), ".json")
}

// ValidateID rejects empty or oversized identifiers before lookup.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > 128 {
		return fmt.Errorf("id exceeds 128 characters")
	}
	return nil
}

// ParseFloatParam parses a required float query parameter.
func ParseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return value, nil
}

// ParseFloatParamWithDefault parses an optional float query parameter.
func ParseFloatParamWithDefault(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return value, nil
}
