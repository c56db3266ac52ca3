package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a string record id
func NewID() string {
	return uuid.New().String()
}

// NormalizeID trims whitespace from an externally supplied record id
func NormalizeID(s string) string {
	return strings.TrimSpace(s)
}
