package validator

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidUUID accepts any RFC 4122 UUID in canonical form.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseInt parses a required integer query value. The field name is used in
// the returned validation error.
func ParseInt(field, value string) (int, error) {
	if IsEmpty(value) {
		return 0, ValidationErrors{{Field: field, Message: field + " is required"}}
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ValidationErrors{{Field: field, Message: field + " must be a number"}}
	}
	return n, nil
}
