package utils

import (
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts val to int, returning 0 when it is not numeric.
func ToInt(val any) int {
	if s, ok := val.(string); ok {
		val = strings.TrimSpace(s)
	}
	return cast.ToInt(val)
}

// ToBool converts query and form flags to bool.
// It accepts "1", "true", "yes" and "on" in any case; everything else is false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		return cast.ToBool(v)
	}
}
