package engine

// Props decoded from JSON arrive as float64/bool/string; YAML may also
// produce int. These helpers hide the difference.

func PropBool(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

func PropFloat(props map[string]any, key string, fallback float32) float32 {
	if v, ok := ToFloat(props[key]); ok {
		return v
	}
	return fallback
}

func PropString(props map[string]any, key string, fallback string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return fallback
}

// ToFloat converts a decoded numeric prop to float32.
func ToFloat(value any) (float32, bool) {
	switch v := value.(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	case uint64:
		return float32(v), true
	}
	return 0, false
}
