package model

import (
	"strconv"
	"time"
)

// Documents written by older clients are not strictly typed, so readers
// accept the neighbouring representations of each value.

func asString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func asInt(raw any) int {
	switch v := raw.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)

		return n
	default:
		return 0
	}
}

func asFloat(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)

		return f
	default:
		return 0
	}
}

func asTime(raw any) *time.Time {
	switch v := raw.(type) {
	case time.Time:
		return &v
	case string:
		for _, layout := range []string{time.RFC3339, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return &t
			}
		}
	}

	return nil
}

func asStringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item))
	}

	return out
}

func asIntSlice(raw any) []int {
	items, ok := raw.([]any)
	if !ok {
		// a scalar rating from before ratings became a list
		if raw != nil {
			return []int{asInt(raw)}
		}

		return nil
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, asInt(item))
	}

	return out
}
