package sqlite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var firstNumberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Coerce maps a loosely-typed payload value onto a declared sqlite column
// type. Numeric targets take the first numeric substring of string input, so
// human-formatted figures like "1,234 runs" or "45%" still land. A nil return
// is the absence marker and becomes SQL NULL; coercion never fails.
func Coerce(value any, declaredType string) any {
	if value == nil {
		return nil
	}

	switch affinity(declaredType) {
	case "INTEGER":
		f, ok := numericValue(value)
		if !ok {
			return nil
		}
		return int64(f)
	case "REAL":
		f, ok := numericValue(value)
		if !ok {
			return nil
		}
		return f
	default:
		return textValue(value)
	}
}

// affinity reduces a declared column type to sqlite's numeric/text buckets.
func affinity(declaredType string) string {
	t := strings.ToUpper(strings.TrimSpace(declaredType))
	switch {
	case strings.Contains(t, "INT"):
		return "INTEGER"
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"), strings.Contains(t, "NUMERIC"), strings.Contains(t, "DECIMAL"):
		return "REAL"
	default:
		return "TEXT"
	}
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		cleaned := strings.ReplaceAll(v, ",", "")
		matched := firstNumberPattern.FindString(cleaned)
		if matched == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(matched, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func textValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
