package botrelay

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatResponse turns an API response into chat text. Bodies that are not
// JSON are returned verbatim.
func FormatResponse(res *Response, success func(data map[string]any) string) string {
	var data any
	if err := json.Unmarshal(res.Body, &data); err != nil {
		return string(res.Body)
	}
	obj, _ := data.(map[string]any)

	if res.OK() {
		if success != nil {
			return success(obj)
		}
		return "Done."
	}

	switch detail := obj["detail"].(type) {
	case string:
		if detail != "" {
			return "Error: " + detail
		}
	case nil:
	default:
		return fmt.Sprintf("Error: %v", detail)
	}
	return fmt.Sprintf("Error: %d", res.StatusCode)
}

func message(text string) func(map[string]any) string {
	return func(map[string]any) string { return text }
}

// ExtractEmail accepts anything with an @ and a dot, lowercased.
func ExtractEmail(value string) (string, bool) {
	if value == "" || !strings.Contains(value, "@") || !strings.Contains(value, ".") {
		return "", false
	}
	return strings.ToLower(value), true
}

// ParsePipeArgs splits "left | right" once on the first pipe. Both sides
// must be non-empty after trimming.
func ParsePipeArgs(args string) (string, string, bool) {
	left, right, found := strings.Cut(args, "|")
	if !found {
		return "", "", false
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
