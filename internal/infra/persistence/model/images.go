package model

import (
	"encoding/json"
	"strings"
)

// NormalizeImages converts whatever shape the legacy images column holds
// into the canonical ordered list of image URLs.
//
// The column has carried three shapes over its lifetime: a bare URL string,
// a JSON-encoded array, and (through the ORM) an already-parsed list. The
// rules, in order:
//
//   - nil input yields an empty list.
//   - a list input is shallow-copied, preserving order, without dedup.
//   - a string (or raw column bytes) is first parsed as JSON; if that
//     yields a list, the list is used.
//   - a JSON-encoded string is unwrapped first; the jsonb column stores
//     legacy single-URL rows as "\"http://...\"".
//   - a string starting with "http" is treated as a single URL.
//   - anything else yields an empty list.
//
// It never fails and always returns a non-nil slice, so callers can hand
// the result straight to the wire.
func NormalizeImages(raw any) []string {
	switch value := raw.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(value))
		copy(out, value)

		return out
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	case []byte:
		return normalizeImageText(string(value))
	case string:
		return normalizeImageText(value)
	default:
		return []string{}
	}
}

func normalizeImageText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		if list == nil {
			return []string{}
		}

		return list
	}

	// A jsonb column can only hold a legacy bare URL as a JSON string,
	// so unwrap one level before applying the URL rule.
	var single string
	if err := json.Unmarshal([]byte(text), &single); err == nil {
		text = single
	}

	// Historic rows stored a single image URL as plain text.
	if strings.HasPrefix(text, "http") {
		return []string{text}
	}

	return []string{}
}

// EmptyImagesValue reports whether raw encodes "no images" rather than
// corrupt data: blank, JSON null, or a JSON array with no usable entries.
func EmptyImagesValue(raw []byte) bool {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return true
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return len(list) == 0
	}

	return false
}

// MarshalImages renders the canonical persisted form of an image list: a
// JSON array, never a bare string.
func MarshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}

	return json.Marshal(images)
}
