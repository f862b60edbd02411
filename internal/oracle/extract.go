package oracle

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedJSON matches a markdown code fence, optionally tagged json.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSON pulls the JSON payload out of a raw model response, stripping
// a surrounding markdown code fence when present.
func extractJSON(content string) string {
	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

// decodeJSONResponse extracts and unmarshals the JSON object in content.
func decodeJSONResponse(content string, out any) error {
	return json.Unmarshal([]byte(extractJSON(content)), out)
}

// optString converts a loosely typed JSON value to a string pointer.
// Anything that is not a non-empty string becomes nil.
func optString(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
