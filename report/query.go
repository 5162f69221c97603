package report

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Query extracts a value from a JSON report. path may be a gjson path
// ("zones.0.name", "zones.#.name") or a JSONPath-style expression
// ("$.zones[0].name").
func Query(data []byte, path string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty report")
	}
	if path == "" {
		return "", fmt.Errorf("empty query path")
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("report is not valid JSON")
	}

	result := gjson.GetBytes(data, toGJSONPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// toGJSONPath converts "$.zones[0].name" into "zones.0.name".
func toGJSONPath(path string) string {
	if path == "$" {
		return "@this"
	}
	if !strings.HasPrefix(path, "$") {
		return path
	}

	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	path = strings.NewReplacer("['", ".", "']", "", `["`, ".", `"]`, "").Replace(path)
	path = strings.NewReplacer("[", ".", "]", "").Replace(path)
	return strings.TrimPrefix(path, ".")
}
