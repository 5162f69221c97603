package report

import (
	"testing"
)

func TestQuery(t *testing.T) {
	data := []byte(`{
		"calibrated": true,
		"totalTicks": 4000,
		"pageFaults": null,
		"zones": [
			{"slot": 1, "name": "decode", "hits": 3},
			{"slot": 2, "name": "read", "hits": 9}
		]
	}`)

	tests := []struct {
		name          string
		path          string
		expected      string
		expectedError bool
	}{
		{name: "JSONPath property", path: "$.totalTicks", expected: "4000"},
		{name: "JSONPath array element", path: "$.zones[1].name", expected: "read"},
		{name: "JSONPath bracket property", path: "$['calibrated']", expected: "true"},
		{name: "gjson path", path: "zones.0.hits", expected: "3"},
		{name: "gjson array query", path: "zones.#.name", expected: `["decode","read"]`},
		{name: "null value", path: "$.pageFaults", expected: "null"},
		{name: "missing path", path: "$.zones[5].name", expectedError: true},
		{name: "empty path", path: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Query(data, tt.path)
			if tt.expectedError {
				if err == nil {
					t.Errorf("Query(%q) expected error, got %q", tt.path, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Query(%q) unexpected error: %v", tt.path, err)
			}
			if result != tt.expected {
				t.Errorf("Query(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestQuery_InvalidInput(t *testing.T) {
	if _, err := Query(nil, "$.zones"); err == nil {
		t.Error("expected error for empty report")
	}
	if _, err := Query([]byte(`{"zones": [`), "zones"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestToGJSONPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"$", "@this"},
		{"$.zones", "zones"},
		{"$.zones[0].name", "zones.0.name"},
		{"$['zones'][1]", "zones.1"},
		{"zones.#.slot", "zones.#.slot"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := toGJSONPath(tt.path); got != tt.expected {
				t.Errorf("toGJSONPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
