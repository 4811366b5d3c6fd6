package yaml

import (
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := map[string]any{
		"MaxDepth":            int64(32),
		"SkipUnknownElements": true,
		"color":               "crazy-WACKYColor",
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	doc, ok := restored.(map[string]any)
	if !ok {
		t.Fatalf("Unmarshal() = %T, want map[string]any", restored)
	}
	if doc["MaxDepth"] != 32 {
		t.Errorf("MaxDepth = %#v, want 32", doc["MaxDepth"])
	}
	if doc["SkipUnknownElements"] != true {
		t.Errorf("SkipUnknownElements = %#v, want true", doc["SkipUnknownElements"])
	}
	if doc["color"] != "crazy-WACKYColor" {
		t.Errorf("color = %#v, want crazy-WACKYColor", doc["color"])
	}
}

func TestMarshalSortsKeys(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]any{"b": 1, "a": 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if string(data) != "a: 2\nb: 1\n" {
		t.Errorf("Marshal() = %q, want sorted keys", data)
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	// YAML represents nil as "null\n"
	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v any
	err := c.Unmarshal([]byte("name: [invalid"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshal_NestedChoice(t *testing.T) {
	c := New()

	input := `TraceLevel: 1
thing:
  foo: 7
color: RED`

	var v any
	if err := c.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("Unmarshal(nested) error: %v", err)
	}

	thing, ok := v.(map[string]any)["thing"].(map[string]any)
	if !ok {
		t.Fatal("thing key not found or wrong type")
	}
	if thing["foo"] != 7 {
		t.Errorf("thing.foo = %#v, want 7", thing["foo"])
	}
}

func TestUnmarshal_Anchors(t *testing.T) {
	c := New()

	input := `default: &default
  MaxDepth: 32
  TraceLevel: 0
verbose:
  <<: *default
  TraceLevel: 3`

	var v map[string]any
	if err := c.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("Unmarshal(anchors) error: %v", err)
	}

	verbose, ok := v["verbose"].(map[string]any)
	if !ok {
		t.Fatal("verbose key not found or wrong type")
	}
	if verbose["TraceLevel"] != 3 {
		t.Errorf("verbose.TraceLevel = %v, want 3", verbose["TraceLevel"])
	}
	if verbose["MaxDepth"] != 32 {
		t.Errorf("verbose.MaxDepth = %v, want 32", verbose["MaxDepth"])
	}
}

func TestMarshal_SpecialCharacters(t *testing.T) {
	c := New()

	testCases := []struct {
		name  string
		input string
	}{
		{"newline", "line1\nline2"},
		{"colon", "key: value"},
		{"dash and mixed case", "crazy-WACKYColor"},
		{"unicode", "日本語テスト"},
		{"special chars", "#@!$%^&*()"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := c.Marshal(map[string]any{"text": tc.input})
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			var restored map[string]any
			if err := c.Unmarshal(data, &restored); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}

			if restored["text"] != tc.input {
				t.Errorf("round-trip failed for %q: got %q", tc.input, restored["text"])
			}
		})
	}
}

func TestUnmarshal_MultiDocument(t *testing.T) {
	c := New()

	// Only the first document is parsed
	input := `---
color: RED
---
color: BLUE`

	var v map[string]any
	if err := c.Unmarshal([]byte(input), &v); err != nil {
		t.Errorf("Unmarshal(multi-doc) error: %v", err)
	}
	if v["color"] != "RED" {
		t.Errorf("Unmarshal(multi-doc) color = %v, want RED", v["color"])
	}
}
