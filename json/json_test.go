package json

import (
	stdjson "encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	for _, c := range []interface{ ContentType() string }{New(), Pretty()} {
		if c.ContentType() != "application/json" {
			t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
		}
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := map[string]any{"TraceLevel": int64(3), "color": "RED"}

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
	if doc["color"] != "RED" {
		t.Errorf("color = %v, want RED", doc["color"])
	}
	num, ok := doc["TraceLevel"].(stdjson.Number)
	if !ok {
		t.Fatalf("TraceLevel = %T, want json.Number", doc["TraceLevel"])
	}
	if num.String() != "3" {
		t.Errorf("TraceLevel = %s, want 3", num)
	}
}

func TestMarshalSortsKeys(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]any{"b": 1, "a": 2, "c": 3})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if string(data) != `{"a":2,"b":1,"c":3}` {
		t.Errorf("Marshal() = %s, want sorted keys", data)
	}
}

func TestUnmarshalKeepsLargeIntegers(t *testing.T) {
	c := New()

	var v any
	if err := c.Unmarshal([]byte(`{"n":9007199254740993}`), &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	num, ok := v.(map[string]any)["n"].(stdjson.Number)
	if !ok {
		t.Fatalf("n = %T, want json.Number", v.(map[string]any)["n"])
	}
	n, err := num.Int64()
	if err != nil || n != 9007199254740993 {
		t.Errorf("n = %v (%v), want 9007199254740993", n, err)
	}
}

func TestPrettyIndents(t *testing.T) {
	c := Pretty()

	data, err := c.Marshal(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if !strings.Contains(string(data), "\n  \"a\"") {
		t.Errorf("Marshal() = %q, want indented output", data)
	}
}

func TestCodecIdentity(t *testing.T) {
	if New() != New() {
		t.Error("New() should return the same codec on every call")
	}
	if Pretty() != Pretty() {
		t.Error("Pretty() should return the same codec on every call")
	}
	if New() == Pretty() {
		t.Error("New() and Pretty() should be distinct codecs")
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v any
	err := c.Unmarshal([]byte("invalid json"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
