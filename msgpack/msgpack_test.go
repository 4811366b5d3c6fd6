package msgpack

import (
	"math"
	"reflect"
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
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	original := map[string]any{
		"MaxSequenceSize": int64(8388608),
		"TraceLevel":      int64(3),
		"thing":           map[string]any{"bar": "hello"},
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
	if doc["TraceLevel"] != int64(3) {
		t.Errorf("TraceLevel = %#v, want int64(3)", doc["TraceLevel"])
	}
	if doc["MaxSequenceSize"] != int64(8388608) {
		t.Errorf("MaxSequenceSize = %#v, want int64(8388608)", doc["MaxSequenceSize"])
	}
	thing, ok := doc["thing"].(map[string]any)
	if !ok || thing["bar"] != "hello" {
		t.Errorf("thing = %#v, want map with bar=hello", doc["thing"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	c := New()

	doc := map[string]any{"c": 1, "a": 2, "b": 3, "d": 4}
	first, err := c.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := c.Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		if string(again) != string(first) {
			t.Fatal("Marshal() output differs between calls")
		}
	}
}

func TestMarshalBinary(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// MessagePack is binary, should not be valid UTF-8 JSON
	if data[0] == '{' {
		t.Error("MessagePack output should be binary, not JSON")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v any
	err := c.Unmarshal([]byte{0xc1}, &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshalIntegerWidths(t *testing.T) {
	c := New()

	original := map[string]any{
		"small":    int64(7),
		"mid":      int64(8388608),
		"negative": int64(-40),
		"huge":     uint64(math.MaxUint64),
		"ratio":    0.5,
		"nested":   map[string]any{"depth": int64(70000)},
		"list":     []any{int64(1), int64(300), int64(-2)},
	}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !reflect.DeepEqual(restored, original) {
		t.Errorf("Unmarshal() = %#v, want %#v", restored, original)
	}
}
