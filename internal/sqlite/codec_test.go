// File path: internal/sqlite/codec_test.go
package sqlite

import (
	"encoding/json"
	"testing"
)

func TestStringListScanJSON(t *testing.T) {
	var list StringList
	if err := list.Scan(`["alpha","beta"]`); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(list) != 2 || list[0] != "alpha" || list[1] != "beta" {
		t.Fatalf("unexpected decode: %v", list)
	}
}

func TestStringListScanMalformedFallsBackToEmpty(t *testing.T) {
	var list StringList
	if err := list.Scan(`["broken`); err != nil {
		t.Fatalf("scan should not fail on malformed text: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("malformed text should decode as empty list, got %v", list)
	}
}

func TestStringListScanCommaSeparated(t *testing.T) {
	var list StringList
	if err := list.Scan("search, summarize ,deploy"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(list) != 3 || list[1] != "summarize" {
		t.Fatalf("unexpected decode: %v", list)
	}
}

func TestStringListScanNil(t *testing.T) {
	list := StringList{"stale"}
	if err := list.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if list != nil {
		t.Fatalf("nil source should reset the list, got %v", list)
	}
}

func TestStringListUnmarshalAcceptsArrayAndString(t *testing.T) {
	var fromArray StringList
	if err := json.Unmarshal([]byte(`["a","b"]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	var fromJSONString StringList
	if err := json.Unmarshal([]byte(`"[\"a\",\"b\"]"`), &fromJSONString); err != nil {
		t.Fatalf("serialized string form: %v", err)
	}
	var fromCommaString StringList
	if err := json.Unmarshal([]byte(`"a,b"`), &fromCommaString); err != nil {
		t.Fatalf("comma string form: %v", err)
	}
	for _, list := range []StringList{fromArray, fromJSONString, fromCommaString} {
		if len(list) != 2 || list[0] != "a" || list[1] != "b" {
			t.Fatalf("normalization mismatch: %v", list)
		}
	}

	var invalid StringList
	if err := json.Unmarshal([]byte(`42`), &invalid); err == nil {
		t.Fatal("numeric input should be rejected")
	}
}

func TestStringListValueEncodesJSON(t *testing.T) {
	value, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if value != `["a","b"]` {
		t.Fatalf("unexpected encoding: %v", value)
	}
	empty, err := StringList(nil).Value()
	if err != nil {
		t.Fatalf("nil value: %v", err)
	}
	if empty != "[]" {
		t.Fatalf("nil list should encode as [], got %v", empty)
	}
}

func TestStringListMarshalNeverNull(t *testing.T) {
	data, err := json.Marshal(StringList(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("nil list should marshal as [], got %s", data)
	}
}
