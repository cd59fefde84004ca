// File path: internal/sqlite/codec.go
package sqlite

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a collection field persisted as a single JSON-encoded TEXT
// column (capabilities, agent_ids). The encoded form never leaves this
// package: rows scan into a decoded slice and values encode on write.
//
// Two deliberate policies live here:
//   - Stored text that is not valid JSON decodes to an empty list rather than
//     failing the row.
//   - JSON input accepts either a native array or a pre-serialized string
//     (itself JSON, or comma-separated), so handlers normalise both client
//     shapes without extra code.
type StringList []string

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		*l = decodeList(string(v))
		return nil
	case string:
		*l = decodeList(v)
		return nil
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(encoded), nil
}

// UnmarshalJSON accepts a JSON array or a string holding a serialized list.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("string list: expected array or string")
	}
	*l = decodeList(raw)
	return nil
}

// MarshalJSON emits a plain array so callers never see the encoded form.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func decodeList(raw string) StringList {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
		return items
	}
	if strings.HasPrefix(trimmed, "[") {
		// Looks like JSON but does not parse: empty-list fallback.
		return nil
	}
	parts := strings.Split(trimmed, ",")
	out := make(StringList, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
