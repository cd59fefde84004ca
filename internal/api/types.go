// File path: internal/api/types.go
package api

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

const maxIDLength = 128

// requireFields takes alternating name/value pairs and returns a validation
// error naming the first missing required field, or nil when all are present.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("missing required field: %s", pairs[i])
		}
	}
	return nil
}

// validateID checks the shape of a client-supplied identifier. Uniqueness is
// the store's job; this only rejects empty or absurdly long keys.
func validateID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return fmt.Errorf("missing required field: id")
	}
	if len(trimmed) > maxIDLength {
		return fmt.Errorf("id exceeds %d characters", maxIDLength)
	}
	return nil
}

var fallbackSeq atomic.Int64

// fallbackID fills a missing identifier on append-only log rows with a
// timestamp-derived string, matching the ids the dashboard generates. A
// process-local sequence keeps two inserts in the same millisecond from
// colliding on the primary key.
func fallbackID(id string) string {
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		return trimmed
	}
	return fmt.Sprintf("%d-%04d", time.Now().UnixMilli(), fallbackSeq.Add(1)%10000)
}
