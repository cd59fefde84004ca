// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"expvar"
	"sync"
	"time"
)

var (
	initOnce sync.Once

	requestTotal     *expvar.Map
	requestErrors    *expvar.Int
	requestLatencyMS *expvar.Int

	upsertTotal *expvar.Map
	deleteTotal *expvar.Map

	bridgeForwardTotal  *expvar.Int
	bridgeForwardErrors *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		requestTotal = expvar.NewMap("mission_http_requests_total")
		requestErrors = expvar.NewInt("mission_http_errors_total")
		requestLatencyMS = expvar.NewInt("mission_http_latency_ms_total")

		upsertTotal = expvar.NewMap("mission_store_upserts_total")
		deleteTotal = expvar.NewMap("mission_store_deletes_total")

		bridgeForwardTotal = expvar.NewInt("mission_bridge_forwards_total")
		bridgeForwardErrors = expvar.NewInt("mission_bridge_failures_total")
	})
}

// ObserveRequest records one handled HTTP request, keyed by method.
func ObserveRequest(method string, status int, elapsed time.Duration) {
	ensureInit()
	requestTotal.Add(method, 1)
	requestLatencyMS.Add(elapsed.Milliseconds())
	if status >= 500 {
		requestErrors.Add(1)
	}
}

// CountUpsert records a successful upsert against the named entity table.
func CountUpsert(entity string) {
	ensureInit()
	upsertTotal.Add(entity, 1)
}

// CountDelete records a delete against the named entity table.
func CountDelete(entity string) {
	ensureInit()
	deleteTotal.Add(entity, 1)
}

// CountBridgeForward records one outbound relay attempt.
func CountBridgeForward(failed bool) {
	ensureInit()
	bridgeForwardTotal.Add(1)
	if failed {
		bridgeForwardErrors.Add(1)
	}
}
