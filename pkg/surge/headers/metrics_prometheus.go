//go:build prometheus

package headers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the header fast paths. Only compiled with
// -tags prometheus so the default build stays dependency-free on the hot
// path.
var (
	reuseHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "surge_headers_value_reuse_hits_total",
			Help: "Appends satisfied by the previous message's string without re-decoding",
		})

	unknownAppends = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "surge_headers_unknown_appends_total",
			Help: "Appends that missed the known-header registry",
		})

	serializedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "surge_headers_serialized_bytes_total",
			Help: "Total header bytes rendered by the serializer",
		})
)

func metricReuseHit()      { reuseHits.Inc() }
func metricUnknownAppend() { unknownAppends.Inc() }

func metricSerializedBytes(n int) { serializedBytes.Add(float64(n)) }
