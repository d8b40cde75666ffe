//go:build !prometheus

package headers

// Metrics are compiled out by default; build with -tags prometheus to
// export them. The no-op bodies inline to nothing.

func metricReuseHit()           {}
func metricUnknownAppend()      {}
func metricSerializedBytes(int) {}
