//go:build opcounters

package opcounters

import (
	"testing"

	"github.com/dacin21/dacin21-exact-geometry/internal/callcounters"
)

// This file is only compiled if tags=opcounters is set, otherwise
// opcounters_inactive.go is used. The difference is just that the functions
// defined here are replaced by no-ops in the inactive build.

// Active reports whether instrumentation is compiled in.
const Active = true

// Increment increments the named counter if instrumentation is active.
func Increment(id callcounters.Id) {
	id.Increment()
}

// BenchmarkReport stops the benchmark timer and attaches counter values as
// custom metrics, for use from geom/adaptive benchmarks that want to see how
// often a given bit budget fell through to the bignum backend.
func BenchmarkReport(b *testing.B) {
	b.StopTimer()
	reports := callcounters.ReportCallCounters(true, false)
	for _, item := range reports {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}
