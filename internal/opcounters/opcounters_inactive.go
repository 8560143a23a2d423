//go:build !opcounters

package opcounters

import (
	"testing"

	"github.com/dacin21/dacin21-exact-geometry/internal/callcounters"
)

// Active reports whether instrumentation is compiled in.
const Active = false

// Increment is a no-op when opcounters instrumentation is not built in.
func Increment(id callcounters.Id) {
}

// BenchmarkReport is a no-op when opcounters instrumentation is not built in.
func BenchmarkReport(b *testing.B) {
}
