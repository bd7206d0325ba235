// Package leaktest wraps goleak with the ignore list shared by this module's tests.
package leaktest

import (
	"testing"

	"go.uber.org/goleak"
)

// Options returns the goleak options used across the module. Idle keep-alive
// connections of HTTP clients talking to httptest servers are not leaks, and
// neither is lumberjack's background mill goroutine.
func Options(extra ...goleak.Option) []goleak.Option {
	opts := []goleak.Option{
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	}
	return append(opts, extra...)
}

// VerifyNone fails t if goroutines started during the test are still running.
// Use with defer at the top of a test.
func VerifyNone(t testing.TB, extra ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, Options(extra...)...)
}

// VerifyTestMain runs the package's tests and then checks for leaked goroutines
func VerifyTestMain(m *testing.M, extra ...goleak.Option) {
	goleak.VerifyTestMain(m, Options(extra...)...)
}
