// Package testutil contains helpers that are shared by the tests of the module.
package testutil

import (
	"runtime"
	"testing"
	"time"
	"weak"

	"github.com/stretchr/testify/require"
)

// CollectionTimeout is the time an object gets to be garbage collected before the test fails.
var CollectionTimeout = 5 * time.Second

// RequireCollected fails the test if the object the weak pointer refers to is not garbage collected in time.
func RequireCollected[T any](t require.TestingT, pointer weak.Pointer[T], msgAndArgs ...interface{}) {
	require.Eventually(t, func() bool {
		runtime.GC()

		return pointer.Value() == nil
	}, CollectionTimeout, 10*time.Millisecond, msgAndArgs...)
}

// TrackForMemoryLeaks fails the test if the given object is still reachable once the test (and its subtests)
// finished.
func TrackForMemoryLeaks[T any](t *testing.T, object *T) {
	pointer := weak.Make(object)

	t.Cleanup(func() {
		RequireCollected(t, pointer, "instance should have been collected, potential memory leak")
	})
}
