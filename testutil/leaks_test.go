package testutil

import (
	"testing"
	"weak"
)

type tracked struct {
	payload [64]byte
}

func TestRequireCollected(t *testing.T) {
	pointer := weak.Make(&tracked{})

	RequireCollected(t, pointer)
}
