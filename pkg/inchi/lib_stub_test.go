//go:build !cgo

package inchi

import (
	"errors"
	"testing"
)

func TestOpenWithoutCgo(t *testing.T) {
	lib, err := Open(Config{})
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Open error = %v, want ErrNotBuilt", err)
	}
	if lib != nil {
		t.Fatal("Open returned a library without cgo")
	}
	if got := LibraryVersion(); got != UpstreamVersion {
		t.Fatalf("LibraryVersion = %q, want %q", got, UpstreamVersion)
	}
}
