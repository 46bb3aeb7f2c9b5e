//go:build !cgo

package bindings

import (
	"errors"
	"testing"
)

func TestStubReturnsErrNotBuilt(t *testing.T) {
	if Available() {
		t.Fatal("stub build must not report the library as available")
	}
	if v := Version(); v != "" {
		t.Fatalf("Version = %q, want empty", v)
	}
	if _, err := GetINCHI(&Input{}); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("GetINCHI: %v", err)
	}
	if _, err := GetStructFromINCHI("InChI=1S/CH4/h1H4", ""); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("GetStructFromINCHI: %v", err)
	}
	if _, err := GetINCHIKeyFromINCHI("InChI=1S/CH4/h1H4", false, false); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("GetINCHIKeyFromINCHI: %v", err)
	}
	if Layout() != nil {
		t.Fatal("stub Layout should be nil")
	}
}
