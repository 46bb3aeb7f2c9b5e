//go:build !cgo

package bindings

// Stub implementations for non-CGO builds.
// These allow the package to compile but return ErrNotBuilt when called.

func Available() bool { return false }

// Version returns an empty string when the native library is not linked.
func Version() string { return "" }

func GetINCHI(*Input) (*Output, error) {
	return nil, ErrNotBuilt
}

func GetStructFromINCHI(string, string) (*StructOutput, error) {
	return nil, ErrNotBuilt
}

func GetINCHIKeyFromINCHI(string, bool, bool) (*KeyOutput, error) {
	return nil, ErrNotBuilt
}

func Layout() []StructLayout { return nil }
