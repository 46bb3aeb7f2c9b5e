// Package bindings contains all CGO bindings to the native InChI library.
//
// # Design Principles
//
// 1. Isolation: ALL CGO code lives in this package. No other package should
//    import "C".
//
// 2. Minimal Surface: one Go function per entry point declared in
//    inchi_api.h. No retries, caching or interpretation of return codes;
//    that belongs to pkg/inchi.
//
// 3. Memory Management: inputs are copied into memory obtained from the C
//    allocator and released here. Outputs are owned by the library: their
//    strings and arrays are copied into Go values and then released with the
//    matching FreeINCHI / FreeStructFromINCHI call, exactly once, whatever
//    the return code was. Library-owned buffers are never passed to free().
//
// # Threading
//
// The InChI library is NOT reentrant; it reports inchi_Ret_BUSY when a call
// overlaps a previous one. Callers must serialize calls.
//
// # Building
//
// The cgo build links -linchi from ./3rd at the repository root (or any
// directory on the linker path). Builds with CGO_ENABLED=0 compile the stub
// in bindings_stub.go, where every call returns ErrNotBuilt.
package bindings
