// Package inchi exposes the IUPAC InChI library to Go. A Library converts
// structures to InChI strings, parses InChI strings back into structures and
// derives InChIKeys. The package compiles without cgo; in that build Open
// returns ErrNotBuilt.
//
// The native library is not reentrant. All calls, from every Library in the
// process, are serialized; the context passed to a call bounds only the wait
// for that turn, not the native call itself.
//
//	lib, err := inchi.Open(inchi.Config{ComputeKey: true})
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
//	res, err := lib.FromStructure(ctx, &inchi.Input{
//		Atoms: []inchi.Atom{{Element: "C", ImplicitH: inchi.AutoHydrogens}},
//	})
//
// Status codes map to errors: OK and Warning succeed, the others return an
// *Error that unwraps to ErrError, ErrFatal, ErrUnknown, ErrBusy or ErrEOF.
// Key failures return a *KeyError.
package inchi
