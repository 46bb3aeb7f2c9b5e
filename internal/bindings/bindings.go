//go:build cgo

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -L${SRCDIR}/../../3rd -linchi
#cgo linux LDFLAGS: -Wl,-rpath,${SRCDIR}/../../3rd
#cgo darwin LDFLAGS: -Wl,-rpath,${SRCDIR}/../../3rd
#include <stdlib.h>
#include <string.h>
#include "inchi_api.h"
*/
import "C"

import (
	"unsafe"
)

// Available reports whether the native library is linked in.
func Available() bool { return true }

// Version returns the version string of the linked InChI library. The
// returned pointer is static library data and is not released.
func Version() string {
	return goString(C.GetINCHI_Version())
}

// GetINCHI converts a structure into an InChI string. The input is copied
// into C memory, the library output is copied into Go strings and then
// released with FreeINCHI whatever the return code was.
func GetINCHI(in *Input) (*Output, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	cin, err := newInput(in)
	if err != nil {
		return nil, err
	}
	defer freeInput(cin)

	var out C.inchi_Output
	rc := C.GetINCHI(cin, &out)
	res := &Output{
		Code:    int(rc),
		InChI:   goString(out.szInChI),
		AuxInfo: goString(out.szAuxInfo),
		Message: goString(out.szMessage),
		Log:     goString(out.szLog),
	}
	C.FreeINCHI(&out)
	return res, nil
}

// GetStructFromINCHI parses an InChI string back into atoms and stereo
// descriptors. FreeStructFromINCHI is always called before returning.
func GetStructFromINCHI(inchi, options string) (*StructOutput, error) {
	cInchi := C.CString(inchi)
	defer C.free(unsafe.Pointer(cInchi))
	inp := C.inchi_InputINCHI{szInChI: cInchi}
	if options != "" {
		cOpts := C.CString(options)
		defer C.free(unsafe.Pointer(cOpts))
		inp.szOptions = cOpts
	}

	var out C.inchi_OutputStruct
	rc := C.GetStructFromINCHI(&inp, &out)
	res := &StructOutput{
		Code:    int(rc),
		Message: goString(out.szMessage),
		Log:     goString(out.szLog),
	}
	if out.atom != nil && out.num_atoms > 0 {
		src := unsafe.Slice(out.atom, int(out.num_atoms))
		res.Atoms = make([]Atom, len(src))
		for i := range src {
			res.Atoms[i] = readAtom(&src[i])
		}
	}
	if out.stereo0D != nil && out.num_stereo0D > 0 {
		src := unsafe.Slice(out.stereo0D, int(out.num_stereo0D))
		res.Stereo = make([]Stereo0D, len(src))
		for i := range src {
			res.Stereo[i] = readStereo(&src[i])
		}
	}
	for i := range out.WarningFlags {
		for j := range out.WarningFlags[i] {
			res.WarningFlags[i][j] = uint64(out.WarningFlags[i][j])
		}
	}
	C.FreeStructFromINCHI(&out)
	return res, nil
}

// GetINCHIKeyFromINCHI derives the InChIKey. All buffers are allocated here
// and sized as the library requires.
func GetINCHIKeyFromINCHI(inchi string, xtra1, xtra2 bool) (*KeyOutput, error) {
	cInchi := C.CString(inchi)
	defer C.free(unsafe.Pointer(cInchi))

	key := (*C.char)(C.calloc(KeyBufferLen, 1))
	if key == nil {
		return nil, ErrAlloc
	}
	defer C.free(unsafe.Pointer(key))

	var (
		x1, x2       *C.char
		flag1, flag2 C.int
	)
	if xtra1 {
		x1 = (*C.char)(C.calloc(ExtraBufferLen, 1))
		if x1 == nil {
			return nil, ErrAlloc
		}
		defer C.free(unsafe.Pointer(x1))
		flag1 = 1
	}
	if xtra2 {
		x2 = (*C.char)(C.calloc(ExtraBufferLen, 1))
		if x2 == nil {
			return nil, ErrAlloc
		}
		defer C.free(unsafe.Pointer(x2))
		flag2 = 1
	}

	rc := C.GetINCHIKeyFromINCHI(cInchi, flag1, flag2, key, x1, x2)
	res := &KeyOutput{Code: int(rc)}
	if rc == C.INCHIKEY_OK {
		res.Key = goString(key)
		res.Extra1 = goString(x1)
		res.Extra2 = goString(x2)
	}
	return res, nil
}

// Layout reports the compiled sizes and field offsets of the header
// structures.
func Layout() []StructLayout {
	var (
		atom   C.inchi_Atom
		stereo C.inchi_Stereo0D
		inp    C.inchi_Input
		out    C.inchi_Output
		inpI   C.inchi_InputINCHI
		outS   C.inchi_OutputStruct
	)
	return []StructLayout{
		{Name: "inchi_Atom", Size: unsafe.Sizeof(atom), Offsets: map[string]uintptr{
			"elname":        unsafe.Offsetof(atom.elname),
			"x":             unsafe.Offsetof(atom.x),
			"y":             unsafe.Offsetof(atom.y),
			"z":             unsafe.Offsetof(atom.z),
			"neighbor":      unsafe.Offsetof(atom.neighbor),
			"bond_type":     unsafe.Offsetof(atom.bond_type),
			"bond_stereo":   unsafe.Offsetof(atom.bond_stereo),
			"num_bonds":     unsafe.Offsetof(atom.num_bonds),
			"num_iso_H":     unsafe.Offsetof(atom.num_iso_H),
			"isotopic_mass": unsafe.Offsetof(atom.isotopic_mass),
			"radical":       unsafe.Offsetof(atom.radical),
			"charge":        unsafe.Offsetof(atom.charge),
		}},
		{Name: "inchi_Stereo0D", Size: unsafe.Sizeof(stereo), Offsets: map[string]uintptr{
			"neighbor":     unsafe.Offsetof(stereo.neighbor),
			"central_atom": unsafe.Offsetof(stereo.central_atom),
			"type":         unsafe.Offsetof(stereo._type),
			"parity":       unsafe.Offsetof(stereo.parity),
		}},
		{Name: "inchi_Input", Size: unsafe.Sizeof(inp), Offsets: map[string]uintptr{
			"atom":         unsafe.Offsetof(inp.atom),
			"stereo0D":     unsafe.Offsetof(inp.stereo0D),
			"szOptions":    unsafe.Offsetof(inp.szOptions),
			"num_atoms":    unsafe.Offsetof(inp.num_atoms),
			"num_stereo0D": unsafe.Offsetof(inp.num_stereo0D),
		}},
		{Name: "inchi_Output", Size: unsafe.Sizeof(out), Offsets: map[string]uintptr{
			"szInChI":   unsafe.Offsetof(out.szInChI),
			"szAuxInfo": unsafe.Offsetof(out.szAuxInfo),
			"szMessage": unsafe.Offsetof(out.szMessage),
			"szLog":     unsafe.Offsetof(out.szLog),
		}},
		{Name: "inchi_InputINCHI", Size: unsafe.Sizeof(inpI), Offsets: map[string]uintptr{
			"szInChI":   unsafe.Offsetof(inpI.szInChI),
			"szOptions": unsafe.Offsetof(inpI.szOptions),
		}},
		{Name: "inchi_OutputStruct", Size: unsafe.Sizeof(outS), Offsets: map[string]uintptr{
			"atom":         unsafe.Offsetof(outS.atom),
			"stereo0D":     unsafe.Offsetof(outS.stereo0D),
			"num_atoms":    unsafe.Offsetof(outS.num_atoms),
			"num_stereo0D": unsafe.Offsetof(outS.num_stereo0D),
			"szMessage":    unsafe.Offsetof(outS.szMessage),
			"szLog":        unsafe.Offsetof(outS.szLog),
			"WarningFlags": unsafe.Offsetof(outS.WarningFlags),
		}},
	}
}
