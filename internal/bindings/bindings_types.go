//go:build cgo

package bindings

/*
#include <stdlib.h>
#include <string.h>
#include "inchi_api.h"
*/
import "C"

import (
	"unsafe"
)

// newInput copies in into a C-allocated inchi_Input. The atom and stereo
// arrays are C memory as well because inchi_Input holds pointers to them.
// Release with freeInput.
func newInput(in *Input) (*C.inchi_Input, error) {
	cin := (*C.inchi_Input)(C.calloc(1, C.sizeof_inchi_Input))
	if cin == nil {
		return nil, ErrAlloc
	}

	if n := len(in.Atoms); n > 0 {
		cin.atom = (*C.inchi_Atom)(C.calloc(C.size_t(n), C.sizeof_inchi_Atom))
		if cin.atom == nil {
			freeInput(cin)
			return nil, ErrAlloc
		}
		dst := unsafe.Slice(cin.atom, n)
		for i := range in.Atoms {
			if err := fillAtom(&dst[i], &in.Atoms[i]); err != nil {
				freeInput(cin)
				return nil, err
			}
		}
		cin.num_atoms = C.AT_NUM(n)
	}

	if n := len(in.Stereo); n > 0 {
		cin.stereo0D = (*C.inchi_Stereo0D)(C.calloc(C.size_t(n), C.sizeof_inchi_Stereo0D))
		if cin.stereo0D == nil {
			freeInput(cin)
			return nil, ErrAlloc
		}
		dst := unsafe.Slice(cin.stereo0D, n)
		for i := range in.Stereo {
			fillStereo(&dst[i], &in.Stereo[i])
		}
		cin.num_stereo0D = C.AT_NUM(n)
	}

	if in.Options != "" {
		cin.szOptions = C.CString(in.Options)
	}
	return cin, nil
}

// freeInput releases memory allocated by newInput. It never touches
// library-owned buffers.
func freeInput(cin *C.inchi_Input) {
	if cin == nil {
		return
	}
	if cin.atom != nil {
		C.free(unsafe.Pointer(cin.atom))
	}
	if cin.stereo0D != nil {
		C.free(unsafe.Pointer(cin.stereo0D))
	}
	if cin.szOptions != nil {
		C.free(unsafe.Pointer(cin.szOptions))
	}
	C.free(unsafe.Pointer(cin))
}

func fillAtom(dst *C.inchi_Atom, src *Atom) error {
	n := len(src.Neighbor)
	if n > MaxNeighbors || len(src.BondType) != n || len(src.BondStereo) != n {
		return ErrBondArity
	}
	// calloc leaves the trailing NUL in place.
	for i := 0; i < len(src.Element) && i < ElementLen-1; i++ {
		dst.elname[i] = C.char(src.Element[i])
	}
	dst.x = C.double(src.X)
	dst.y = C.double(src.Y)
	dst.z = C.double(src.Z)
	for i := 0; i < n; i++ {
		dst.neighbor[i] = C.AT_NUM(src.Neighbor[i])
		dst.bond_type[i] = C.AT_NUM(src.BondType[i])
		dst.bond_stereo[i] = C.S_CHAR(src.BondStereo[i])
	}
	dst.num_bonds = C.AT_NUM(n)
	for i, h := range src.NumIsoH {
		dst.num_iso_H[i] = C.S_CHAR(h)
	}
	dst.isotopic_mass = C.S_CHAR(src.IsotopicMass)
	dst.radical = C.S_CHAR(src.Radical)
	dst.charge = C.S_CHAR(src.Charge)
	return nil
}

func fillStereo(dst *C.inchi_Stereo0D, src *Stereo0D) {
	for i, n := range src.Neighbor {
		dst.neighbor[i] = C.AT_NUM(n)
	}
	dst.central_atom = C.AT_NUM(src.CentralAtom)
	dst._type = C.S_CHAR(src.Type)
	dst.parity = C.S_CHAR(src.Parity)
}

// readAtom copies an atom out of library-owned memory.
func readAtom(src *C.inchi_Atom) Atom {
	n := int(src.num_bonds)
	if n < 0 {
		n = 0
	}
	if n > MaxNeighbors {
		n = MaxNeighbors
	}

	name := make([]byte, 0, ElementLen)
	for _, c := range src.elname {
		if c == 0 {
			break
		}
		name = append(name, byte(c))
	}

	a := Atom{
		Element:      string(name),
		X:            float64(src.x),
		Y:            float64(src.y),
		Z:            float64(src.z),
		Neighbor:     make([]int16, n),
		BondType:     make([]int16, n),
		BondStereo:   make([]int8, n),
		IsotopicMass: int8(src.isotopic_mass),
		Radical:      int8(src.radical),
		Charge:       int8(src.charge),
	}
	for i := 0; i < n; i++ {
		a.Neighbor[i] = int16(src.neighbor[i])
		a.BondType[i] = int16(src.bond_type[i])
		a.BondStereo[i] = int8(src.bond_stereo[i])
	}
	for i := range a.NumIsoH {
		a.NumIsoH[i] = int8(src.num_iso_H[i])
	}
	return a
}

func readStereo(src *C.inchi_Stereo0D) Stereo0D {
	var s Stereo0D
	for i := range s.Neighbor {
		s.Neighbor[i] = int16(src.neighbor[i])
	}
	s.CentralAtom = int16(src.central_atom)
	s.Type = int8(src._type)
	s.Parity = int8(src.parity)
	return s
}

// goString copies a NUL-terminated C string. It does not take ownership.
func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
