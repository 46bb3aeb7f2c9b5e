//go:build cgo && !windows

package bindings

import (
	"testing"
	"unsafe"
)

// Go mirrors of the declarations in inchi_api.h, field for field. On the
// LP64 targets this test runs on, unsigned long is pointer sized.
type atomMirror struct {
	elname       [ElementLen]byte
	x, y, z      float64
	neighbor     [MaxNeighbors]int16
	bondType     [MaxNeighbors]int16
	bondStereo   [MaxNeighbors]int8
	numBonds     int16
	numIsoH      [NumIsoH]int8
	isotopicMass int8
	radical      int8
	charge       int8
}

type stereoMirror struct {
	neighbor    [StereoArity]int16
	centralAtom int16
	typ         int8
	parity      int8
}

type inputMirror struct {
	atom        unsafe.Pointer
	stereo0D    unsafe.Pointer
	szOptions   unsafe.Pointer
	numAtoms    int16
	numStereo0D int16
}

type outputMirror struct {
	szInChI, szAuxInfo, szMessage, szLog unsafe.Pointer
}

type inputINCHIMirror struct {
	szInChI, szOptions unsafe.Pointer
}

type outputStructMirror struct {
	atom         unsafe.Pointer
	stereo0D     unsafe.Pointer
	numAtoms     int16
	numStereo0D  int16
	szMessage    unsafe.Pointer
	szLog        unsafe.Pointer
	warningFlags [2][2]uintptr
}

func TestLayoutMatchesHeader(t *testing.T) {
	var (
		a  atomMirror
		s  stereoMirror
		in inputMirror
		o  outputMirror
		ii inputINCHIMirror
		os outputStructMirror
	)
	want := map[string]StructLayout{
		"inchi_Atom": {Size: unsafe.Sizeof(a), Offsets: map[string]uintptr{
			"elname":        unsafe.Offsetof(a.elname),
			"x":             unsafe.Offsetof(a.x),
			"y":             unsafe.Offsetof(a.y),
			"z":             unsafe.Offsetof(a.z),
			"neighbor":      unsafe.Offsetof(a.neighbor),
			"bond_type":     unsafe.Offsetof(a.bondType),
			"bond_stereo":   unsafe.Offsetof(a.bondStereo),
			"num_bonds":     unsafe.Offsetof(a.numBonds),
			"num_iso_H":     unsafe.Offsetof(a.numIsoH),
			"isotopic_mass": unsafe.Offsetof(a.isotopicMass),
			"radical":       unsafe.Offsetof(a.radical),
			"charge":        unsafe.Offsetof(a.charge),
		}},
		"inchi_Stereo0D": {Size: unsafe.Sizeof(s), Offsets: map[string]uintptr{
			"neighbor":     unsafe.Offsetof(s.neighbor),
			"central_atom": unsafe.Offsetof(s.centralAtom),
			"type":         unsafe.Offsetof(s.typ),
			"parity":       unsafe.Offsetof(s.parity),
		}},
		"inchi_Input": {Size: unsafe.Sizeof(in), Offsets: map[string]uintptr{
			"atom":         unsafe.Offsetof(in.atom),
			"stereo0D":     unsafe.Offsetof(in.stereo0D),
			"szOptions":    unsafe.Offsetof(in.szOptions),
			"num_atoms":    unsafe.Offsetof(in.numAtoms),
			"num_stereo0D": unsafe.Offsetof(in.numStereo0D),
		}},
		"inchi_Output": {Size: unsafe.Sizeof(o), Offsets: map[string]uintptr{
			"szInChI":   unsafe.Offsetof(o.szInChI),
			"szAuxInfo": unsafe.Offsetof(o.szAuxInfo),
			"szMessage": unsafe.Offsetof(o.szMessage),
			"szLog":     unsafe.Offsetof(o.szLog),
		}},
		"inchi_InputINCHI": {Size: unsafe.Sizeof(ii), Offsets: map[string]uintptr{
			"szInChI":   unsafe.Offsetof(ii.szInChI),
			"szOptions": unsafe.Offsetof(ii.szOptions),
		}},
		"inchi_OutputStruct": {Size: unsafe.Sizeof(os), Offsets: map[string]uintptr{
			"atom":         unsafe.Offsetof(os.atom),
			"stereo0D":     unsafe.Offsetof(os.stereo0D),
			"num_atoms":    unsafe.Offsetof(os.numAtoms),
			"num_stereo0D": unsafe.Offsetof(os.numStereo0D),
			"szMessage":    unsafe.Offsetof(os.szMessage),
			"szLog":        unsafe.Offsetof(os.szLog),
			"WarningFlags": unsafe.Offsetof(os.warningFlags),
		}},
	}

	got := Layout()
	if len(got) != len(want) {
		t.Fatalf("Layout returned %d structs, want %d", len(got), len(want))
	}
	for _, l := range got {
		w, ok := want[l.Name]
		if !ok {
			t.Errorf("unexpected struct %s", l.Name)
			continue
		}
		if l.Size != w.Size {
			t.Errorf("%s: size %d, want %d", l.Name, l.Size, w.Size)
		}
		for field, off := range w.Offsets {
			if l.Offsets[field] != off {
				t.Errorf("%s.%s: offset %d, want %d", l.Name, field, l.Offsets[field], off)
			}
		}
	}
}

func TestAvailable(t *testing.T) {
	if !Available() {
		t.Fatal("cgo build should report the native library as available")
	}
}
