package bindings

import "errors"

// Array and buffer sizes declared by inchi_api.h. They are repeated here so
// that the stub build and the public package can size things without cgo.
const (
	ElementLen   = 6  // ATOM_EL_LEN, including the terminating NUL
	MaxNeighbors = 20 // length of inchi_Atom.neighbor
	NumIsoH      = 4  // NUM_H_ISOTOPES+1
	StereoArity  = 4  // length of inchi_Stereo0D.neighbor

	// KeyBufferLen is the caller-supplied InChIKey buffer: 27 characters
	// plus NUL.
	KeyBufferLen = 28
	// ExtraBufferLen is the size of each optional hash-extension buffer.
	ExtraBufferLen = 65
)

// Atom is a bounded view of inchi_Atom. Neighbor, BondType and BondStereo
// are parallel and their common length is num_bonds.
type Atom struct {
	Element      string
	X, Y, Z      float64
	Neighbor     []int16
	BondType     []int16
	BondStereo   []int8
	NumIsoH      [NumIsoH]int8
	IsotopicMass int8
	Radical      int8
	Charge       int8
}

// Stereo0D mirrors inchi_Stereo0D.
type Stereo0D struct {
	Neighbor    [StereoArity]int16
	CentralAtom int16
	Type        int8
	Parity      int8
}

// Input is copied into a C-allocated inchi_Input for a single call.
type Input struct {
	Atoms   []Atom
	Stereo  []Stereo0D
	Options string
}

// Output holds Go copies of the strings of an inchi_Output. The native
// buffers have already been released with FreeINCHI when this is returned.
type Output struct {
	Code    int
	InChI   string
	AuxInfo string
	Message string
	Log     string
}

// StructOutput holds Go copies of an inchi_OutputStruct, already released
// with FreeStructFromINCHI.
type StructOutput struct {
	Code         int
	Atoms        []Atom
	Stereo       []Stereo0D
	Message      string
	Log          string
	WarningFlags [2][2]uint64
}

// KeyOutput is the result of GetINCHIKeyFromINCHI.
type KeyOutput struct {
	Code   int
	Key    string
	Extra1 string
	Extra2 string
}

// StructLayout reports the size and field offsets of one C structure as
// compiled against inchi_api.h.
type StructLayout struct {
	Name    string
	Size    uintptr
	Offsets map[string]uintptr
}

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to fall back to safer defaults.
	ErrNotBuilt = errors.New("inchi/internal/bindings: native bindings not built")

	// ErrAlloc is returned when the C allocator cannot provide input buffers.
	ErrAlloc = errors.New("inchi/internal/bindings: allocation failed")

	// ErrNilInput is returned when GetINCHI is called without input.
	ErrNilInput = errors.New("inchi/internal/bindings: nil input")

	// ErrBondArity is returned when an atom's parallel bond slices disagree
	// in length or exceed MaxNeighbors.
	ErrBondArity = errors.New("inchi/internal/bindings: inconsistent bond arrays")
)
