package inchi

import "fmt"

// Limits declared by inchi_api.h.
const (
	AtomElementLen    = 6     // ATOM_EL_LEN, including the terminating NUL
	NumHIsotopes      = 3     // NUM_H_ISOTOPES: 1H, 2H (D), 3H (T)
	IsotopicShiftFlag = 10000 // ISOTOPIC_SHIFT_FLAG
	IsotopicShiftMax  = 100   // ISOTOPIC_SHIFT_MAX
	MaxNeighbors      = 20    // length of inchi_Atom.neighbor
	MaxAtoms          = 32767 // largest count an AT_NUM can carry
)

const (
	// NoAtom fills unused neighbor and central-atom slots of a Stereo0D.
	NoAtom = -1

	// AutoHydrogens as Atom.ImplicitH asks the library to add implicit
	// hydrogens itself.
	AutoHydrogens = -1
)

// BondType is the bond_type code of an inchi_Atom neighbor.
type BondType int

const (
	BondNone   BondType = 0
	BondSingle BondType = 1
	BondDouble BondType = 2
	BondTriple BondType = 3
	BondAltern BondType = 4 // aromatic
)

func (b BondType) String() string {
	switch b {
	case BondNone:
		return "none"
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondAltern:
		return "aromatic"
	default:
		return fmt.Sprintf("BondType(%d)", int(b))
	}
}

func (b BondType) valid() bool { return b >= BondNone && b <= BondAltern }

// BondStereo is the bond_stereo code of an inchi_Atom neighbor. The "1"
// variants put the stereo center at the atom that lists the bond, the "2"
// variants at the neighbor.
type BondStereo int

const (
	StereoNone          BondStereo = 0
	StereoSingle1Up     BondStereo = 1
	StereoSingle1Either BondStereo = 2
	StereoSingle2Either BondStereo = 3
	StereoSingle2Up     BondStereo = 4
	StereoSingle2Down   BondStereo = 5
	StereoSingle1Down   BondStereo = 6
	StereoDoubleEither  BondStereo = 7
)

func (s BondStereo) String() string {
	switch s {
	case StereoNone:
		return "none"
	case StereoSingle1Up:
		return "1up"
	case StereoSingle1Either:
		return "1either"
	case StereoSingle2Either:
		return "2either"
	case StereoSingle2Up:
		return "2up"
	case StereoSingle2Down:
		return "2down"
	case StereoSingle1Down:
		return "1down"
	case StereoDoubleEither:
		return "double-either"
	default:
		return fmt.Sprintf("BondStereo(%d)", int(s))
	}
}

func (s BondStereo) valid() bool { return s >= StereoNone && s <= StereoDoubleEither }

// Parity is the parity tag of a Stereo0D.
type Parity int

const (
	ParityNone      Parity = 0
	ParityOdd       Parity = 1
	ParityEven      Parity = 2
	ParityUnknown   Parity = 3
	ParityUndefined Parity = 4
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityOdd:
		return "odd"
	case ParityEven:
		return "even"
	case ParityUnknown:
		return "unknown"
	case ParityUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

func (p Parity) valid() bool { return p >= ParityNone && p <= ParityUndefined }

// StereoType is the type tag of a Stereo0D.
type StereoType int

const (
	StereoTypeNone        StereoType = 0
	StereoTypeDoubleBond  StereoType = 1
	StereoTypeTetrahedral StereoType = 2
	StereoTypeAllene      StereoType = 3
)

func (t StereoType) String() string {
	switch t {
	case StereoTypeNone:
		return "none"
	case StereoTypeDoubleBond:
		return "double-bond"
	case StereoTypeTetrahedral:
		return "tetrahedral"
	case StereoTypeAllene:
		return "allene"
	default:
		return fmt.Sprintf("StereoType(%d)", int(t))
	}
}

func (t StereoType) valid() bool { return t >= StereoTypeNone && t <= StereoTypeAllene }

// Radical is the radical field of an inchi_Atom.
type Radical int

const (
	RadicalNone    Radical = 0
	RadicalSinglet Radical = 1
	RadicalDoublet Radical = 2
	RadicalTriplet Radical = 3
)

func (r Radical) String() string {
	switch r {
	case RadicalNone:
		return "none"
	case RadicalSinglet:
		return "singlet"
	case RadicalDoublet:
		return "doublet"
	case RadicalTriplet:
		return "triplet"
	default:
		return fmt.Sprintf("Radical(%d)", int(r))
	}
}

func (r Radical) valid() bool { return r >= RadicalNone && r <= RadicalTriplet }

// Ret is the status returned by GetINCHI and GetStructFromINCHI.
type Ret int

const (
	RetOK      Ret = 0 // success
	RetWarning Ret = 1 // success with warnings
	RetError   Ret = 2
	RetFatal   Ret = 3
	RetUnknown Ret = 4
	RetBusy    Ret = 5 // previous call has not returned yet
	RetEOF     Ret = 6 // no structural data has been provided
)

func (r Ret) String() string {
	switch r {
	case RetOK:
		return "ok"
	case RetWarning:
		return "warning"
	case RetError:
		return "error"
	case RetFatal:
		return "fatal"
	case RetUnknown:
		return "unknown"
	case RetBusy:
		return "busy"
	case RetEOF:
		return "eof"
	default:
		return fmt.Sprintf("Ret(%d)", int(r))
	}
}

// Success reports whether r is OK or Warning.
func (r Ret) Success() bool { return r == RetOK || r == RetWarning }

// KeyRet is the status returned by GetINCHIKeyFromINCHI.
type KeyRet int

const (
	KeyOK              KeyRet = 0
	KeyUnknownError    KeyRet = 1
	KeyEmptyInput      KeyRet = 2
	KeyInvalidPrefix   KeyRet = 3
	KeyNotEnoughMemory KeyRet = 4
	KeyInvalidInChI    KeyRet = 5
	KeyInvalidStdInChI KeyRet = 6
)

func (k KeyRet) String() string {
	switch k {
	case KeyOK:
		return "ok"
	case KeyUnknownError:
		return "unknown error"
	case KeyEmptyInput:
		return "empty input"
	case KeyInvalidPrefix:
		return "invalid InChI prefix"
	case KeyNotEnoughMemory:
		return "not enough memory"
	case KeyInvalidInChI:
		return "invalid InChI"
	case KeyInvalidStdInChI:
		return "invalid standard InChI"
	default:
		return fmt.Sprintf("KeyRet(%d)", int(k))
	}
}
