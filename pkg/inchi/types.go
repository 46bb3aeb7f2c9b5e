package inchi

import (
	"github.com/chemkit/inchi-go/internal/bindings"
)

// Bond is one entry of an atom's adjacency list.
type Bond struct {
	Neighbor int        `json:"neighbor" yaml:"neighbor" msgpack:"n"`
	Type     BondType   `json:"type" yaml:"type" msgpack:"t"`
	Stereo   BondStereo `json:"stereo,omitempty" yaml:"stereo,omitempty" msgpack:"s"`
}

// Atom describes one atom of an input or output structure. At most
// MaxNeighbors bonds can be listed on a single atom; a bond only needs to be
// listed on one of its two atoms.
type Atom struct {
	Element string  `json:"element" yaml:"element" msgpack:"e"`
	X       float64 `json:"x" yaml:"x" msgpack:"x"`
	Y       float64 `json:"y" yaml:"y" msgpack:"y"`
	Z       float64 `json:"z" yaml:"z" msgpack:"z"`
	Bonds   []Bond  `json:"bonds,omitempty" yaml:"bonds,omitempty" msgpack:"b"`

	// ImplicitH is the number of non-isotopic implicit hydrogens, or
	// AutoHydrogens to let the library add them.
	ImplicitH int `json:"implicit_h" yaml:"implicit_h" msgpack:"h"`

	// IsotopicH counts implicit 1H, 2H and 3H.
	IsotopicH [NumHIsotopes]int `json:"isotopic_h" yaml:"isotopic_h" msgpack:"ih"`

	IsotopicMass int     `json:"isotopic_mass,omitempty" yaml:"isotopic_mass,omitempty" msgpack:"m"`
	Radical      Radical `json:"radical,omitempty" yaml:"radical,omitempty" msgpack:"r"`
	Charge       int     `json:"charge,omitempty" yaml:"charge,omitempty" msgpack:"c"`
}

// Stereo0D is a 0D stereo descriptor. All four neighbor slots always name
// atoms; a tetrahedral center may repeat itself in one slot. A double bond
// descriptor has no central atom and holds NoAtom there.
type Stereo0D struct {
	Neighbors   [4]int     `json:"neighbors" yaml:"neighbors" msgpack:"n"`
	CentralAtom int        `json:"central_atom" yaml:"central_atom" msgpack:"c"`
	Type        StereoType `json:"type" yaml:"type" msgpack:"t"`
	Parity      Parity     `json:"parity" yaml:"parity" msgpack:"p"`
}

// Input is a structure to convert. Options uses the library's option
// syntax; see NormalizeOptions.
type Input struct {
	Atoms   []Atom     `json:"atoms" yaml:"atoms" msgpack:"a"`
	Stereo  []Stereo0D `json:"stereo,omitempty" yaml:"stereo,omitempty" msgpack:"s"`
	Options string     `json:"options,omitempty" yaml:"options,omitempty" msgpack:"o"`
}

// Result is the outcome of a successful structure conversion.
type Result struct {
	InChI    string   `json:"inchi" msgpack:"i"`
	AuxInfo  string   `json:"aux_info,omitempty" msgpack:"a"`
	Key      string   `json:"key,omitempty" msgpack:"k"`
	Code     Ret      `json:"code" msgpack:"c"`
	Message  string   `json:"message,omitempty" msgpack:"m"`
	Log      string   `json:"log,omitempty" msgpack:"l"`
	Warnings []string `json:"warnings,omitempty" msgpack:"w"`
}

// Structure is the outcome of a successful InChI parse.
type Structure struct {
	Atoms        []Atom       `json:"atoms"`
	Stereo       []Stereo0D   `json:"stereo,omitempty"`
	Code         Ret          `json:"code"`
	Message      string       `json:"message,omitempty"`
	Log          string       `json:"log,omitempty"`
	WarningFlags [2][2]uint64 `json:"warning_flags"`
}

// Key is an InChIKey with its optional hash extensions.
type Key struct {
	Key    string `json:"key" msgpack:"k"`
	Extra1 string `json:"extra1,omitempty" msgpack:"x1"`
	Extra2 string `json:"extra2,omitempty" msgpack:"x2"`
}

// KeyOptions selects the optional hash extensions of an InChIKey.
type KeyOptions struct {
	Extra1 bool `json:"extra1"`
	Extra2 bool `json:"extra2"`
}

// toBindings narrows a validated Input to the C field widths.
func (in *Input) toBindings(options string) *bindings.Input {
	out := &bindings.Input{
		Atoms:   make([]bindings.Atom, len(in.Atoms)),
		Options: options,
	}
	for i := range in.Atoms {
		a := &in.Atoms[i]
		ba := bindings.Atom{
			Element:      a.Element,
			X:            a.X,
			Y:            a.Y,
			Z:            a.Z,
			Neighbor:     make([]int16, len(a.Bonds)),
			BondType:     make([]int16, len(a.Bonds)),
			BondStereo:   make([]int8, len(a.Bonds)),
			IsotopicMass: int8(a.IsotopicMass),
			Radical:      int8(a.Radical),
			Charge:       int8(a.Charge),
		}
		for j, b := range a.Bonds {
			ba.Neighbor[j] = int16(b.Neighbor)
			ba.BondType[j] = int16(b.Type)
			ba.BondStereo[j] = int8(b.Stereo)
		}
		ba.NumIsoH[0] = int8(a.ImplicitH)
		for j, h := range a.IsotopicH {
			ba.NumIsoH[j+1] = int8(h)
		}
		out.Atoms[i] = ba
	}
	if len(in.Stereo) > 0 {
		out.Stereo = make([]bindings.Stereo0D, len(in.Stereo))
		for i, s := range in.Stereo {
			out.Stereo[i] = stereoToBindings(s)
		}
	}
	return out
}

func stereoToBindings(s Stereo0D) bindings.Stereo0D {
	var bs bindings.Stereo0D
	for i, n := range s.Neighbors {
		bs.Neighbor[i] = int16(n)
	}
	bs.CentralAtom = int16(s.CentralAtom)
	bs.Type = int8(s.Type)
	bs.Parity = int8(s.Parity)
	return bs
}

func atomFromBindings(ba *bindings.Atom) Atom {
	a := Atom{
		Element:      ba.Element,
		X:            ba.X,
		Y:            ba.Y,
		Z:            ba.Z,
		ImplicitH:    int(ba.NumIsoH[0]),
		IsotopicMass: int(ba.IsotopicMass),
		Radical:      Radical(ba.Radical),
		Charge:       int(ba.Charge),
	}
	if n := len(ba.Neighbor); n > 0 {
		a.Bonds = make([]Bond, n)
		for j := 0; j < n; j++ {
			a.Bonds[j] = Bond{
				Neighbor: int(ba.Neighbor[j]),
				Type:     BondType(ba.BondType[j]),
				Stereo:   BondStereo(ba.BondStereo[j]),
			}
		}
	}
	for j := range a.IsotopicH {
		a.IsotopicH[j] = int(ba.NumIsoH[j+1])
	}
	return a
}

func stereoFromBindings(bs bindings.Stereo0D) Stereo0D {
	var s Stereo0D
	for i, n := range bs.Neighbor {
		s.Neighbors[i] = int(n)
	}
	s.CentralAtom = int(bs.CentralAtom)
	s.Type = StereoType(bs.Type)
	s.Parity = Parity(bs.Parity)
	return s
}

func structureFromBindings(out *bindings.StructOutput) *Structure {
	st := &Structure{
		Code:         Ret(out.Code),
		Message:      out.Message,
		Log:          out.Log,
		WarningFlags: out.WarningFlags,
	}
	if len(out.Atoms) > 0 {
		st.Atoms = make([]Atom, len(out.Atoms))
		for i := range out.Atoms {
			st.Atoms[i] = atomFromBindings(&out.Atoms[i])
		}
	}
	if len(out.Stereo) > 0 {
		st.Stereo = make([]Stereo0D, len(out.Stereo))
		for i, s := range out.Stereo {
			st.Stereo[i] = stereoFromBindings(s)
		}
	}
	return st
}
