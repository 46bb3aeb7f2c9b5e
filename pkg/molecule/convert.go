package molecule

import (
	"fmt"

	"github.com/chemkit/inchi-go/pkg/inchi"
)

// ToInput converts m into the library input. Each bond is listed once, on
// its lower-index atom unless that atom already carries MaxNeighbors bonds.
// Wedges are expressed relative to the listing atom.
func (m *Molecule) ToInput(options string) (*inchi.Input, error) {
	in := &inchi.Input{
		Atoms:   make([]inchi.Atom, len(m.Atoms)),
		Options: options,
	}
	for i, a := range m.Atoms {
		in.Atoms[i] = inchi.Atom{
			Element:      a.Element,
			X:            a.X,
			Y:            a.Y,
			Z:            a.Z,
			ImplicitH:    a.ImplicitH,
			IsotopicH:    [inchi.NumHIsotopes]int(a.IsotopicH),
			IsotopicMass: a.Isotope,
			Radical:      a.Radical,
			Charge:       a.Charge,
		}
	}

	for bi, b := range m.Bonds {
		if err := m.checkAtom(b.Begin); err != nil {
			return nil, fmt.Errorf("bond %d: %w", bi, err)
		}
		if err := m.checkAtom(b.End); err != nil {
			return nil, fmt.Errorf("bond %d: %w", bi, err)
		}
		owner, other := b.Begin, b.End
		if other < owner {
			owner, other = other, owner
		}
		if len(in.Atoms[owner].Bonds) >= inchi.MaxNeighbors {
			owner, other = other, owner
		}
		if len(in.Atoms[owner].Bonds) >= inchi.MaxNeighbors {
			return nil, fmt.Errorf("molecule: bond %d: atoms %d and %d both have %d bonds", bi, b.Begin, b.End, inchi.MaxNeighbors)
		}
		in.Atoms[owner].Bonds = append(in.Atoms[owner].Bonds, inchi.Bond{
			Neighbor: other,
			Type:     b.Order.bondType(),
			Stereo:   bondStereo(b.Stereo, owner == b.Begin),
		})
	}

	for _, s := range m.Stereo {
		d := inchi.Stereo0D{Neighbors: s.Neighbors, Parity: s.Parity}
		switch s.Kind {
		case Tetrahedral:
			d.Type = inchi.StereoTypeTetrahedral
			d.CentralAtom = s.Center
		case Allene:
			d.Type = inchi.StereoTypeAllene
			d.CentralAtom = s.Center
		case CisTrans:
			d.Type = inchi.StereoTypeDoubleBond
			d.CentralAtom = inchi.NoAtom
		default:
			return nil, fmt.Errorf("molecule: unknown stereo kind %d", int(s.Kind))
		}
		in.Stereo = append(in.Stereo, d)
	}
	return in, nil
}

// bondStereo maps a wedge to the library code. atBegin reports whether the
// bond is listed on the wedge's narrow end.
func bondStereo(w Wedge, atBegin bool) inchi.BondStereo {
	switch w {
	case WedgeUp:
		if atBegin {
			return inchi.StereoSingle1Up
		}
		return inchi.StereoSingle2Up
	case WedgeDown:
		if atBegin {
			return inchi.StereoSingle1Down
		}
		return inchi.StereoSingle2Down
	case WedgeEither:
		if atBegin {
			return inchi.StereoSingle1Either
		}
		return inchi.StereoSingle2Either
	case WedgeDoubleEither:
		return inchi.StereoDoubleEither
	default:
		return inchi.StereoNone
	}
}

// wedgeFrom inverts bondStereo; flip reports that the narrow end is the
// neighbor rather than the listing atom.
func wedgeFrom(s inchi.BondStereo) (w Wedge, flip bool) {
	switch s {
	case inchi.StereoSingle1Up:
		return WedgeUp, false
	case inchi.StereoSingle1Down:
		return WedgeDown, false
	case inchi.StereoSingle1Either:
		return WedgeEither, false
	case inchi.StereoSingle2Up:
		return WedgeUp, true
	case inchi.StereoSingle2Down:
		return WedgeDown, true
	case inchi.StereoSingle2Either:
		return WedgeEither, true
	case inchi.StereoDoubleEither:
		return WedgeDoubleEither, false
	default:
		return WedgeNone, false
	}
}

func orderFrom(t inchi.BondType) Order {
	switch t {
	case inchi.BondDouble:
		return Double
	case inchi.BondTriple:
		return Triple
	case inchi.BondAltern:
		return Aromatic
	default:
		return Single
	}
}

// FromStructure builds a Molecule from a parsed InChI. Bonds listed on both
// of their atoms are kept once.
func FromStructure(st *inchi.Structure) (*Molecule, error) {
	if st == nil {
		return nil, fmt.Errorf("molecule: nil structure")
	}
	m := New()
	for i, a := range st.Atoms {
		_, err := m.AddAtom(Atom{
			Element:   a.Element,
			X:         a.X,
			Y:         a.Y,
			Z:         a.Z,
			Charge:    a.Charge,
			Radical:   a.Radical,
			Isotope:   a.IsotopicMass,
			ImplicitH: a.ImplicitH,
			IsotopicH: HCounts(a.IsotopicH),
		})
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
	}
	for i, a := range st.Atoms {
		for _, b := range a.Bonds {
			if b.Type == inchi.BondNone {
				continue
			}
			if _, dup := m.BondBetween(i, b.Neighbor); dup {
				continue
			}
			w, flip := wedgeFrom(b.Stereo)
			begin, end := i, b.Neighbor
			if flip {
				begin, end = end, begin
			}
			if _, err := m.AddBond(begin, end, orderFrom(b.Type), w); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range st.Stereo {
		switch s.Type {
		case inchi.StereoTypeTetrahedral:
			m.Stereo = append(m.Stereo, Stereo{Kind: Tetrahedral, Center: s.CentralAtom, Neighbors: s.Neighbors, Parity: s.Parity})
		case inchi.StereoTypeAllene:
			m.Stereo = append(m.Stereo, Stereo{Kind: Allene, Center: s.CentralAtom, Neighbors: s.Neighbors, Parity: s.Parity})
		case inchi.StereoTypeDoubleBond:
			m.Stereo = append(m.Stereo, Stereo{Kind: CisTrans, Center: inchi.NoAtom, Neighbors: s.Neighbors, Parity: s.Parity})
		}
	}
	return m, nil
}
