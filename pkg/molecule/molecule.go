package molecule

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/dominikbraun/graph"

	"github.com/chemkit/inchi-go/pkg/inchi"
)

var (
	ErrUnknownElement = errors.New("molecule: unknown element")
	ErrAtomIndex      = errors.New("molecule: atom index out of range")
	ErrSelfBond       = errors.New("molecule: bond to itself")
	ErrDuplicateBond  = errors.New("molecule: duplicate bond")
	ErrNoBond         = errors.New("molecule: atoms are not bonded")
)

// AutoH as Atom.ImplicitH lets the InChI library add implicit hydrogens.
const AutoH = inchi.AutoHydrogens

// Order is a bond order.
type Order int

const (
	Single   Order = 1
	Double   Order = 2
	Triple   Order = 3
	Aromatic Order = 4
)

func (o Order) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func (o Order) bondType() inchi.BondType {
	switch o {
	case Double:
		return inchi.BondDouble
	case Triple:
		return inchi.BondTriple
	case Aromatic:
		return inchi.BondAltern
	default:
		return inchi.BondSingle
	}
}

// Wedge is the 2D stereo mark of a bond, pointing from Begin to End.
type Wedge int

const (
	WedgeNone Wedge = iota
	WedgeUp
	WedgeDown
	WedgeEither
	// WedgeDoubleEither marks a double bond with unknown geometry.
	WedgeDoubleEither
)

func (w Wedge) String() string {
	switch w {
	case WedgeNone:
		return "none"
	case WedgeUp:
		return "up"
	case WedgeDown:
		return "down"
	case WedgeEither:
		return "either"
	case WedgeDoubleEither:
		return "double-either"
	default:
		return fmt.Sprintf("Wedge(%d)", int(w))
	}
}

// Atom is one atom of a Molecule.
type Atom struct {
	Element string        `json:"element" yaml:"element"`
	X       float64       `json:"x,omitempty" yaml:"x,omitempty"`
	Y       float64       `json:"y,omitempty" yaml:"y,omitempty"`
	Z       float64       `json:"z,omitempty" yaml:"z,omitempty"`
	Charge  int           `json:"charge,omitempty" yaml:"charge,omitempty"`
	Radical inchi.Radical `json:"radical,omitempty" yaml:"radical,omitempty"`
	// Isotope is the mass shift from the average isotopic mass; 0 for none.
	Isotope int `json:"isotope,omitempty" yaml:"isotope,omitempty"`
	// ImplicitH counts implicit hydrogens; AutoH lets the library decide.
	ImplicitH int `json:"implicit_h" yaml:"implicit_h"`
	IsotopicH HCounts `json:"isotopic_h,omitzero" yaml:"isotopic_h,omitempty,flow"`
}

// HCounts counts implicit 1H, 2H and 3H on top of Atom.ImplicitH.
type HCounts [inchi.NumHIsotopes]int

// IsZero reports whether no isotopic hydrogens are set.
func (h HCounts) IsZero() bool { return h == HCounts{} }

// Total is the number of isotopic hydrogens.
func (h HCounts) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Bond joins two atoms by index.
type Bond struct {
	Begin  int   `json:"begin" yaml:"begin"`
	End    int   `json:"end" yaml:"end"`
	Order  Order `json:"order" yaml:"order"`
	Stereo Wedge `json:"stereo,omitempty" yaml:"stereo,omitempty"`
}

// StereoKind distinguishes the 0D stereo descriptors a Molecule can hold.
type StereoKind int

const (
	Tetrahedral StereoKind = iota + 1
	CisTrans
	Allene
)

func (k StereoKind) String() string {
	switch k {
	case Tetrahedral:
		return "tetrahedral"
	case CisTrans:
		return "cis-trans"
	case Allene:
		return "allene"
	default:
		return fmt.Sprintf("StereoKind(%d)", int(k))
	}
}

// Stereo is a 0D stereo descriptor. For Tetrahedral, Center is the stereo
// atom and Neighbors its four neighbors (the center itself stands in for an
// implicit H or lone pair). For CisTrans, Neighbors are X, A, B, Y of
// X-A=B-Y and Center is unused. Allene descriptors only come from parsed
// InChI strings.
type Stereo struct {
	Kind      StereoKind   `json:"kind" yaml:"kind"`
	Center    int          `json:"center,omitempty" yaml:"center,omitempty"`
	Neighbors [4]int       `json:"neighbors" yaml:"neighbors,flow"`
	Parity    inchi.Parity `json:"parity" yaml:"parity"`
}

// Molecule is a mutable molecular graph. Build it with the Add methods so
// that connectivity stays consistent; the zero value is an empty molecule.
type Molecule struct {
	Atoms  []Atom   `json:"atoms" yaml:"atoms"`
	Bonds  []Bond   `json:"bonds,omitempty" yaml:"bonds,omitempty"`
	Stereo []Stereo `json:"stereo,omitempty" yaml:"stereo,omitempty"`

	// g holds atom indices as vertices; edge data is the bond index.
	g graph.Graph[int, int]
}

// New returns an empty molecule.
func New() *Molecule {
	return &Molecule{g: graph.New(graph.IntHash)}
}

func (m *Molecule) conn() graph.Graph[int, int] {
	if m.g == nil {
		m.g = graph.New(graph.IntHash)
		for i := range m.Atoms {
			_ = m.g.AddVertex(i)
		}
		for i, b := range m.Bonds {
			_ = m.g.AddEdge(b.Begin, b.End, graph.EdgeData(i))
		}
	}
	return m.g
}

// AddAtom appends an atom and returns its index.
func (m *Molecule) AddAtom(a Atom) (int, error) {
	if !IsElement(a.Element) {
		return -1, fmt.Errorf("%w: %q", ErrUnknownElement, a.Element)
	}
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(a.Z) {
		return -1, fmt.Errorf("molecule: atom %s has NaN coordinates", a.Element)
	}
	for _, h := range a.IsotopicH {
		if h < 0 {
			return -1, fmt.Errorf("molecule: atom %s has negative isotopic H count", a.Element)
		}
	}
	g := m.conn()
	idx := len(m.Atoms)
	if err := g.AddVertex(idx); err != nil {
		return -1, fmt.Errorf("molecule: add atom %d: %w", idx, err)
	}
	m.Atoms = append(m.Atoms, a)
	return idx, nil
}

// AddBond connects begin and end and returns the bond index.
func (m *Molecule) AddBond(begin, end int, order Order, stereo Wedge) (int, error) {
	if err := m.checkAtom(begin); err != nil {
		return -1, err
	}
	if err := m.checkAtom(end); err != nil {
		return -1, err
	}
	if begin == end {
		return -1, fmt.Errorf("%w: atom %d", ErrSelfBond, begin)
	}
	if order < Single || order > Aromatic {
		return -1, fmt.Errorf("molecule: bond %d-%d: invalid %s", begin, end, order)
	}
	if stereo < WedgeNone || stereo > WedgeDoubleEither {
		return -1, fmt.Errorf("molecule: bond %d-%d: invalid %s", begin, end, stereo)
	}
	idx := len(m.Bonds)
	if err := m.conn().AddEdge(begin, end, graph.EdgeData(idx)); err != nil {
		if errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return -1, fmt.Errorf("%w: %d-%d", ErrDuplicateBond, begin, end)
		}
		return -1, fmt.Errorf("molecule: add bond %d-%d: %w", begin, end, err)
	}
	m.Bonds = append(m.Bonds, Bond{Begin: begin, End: end, Order: order, Stereo: stereo})
	return idx, nil
}

// AddTetrahedral records a tetrahedral stereo center. Use center itself as a
// neighbor for an implicit hydrogen or lone pair.
func (m *Molecule) AddTetrahedral(center int, neighbors [4]int, parity inchi.Parity) error {
	if err := m.checkAtom(center); err != nil {
		return err
	}
	for _, n := range neighbors {
		if err := m.checkAtom(n); err != nil {
			return err
		}
		if n != center {
			if _, ok := m.BondBetween(center, n); !ok {
				return fmt.Errorf("%w: %d-%d", ErrNoBond, center, n)
			}
		}
	}
	m.Stereo = append(m.Stereo, Stereo{Kind: Tetrahedral, Center: center, Neighbors: neighbors, Parity: parity})
	return nil
}

// AddCisTrans records the geometry of the double bond a=b with substituents
// x on a and y on b.
func (m *Molecule) AddCisTrans(x, a, b, y int, parity inchi.Parity) error {
	for _, i := range [...]int{x, a, b, y} {
		if err := m.checkAtom(i); err != nil {
			return err
		}
	}
	bi, ok := m.BondBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrNoBond, a, b)
	}
	if m.Bonds[bi].Order != Double {
		return fmt.Errorf("molecule: cis/trans bond %d-%d is %s", a, b, m.Bonds[bi].Order)
	}
	for _, pair := range [...][2]int{{x, a}, {b, y}} {
		if _, ok := m.BondBetween(pair[0], pair[1]); !ok {
			return fmt.Errorf("%w: %d-%d", ErrNoBond, pair[0], pair[1])
		}
	}
	m.Stereo = append(m.Stereo, Stereo{Kind: CisTrans, Center: inchi.NoAtom, Neighbors: [4]int{x, a, b, y}, Parity: parity})
	return nil
}

func (m *Molecule) checkAtom(i int) error {
	if i < 0 || i >= len(m.Atoms) {
		return fmt.Errorf("%w: %d", ErrAtomIndex, i)
	}
	return nil
}

// BondBetween returns the index of the bond joining a and b.
func (m *Molecule) BondBetween(a, b int) (int, bool) {
	e, err := m.conn().Edge(a, b)
	if err != nil {
		return -1, false
	}
	idx, ok := e.Properties.Data.(int)
	return idx, ok
}

// Neighbors returns the atoms bonded to atom i in ascending order.
func (m *Molecule) Neighbors(i int) ([]int, error) {
	if err := m.checkAtom(i); err != nil {
		return nil, err
	}
	adj, err := m.conn().AdjacencyMap()
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(adj[i]))
	for n := range adj[i] {
		out = append(out, n)
	}
	slices.Sort(out)
	return out, nil
}

// Degree returns the number of explicit bonds on atom i.
func (m *Molecule) Degree(i int) int {
	n, err := m.Neighbors(i)
	if err != nil {
		return 0
	}
	return len(n)
}

// Components returns the number of disconnected fragments.
func (m *Molecule) Components() (int, error) {
	g := m.conn()
	seen := make(map[int]bool, len(m.Atoms))
	count := 0
	for i := range m.Atoms {
		if seen[i] {
			continue
		}
		count++
		err := graph.BFS(g, i, func(v int) bool {
			seen[v] = true
			return false
		})
		if err != nil {
			return 0, err
		}
	}
	return count, nil
}
