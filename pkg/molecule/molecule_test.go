package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemkit/inchi-go/pkg/inchi"
)

func mustAtom(t *testing.T, m *Molecule, el string) int {
	t.Helper()
	i, err := m.AddAtom(Atom{Element: el, ImplicitH: AutoH})
	require.NoError(t, err)
	return i
}

func mustBond(t *testing.T, m *Molecule, a, b int, o Order) int {
	t.Helper()
	i, err := m.AddBond(a, b, o, WedgeNone)
	require.NoError(t, err)
	return i
}

// ethanol builds C-C-O.
func ethanol(t *testing.T) *Molecule {
	m := New()
	c1 := mustAtom(t, m, "C")
	c2 := mustAtom(t, m, "C")
	o := mustAtom(t, m, "O")
	mustBond(t, m, c1, c2, Single)
	mustBond(t, m, c2, o, Single)
	return m
}

func TestBuilderRejects(t *testing.T) {
	m := ethanol(t)

	_, err := m.AddAtom(Atom{Element: "Xx"})
	assert.ErrorIs(t, err, ErrUnknownElement)

	_, err = m.AddBond(0, 0, Single, WedgeNone)
	assert.ErrorIs(t, err, ErrSelfBond)

	_, err = m.AddBond(1, 0, Double, WedgeNone)
	assert.ErrorIs(t, err, ErrDuplicateBond)

	_, err = m.AddBond(0, 5, Single, WedgeNone)
	assert.ErrorIs(t, err, ErrAtomIndex)

	_, err = m.AddBond(0, 2, Order(7), WedgeNone)
	assert.Error(t, err)

	assert.ErrorIs(t, m.AddCisTrans(1, 0, 2, 1, inchi.ParityOdd), ErrNoBond, "atoms 0 and 2 are not bonded")
	assert.NotErrorIs(t, m.AddCisTrans(0, 1, 2, 0, inchi.ParityOdd), ErrNoBond, "1-2 exists but is single")
	assert.Error(t, m.AddCisTrans(0, 0, 1, 2, inchi.ParityOdd), "single bond cannot carry cis/trans")
	assert.NoError(t, m.AddTetrahedral(1, [4]int{0, 2, 1, 1}, inchi.ParityOdd))
	assert.ErrorIs(t, m.AddTetrahedral(0, [4]int{1, 2, 0, 0}, inchi.ParityOdd), ErrNoBond)
}

func TestNeighborsAndComponents(t *testing.T) {
	m := ethanol(t)
	n, err := m.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, n)
	assert.Equal(t, 1, m.Degree(0))

	count, err := m.Components()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mustAtom(t, m, "Na")
	count, err = m.Components()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	bi, ok := m.BondBetween(2, 1)
	require.True(t, ok)
	assert.Equal(t, 1, bi)
}

func TestZeroValueMolecule(t *testing.T) {
	var m Molecule
	_, err := m.AddAtom(Atom{Element: "C"})
	require.NoError(t, err)
	count, err := m.Components()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFormula(t *testing.T) {
	assert.Equal(t, "C2H6O", ethanol(t).Formula())

	benzene := New()
	for i := 0; i < 6; i++ {
		mustAtom(t, benzene, "C")
	}
	for i := 0; i < 6; i++ {
		mustBond(t, benzene, i, (i+1)%6, Aromatic)
	}
	assert.Equal(t, "C6H6", benzene.Formula())

	water := New()
	_, err := water.AddAtom(Atom{Element: "O", ImplicitH: 2})
	require.NoError(t, err)
	assert.Equal(t, "H2O", water.Formula())

	salt := New()
	for _, el := range []string{"Na", "Cl"} {
		_, err := salt.AddAtom(Atom{Element: el})
		require.NoError(t, err)
	}
	assert.Equal(t, "ClNa", salt.Formula())

	assert.Equal(t, "", New().Formula())
}

func TestElements(t *testing.T) {
	n, ok := AtomicNumber("Og")
	require.True(t, ok)
	assert.Equal(t, 118, n)
	assert.Equal(t, MaxAtomicNumber, n)
	assert.Equal(t, "Fe", Symbol(26))
	assert.Equal(t, "", Symbol(0))
	assert.Equal(t, "", Symbol(119))
	d, ok := AtomicNumber("D")
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.False(t, IsElement("c"))
}
