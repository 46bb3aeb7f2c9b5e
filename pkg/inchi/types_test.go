package inchi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemkit/inchi-go/internal/bindings"
)

func TestToBindingsLayout(t *testing.T) {
	in := &Input{
		Atoms: []Atom{
			{
				Element: "C", X: 1.5, Y: -2, Z: 0.25,
				Bonds: []Bond{
					{Neighbor: 1, Type: BondSingle, Stereo: StereoSingle1Up},
					{Neighbor: 2, Type: BondDouble},
				},
				ImplicitH:    2,
				IsotopicH:    [NumHIsotopes]int{0, 1, 0},
				IsotopicMass: 1,
				Radical:      RadicalDoublet,
				Charge:       -1,
			},
			{Element: "F", ImplicitH: AutoHydrogens},
			{Element: "Cl"},
		},
		Stereo: []Stereo0D{
			{Neighbors: [4]int{1, 0, 2, 0}, CentralAtom: 0, Type: StereoTypeTetrahedral, Parity: ParityEven},
		},
	}
	require.NoError(t, in.Validate())
	bin := in.toBindings("-FixedH")

	assert.Equal(t, "-FixedH", bin.Options)
	require.Len(t, bin.Atoms, 3)
	c := bin.Atoms[0]
	assert.Equal(t, "C", c.Element)
	assert.Equal(t, [3]float64{1.5, -2, 0.25}, [3]float64{c.X, c.Y, c.Z})
	assert.Equal(t, []int16{1, 2}, c.Neighbor)
	assert.Equal(t, []int16{int16(BondSingle), int16(BondDouble)}, c.BondType)
	assert.Equal(t, []int8{int8(StereoSingle1Up), int8(StereoNone)}, c.BondStereo)
	assert.Equal(t, [bindings.NumIsoH]int8{2, 0, 1, 0}, c.NumIsoH, "slot 0 is ImplicitH, 1..3 are 1H/2H/3H")
	assert.Equal(t, int8(1), c.IsotopicMass)
	assert.Equal(t, int8(RadicalDoublet), c.Radical)
	assert.Equal(t, int8(-1), c.Charge)
	assert.Equal(t, int8(-1), bin.Atoms[1].NumIsoH[0])
	assert.Empty(t, bin.Atoms[2].Neighbor)

	require.Len(t, bin.Stereo, 1)
	assert.Equal(t, bindings.Stereo0D{
		Neighbor:    [4]int16{1, 0, 2, 0},
		CentralAtom: 0,
		Type:        int8(StereoTypeTetrahedral),
		Parity:      int8(ParityEven),
	}, bin.Stereo[0])

	assert.Nil(t, (&Input{Atoms: in.Atoms}).toBindings("").Stereo)
}

func TestStructureFromBindings(t *testing.T) {
	out := &bindings.StructOutput{
		Code: int(RetWarning),
		Atoms: []bindings.Atom{
			{
				Element:    "C",
				X:          0.5,
				Neighbor:   []int16{1},
				BondType:   []int16{int16(BondDouble)},
				BondStereo: []int8{int8(StereoDoubleEither)},
				NumIsoH:    [bindings.NumIsoH]int8{1, 0, 0, 1},
				Charge:     1,
			},
			{Element: "C", NumIsoH: [bindings.NumIsoH]int8{2}, Radical: int8(RadicalTriplet), IsotopicMass: -1},
		},
		Stereo: []bindings.Stereo0D{
			{Neighbor: [4]int16{2, 0, 1, 3}, CentralAtom: NoAtom, Type: int8(StereoTypeDoubleBond), Parity: int8(ParityOdd)},
		},
		Message:      "Charges were rearranged",
		Log:          "log",
		WarningFlags: [2][2]uint64{{1, 0}, {0, 2}},
	}

	st := structureFromBindings(out)
	assert.Equal(t, RetWarning, st.Code)
	assert.Equal(t, "Charges were rearranged", st.Message)
	assert.Equal(t, "log", st.Log)
	assert.Equal(t, out.WarningFlags, st.WarningFlags)

	require.Len(t, st.Atoms, 2)
	assert.Equal(t, Atom{
		Element:   "C",
		X:         0.5,
		Bonds:     []Bond{{Neighbor: 1, Type: BondDouble, Stereo: StereoDoubleEither}},
		ImplicitH: 1,
		IsotopicH: [NumHIsotopes]int{0, 0, 1},
		Charge:    1,
	}, st.Atoms[0])
	assert.Nil(t, st.Atoms[1].Bonds)
	assert.Equal(t, 2, st.Atoms[1].ImplicitH)
	assert.Equal(t, RadicalTriplet, st.Atoms[1].Radical)
	assert.Equal(t, -1, st.Atoms[1].IsotopicMass)

	assert.Equal(t, []Stereo0D{
		{Neighbors: [4]int{2, 0, 1, 3}, CentralAtom: NoAtom, Type: StereoTypeDoubleBond, Parity: ParityOdd},
	}, st.Stereo)

	empty := structureFromBindings(&bindings.StructOutput{Code: int(RetOK)})
	assert.Nil(t, empty.Atoms)
	assert.Nil(t, empty.Stereo)
}

func TestBindingsRoundTrip(t *testing.T) {
	in := &Input{
		Atoms: []Atom{
			{Element: "C", Bonds: []Bond{{Neighbor: 1, Type: BondSingle, Stereo: StereoSingle2Down}}, ImplicitH: 3, IsotopicH: [NumHIsotopes]int{1, 2, 3}},
			{Element: "O", ImplicitH: 1, IsotopicMass: 2, Charge: -1},
		},
		Stereo: []Stereo0D{{Neighbors: [4]int{0, 1, 1, 0}, CentralAtom: 1, Type: StereoTypeAllene, Parity: ParityUnknown}},
	}
	bin := in.toBindings("")
	st := structureFromBindings(&bindings.StructOutput{Atoms: bin.Atoms, Stereo: bin.Stereo})
	assert.Equal(t, in.Atoms, st.Atoms)
	assert.Equal(t, in.Stereo, st.Stereo)
}
