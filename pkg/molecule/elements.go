package molecule

// symbols lists the element symbols by atomic number; index 0 is unused.
var symbols = [...]string{
	"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols)+2)
	for i, s := range symbols[1:] {
		m[s] = i + 1
	}
	// Hydrogen isotopes are accepted as element names by the library.
	m["D"] = 1
	m["T"] = 1
	return m
}()

// MaxAtomicNumber is the largest atomic number in the element table.
const MaxAtomicNumber = len(symbols) - 1

// AtomicNumber returns the atomic number of symbol; D and T map to 1.
func AtomicNumber(symbol string) (int, bool) {
	n, ok := numbers[symbol]
	return n, ok
}

// Symbol returns the element symbol for an atomic number, or "" when n is
// out of range.
func Symbol(n int) string {
	if n < 1 || n > MaxAtomicNumber {
		return ""
	}
	return symbols[n]
}

// IsElement reports whether symbol is a known element symbol.
func IsElement(symbol string) bool {
	_, ok := numbers[symbol]
	return ok
}
