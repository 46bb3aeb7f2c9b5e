package molecule

import (
	"slices"
	"strconv"
	"strings"
)

// defaultValence covers the organic subset; AutoH atoms of other elements
// contribute no hydrogens to Formula.
var defaultValence = map[string]int{
	"B": 3, "C": 4, "N": 3, "O": 2, "P": 3, "S": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1,
}

// Formula returns the Hill formula of m: carbon first, then hydrogen, then
// the other elements alphabetically; without carbon every element is
// alphabetical. D and T, including isotopic implicit hydrogens, count as
// hydrogen. Atoms with AutoH get hydrogens from their default valence,
// ignoring charge.
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for i, a := range m.Atoms {
		el := a.Element
		if el == "D" || el == "T" {
			el = "H"
		}
		counts[el]++
		h := a.ImplicitH
		if h == AutoH {
			h = m.autoHydrogens(i)
		}
		h += a.IsotopicH.Total()
		if h > 0 {
			counts["H"] += h
		}
	}
	if len(counts) == 0 {
		return ""
	}

	order := make([]string, 0, len(counts))
	for el := range counts {
		order = append(order, el)
	}
	slices.Sort(order)
	if counts["C"] > 0 {
		order = slices.DeleteFunc(order, func(s string) bool { return s == "C" || s == "H" })
		head := []string{"C"}
		if counts["H"] > 0 {
			head = append(head, "H")
		}
		order = append(head, order...)
	}

	var b strings.Builder
	for _, el := range order {
		b.WriteString(el)
		if n := counts[el]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

func (m *Molecule) autoHydrogens(i int) int {
	v, ok := defaultValence[m.Atoms[i].Element]
	if !ok {
		return 0
	}
	used, aromatic := 0, false
	for _, b := range m.Bonds {
		if b.Begin != i && b.End != i {
			continue
		}
		if b.Order == Aromatic {
			used++
			aromatic = true
			continue
		}
		used += int(b.Order)
	}
	if aromatic {
		used++
	}
	return max(v-used, 0)
}
