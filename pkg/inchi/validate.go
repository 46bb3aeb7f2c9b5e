package inchi

import (
	"math"
)

// C widths of the inchi_Atom fields.
const (
	minSChar = math.MinInt8
	maxSChar = math.MaxInt8
)

// Validate checks that in can be represented in the native layout: every
// count and index fits its declared C width, bond lists stay within
// MaxNeighbors, and every neighbor index refers to another atom of in.
func (in *Input) Validate() error {
	if in == nil {
		return validationError("nil input")
	}
	n := len(in.Atoms)
	if n > MaxAtoms {
		return validationError("%d atoms exceeds %d", n, MaxAtoms)
	}
	if len(in.Stereo) > MaxAtoms {
		return validationError("%d stereo descriptors exceeds %d", len(in.Stereo), MaxAtoms)
	}
	for i := range in.Atoms {
		if err := in.Atoms[i].validate(i, n); err != nil {
			return err
		}
	}
	for i, s := range in.Stereo {
		if err := s.validate(i, n); err != nil {
			return err
		}
	}
	return nil
}

func (a *Atom) validate(idx, n int) error {
	if a.Element == "" || len(a.Element) > AtomElementLen-1 {
		return validationError("atom %d: element %q must be 1..%d bytes", idx, a.Element, AtomElementLen-1)
	}
	for i := 0; i < len(a.Element); i++ {
		c := a.Element[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return validationError("atom %d: element %q is not alphabetic", idx, a.Element)
		}
	}
	for _, v := range [...]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validationError("atom %d: coordinates must be finite", idx)
		}
	}
	if len(a.Bonds) > MaxNeighbors {
		return validationError("atom %d: %d bonds exceeds %d", idx, len(a.Bonds), MaxNeighbors)
	}
	for j, b := range a.Bonds {
		if b.Neighbor < 0 || b.Neighbor >= n {
			return validationError("atom %d bond %d: neighbor %d out of range", idx, j, b.Neighbor)
		}
		if b.Neighbor == idx {
			return validationError("atom %d bond %d: bond to itself", idx, j)
		}
		if !b.Type.valid() {
			return validationError("atom %d bond %d: %s", idx, j, b.Type)
		}
		if !b.Stereo.valid() {
			return validationError("atom %d bond %d: %s", idx, j, b.Stereo)
		}
	}
	if a.ImplicitH < AutoHydrogens || a.ImplicitH > maxSChar {
		return validationError("atom %d: implicit H %d out of range", idx, a.ImplicitH)
	}
	for j, h := range a.IsotopicH {
		if h < 0 || h > maxSChar {
			return validationError("atom %d: isotopic H[%d] %d out of range", idx, j, h)
		}
	}
	if a.IsotopicMass < minSChar || a.IsotopicMass > maxSChar {
		return validationError("atom %d: isotopic mass %d does not fit the declared width", idx, a.IsotopicMass)
	}
	if a.Charge < minSChar || a.Charge > maxSChar {
		return validationError("atom %d: charge %d out of range", idx, a.Charge)
	}
	if !a.Radical.valid() {
		return validationError("atom %d: %s", idx, a.Radical)
	}
	return nil
}

func (s Stereo0D) validate(idx, n int) error {
	if !s.Type.valid() {
		return validationError("stereo %d: %s", idx, s.Type)
	}
	if !s.Parity.valid() {
		return validationError("stereo %d: %s", idx, s.Parity)
	}
	for j, nb := range s.Neighbors {
		if nb < 0 || nb >= n {
			return validationError("stereo %d: neighbor[%d] %d out of range", idx, j, nb)
		}
	}
	switch s.Type {
	case StereoTypeDoubleBond:
		if s.CentralAtom != NoAtom {
			return validationError("stereo %d: double bond descriptor must not have a central atom", idx)
		}
	case StereoTypeTetrahedral, StereoTypeAllene:
		if s.CentralAtom < 0 || s.CentralAtom >= n {
			return validationError("stereo %d: central atom %d out of range", idx, s.CentralAtom)
		}
	default:
		if s.CentralAtom != NoAtom && (s.CentralAtom < 0 || s.CentralAtom >= n) {
			return validationError("stereo %d: central atom %d out of range", idx, s.CentralAtom)
		}
	}
	return nil
}
