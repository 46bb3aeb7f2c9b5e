package molecule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads a molecule file. The format is YAML; JSON documents are
// accepted as well. The result is rebuilt through the Add methods, so
// unknown elements, bad indices and duplicate bonds are rejected.
func Decode(r io.Reader) (*Molecule, error) {
	var raw Molecule
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("molecule: decode: %w", err)
	}
	return raw.rebuild()
}

// Encode writes m as YAML.
func (m *Molecule) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("molecule: encode: %w", err)
	}
	return enc.Close()
}

// UnmarshalJSON decodes a molecule and validates it like Decode.
func (m *Molecule) UnmarshalJSON(data []byte) error {
	type plain Molecule
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := (*Molecule)(&raw).rebuild()
	if err != nil {
		return err
	}
	*m = *built
	return nil
}

func (m *Molecule) rebuild() (*Molecule, error) {
	out := New()
	for i, a := range m.Atoms {
		if _, err := out.AddAtom(a); err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
	}
	for i, b := range m.Bonds {
		if _, err := out.AddBond(b.Begin, b.End, b.Order, b.Stereo); err != nil {
			return nil, fmt.Errorf("bond %d: %w", i, err)
		}
	}
	for i, s := range m.Stereo {
		var err error
		switch s.Kind {
		case Tetrahedral:
			err = out.AddTetrahedral(s.Center, s.Neighbors, s.Parity)
		case CisTrans:
			n := s.Neighbors
			err = out.AddCisTrans(n[0], n[1], n[2], n[3], s.Parity)
		case Allene:
			out.Stereo = append(out.Stereo, s)
		default:
			err = fmt.Errorf("molecule: unknown %s", s.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("stereo %d: %w", i, err)
		}
	}
	return out, nil
}

// atomKeys are the YAML keys of Atom. node.Decode does not inherit the
// decoder's KnownFields setting, so Atom checks its keys itself.
var atomKeys = yamlKeys(reflect.TypeFor[Atom]())

func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

// UnmarshalYAML rejects unknown keys and sets ImplicitH to AutoH when the
// key is absent.
func (a *Atom) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i]
			if !atomKeys[k.Value] {
				return fmt.Errorf("line %d: field %s not found in atom", k.Line, k.Value)
			}
		}
	}
	type plain Atom
	p := plain{ImplicitH: AutoH}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = Atom(p)
	return nil
}

// UnmarshalJSON sets ImplicitH to AutoH when the key is absent.
func (a *Atom) UnmarshalJSON(data []byte) error {
	type plain Atom
	p := plain{ImplicitH: AutoH}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Atom(p)
	return nil
}

// Enum names double as their text form; numbers are accepted on input.

func (o Order) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Order) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), "order", Single, Aromatic)
	*o = v
	return err
}

func (w Wedge) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Wedge) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), "wedge", WedgeNone, WedgeDoubleEither)
	*w = v
	return err
}

func (k StereoKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *StereoKind) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), "stereo kind", Tetrahedral, Allene)
	*k = v
	return err
}

func parseEnum[E interface {
	~int
	fmt.Stringer
}](s, what string, lo, hi E) (E, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if E(n) < lo || E(n) > hi {
			return 0, fmt.Errorf("molecule: %s %d out of range", what, n)
		}
		return E(n), nil
	}
	for v := lo; v <= hi; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("molecule: unknown %s %q", what, s)
}
