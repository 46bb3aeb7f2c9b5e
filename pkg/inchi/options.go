package inchi

import (
	"runtime"
	"strings"
)

// Options is a typed view of the common library switches. The zero value
// requests a standard InChI.
type Options struct {
	FixedH    bool     // include the fixed-H layer (non-standard)
	RecMet    bool     // include reconnected metal bonds (non-standard)
	SNon      bool     // exclude stereo
	AuxNone   bool     // omit AuxInfo
	DoNotAddH bool     // do not add implicit hydrogens
	SUU       bool     // always indicate unknown/undefined stereo
	SLUUD     bool     // make labels for unknown and undefined stereo different
	Extra     []string // passed through NormalizeOptions as-is
}

// String renders o in the platform option syntax.
func (o Options) String() string {
	var names []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{o.FixedH, "FixedH"},
		{o.RecMet, "RecMet"},
		{o.SNon, "SNon"},
		{o.AuxNone, "AuxNone"},
		{o.DoNotAddH, "DoNotAddH"},
		{o.SUU, "SUU"},
		{o.SLUUD, "SLUUD"},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}
	names = append(names, o.Extra...)
	return NormalizeOptions(strings.Join(names, " "))
}

// OptionPrefix is the switch prefix the library accepts on this platform.
func OptionPrefix() string {
	if runtime.GOOS == "windows" {
		return "/"
	}
	return "-"
}

// NormalizeOptions rewrites a user option string into the form the library
// parses. Options may be separated by spaces or commas and may carry a "/"
// or "-" prefix or none; the result uses OptionPrefix, drops duplicates and
// keeps the original order.
func NormalizeOptions(options string) string {
	fields := strings.FieldsFunc(options, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return ""
	}
	prefix := OptionPrefix()
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		name := strings.TrimLeft(f, "/-")
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, prefix+name)
	}
	return strings.Join(out, " ")
}
