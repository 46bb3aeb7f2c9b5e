package inchi

import "github.com/chemkit/inchi-go/pkg/inchi/logging"

// Config holds the settings of a Library handle.
type Config struct {
	// Options are applied to every FromStructure call whose Input carries
	// no options of its own. Any accepted NormalizeOptions syntax works.
	Options string

	// ComputeKey makes FromStructure fill Result.Key. A key failure is
	// reported as a warning on the result, not as an error.
	ComputeKey bool

	// Logger receives call-level records. Nil uses slog.Default().
	Logger logging.Logger
}

func (c Config) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.New(nil)
}

// Settings are the parts of a Config that shape FromStructure results.
type Settings struct {
	Options    string `json:"options" msgpack:"o"`
	ComputeKey bool   `json:"compute_key" msgpack:"k"`
}

// Effective returns the settings that apply to in: Options on in replace
// the default options.
func (s Settings) Effective(in *Input) Settings {
	if in != nil && in.Options != "" {
		s.Options = NormalizeOptions(in.Options)
	}
	return s
}
