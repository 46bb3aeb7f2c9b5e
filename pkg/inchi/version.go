package inchi

import "github.com/chemkit/inchi-go/internal/bindings"

var (
	Version         = "v0.0.0-in-progress"
	UpstreamVersion = "1.07"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the version string reported by the linked native
// library; without cgo it falls back to the pinned upstream release.
func LibraryVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return UpstreamVersion
}
