// Package font lists installed fonts from the host's well-known font
// directories, filtered by name glob patterns.
package font

// Record describes one font file found during a listing.
type Record struct {
	// Name is the font file's base name without its extension.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Path is the absolute path to the font file.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Scope is the display name of the scope the font was found under
	// (CurrentUser or AllUsers).
	Scope string `json:"scope" yaml:"scope" toml:"scope"`
}
