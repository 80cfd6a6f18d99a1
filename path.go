package filekit

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Path is an absolute, cleaned filesystem location. The zero value is an
// empty path.
type Path struct {
	clean string
}

// NewPath makes p absolute against the OS working directory and cleans it.
func NewPath(p string) Path {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return Path{clean: filepath.Clean(p)}
}

func (p Path) String() string {
	return p.clean
}

// IsZero reports whether p was never set.
func (p Path) IsZero() bool {
	return p.clean == ""
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(p.clean)
}

// Dir returns the parent directory.
func (p Path) Dir() Path {
	return Path{clean: filepath.Dir(p.clean)}
}

// Join appends elements and cleans the result.
func (p Path) Join(elem ...string) Path {
	return Path{clean: filepath.Join(append([]string{p.clean}, elem...)...)}
}

// Components splits the path into its elements, with the root as the first
// element ("/" or a volume name such as "C:\").
func (p Path) Components() []string {
	if p.clean == "" {
		return nil
	}
	volume := filepath.VolumeName(p.clean)
	rest := strings.TrimPrefix(p.clean[len(volume):], string(filepath.Separator))

	components := []string{volume + string(filepath.Separator)}
	if rest == "" {
		return components
	}
	return append(components, strings.Split(rest, string(filepath.Separator))...)
}

// URL returns the path as a file URL.
func (p Path) URL() *url.URL {
	slashed := filepath.ToSlash(p.clean)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	return &url.URL{Scheme: "file", Path: slashed}
}

// MarshalText lets paths render as plain strings in JSON and YAML output.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.clean), nil
}
