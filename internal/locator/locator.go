// Package locator finds the running executable. Each supported platform
// provides its own Platform chain; Resolve turns the first answer into an
// absolute, symlink-free path.
package locator

import (
	"os"
	"path/filepath"
)

// Locator returns the path of the running executable, or "" when the
// strategy is unavailable on this host.
type Locator interface {
	Executable() string
}

// Func adapts a plain function to a Locator.
type Func func() string

func (f Func) Executable() string {
	return f()
}

// Chain asks each locator in order and returns the first non-empty answer.
type Chain []Locator

func (c Chain) Executable() string {
	for _, l := range c {
		if l == nil {
			continue
		}
		if path := l.Executable(); path != "" {
			return path
		}
	}
	return ""
}

// Args uses the first command-line argument. It is the last resort on every
// platform and is not validated.
type Args struct{}

func (Args) Executable() string {
	if len(os.Args) == 0 {
		return ""
	}
	return os.Args[0]
}

// Native uses os.Executable, which asks the platform for the running image.
type Native struct{}

func (Native) Executable() string {
	path, err := os.Executable()
	if err != nil {
		return ""
	}
	return path
}

// Resolve makes the located path absolute and resolves symbolic links.
// Failures degrade to the best path available rather than an error.
func Resolve(l Locator) string {
	path := l.Executable()
	if path == "" {
		path = Args{}.Executable()
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Clean(path)
}
