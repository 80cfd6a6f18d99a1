package filekit

import (
	"path/filepath"
	"runtime"
	"strings"
)

// sourceFile is the on-disk location of this file when the library was
// compiled. Builds using -trimpath can restore it with
//
//	-ldflags "-X github.com/Azure/filekit.sourceFile=/abs/path/to/filekit/build.go"
var sourceFile string

func compiledSourceFile() string {
	if sourceFile != "" {
		return sourceFile
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}

// BuildLayout maps a directory a package manager stages sources into to the
// folder its debug build writes executables to.
type BuildLayout struct {
	// Marker is a slash-separated path fragment searched for in the source location.
	Marker string
	// Output replaces everything from Marker onwards.
	Output string
}

// DefaultBuildLayouts are tried in order; more specific markers come first.
var DefaultBuildLayouts = []BuildLayout{
	// Xcode resolves package dependencies into <DerivedData>/SourcePackages/checkouts.
	{Marker: "/SourcePackages/checkouts/", Output: "/Build/Products/Debug"},
	// Dependencies fetched into <build-path>/checkouts.
	{Marker: "/checkouts/", Output: "/debug"},
	// Editable packages live in <project>/Packages.
	{Marker: "/Packages/", Output: "/.build/debug"},
}

// inferBuildFolder truncates source at the first matching layout marker and
// appends that layout's output folder.
func inferBuildFolder(source string, layouts []BuildLayout) (string, bool) {
	slashed := filepath.ToSlash(source)
	for _, layout := range layouts {
		if layout.Marker == "" {
			continue
		}
		if i := strings.Index(slashed, layout.Marker); i >= 0 {
			return filepath.Clean(filepath.FromSlash(slashed[:i] + layout.Output)), true
		}
	}
	return "", false
}
