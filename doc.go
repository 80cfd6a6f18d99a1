// Package filekit resolves the locations a program needs but cannot know when
// it is compiled: the folder holding its executable, the root of the project
// it was built from, and the directory relative paths should resolve against.
//
// # Environments
//
// IDE debuggers and test runners start binaries from places unrelated to the
// source tree. When the executable path looks like one of those runners (a
// go test binary, a Delve or GoLand debug binary, an Xcode DerivedData
// product), the executable folder is inferred from where this package's
// sources were staged and the working directory becomes the project folder.
//
// # Usage
//
//	import "github.com/Azure/filekit"
//
//	// Process-wide, configured through FILEKIT_* variables
//	config := filepath.Join(filekit.ProjectFolderPath(), "config.yaml")
//
//	// Explicit resolver, e.g. one per test
//	r := filekit.New(filekit.Options{ProjectMarker: "Project.marker"})
//	root := r.ProjectFolder()
//
// Every location is computed once and cached for the lifetime of its
// Resolver. Resolution never fails: when a heuristic does not apply, a
// warning is logged and a less precise location is returned.
package filekit
