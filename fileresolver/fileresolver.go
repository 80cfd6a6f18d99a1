// Package fileresolver exposes the filekit locations under the names used
// by earlier releases. New code should import filekit directly.
package fileresolver

import "github.com/Azure/filekit"

// Executable is the running executable with symbolic links resolved.
func Executable() filekit.Path { return filekit.Default().Executable() }

func ExecutablePath() string { return Executable().String() }

// ExecutableFolder is the folder the build wrote the executable to.
func ExecutableFolder() filekit.Path { return filekit.Default().ExecutableFolder() }

func ExecutableFolderPath() string { return ExecutableFolder().String() }

// ProjectFolder is the directory holding the project marker.
func ProjectFolder() filekit.Path { return filekit.Default().ProjectFolder() }

func ProjectFolderPath() string { return ProjectFolder().String() }

// PresentWorkingDirectory is the directory relative paths resolve against.
func PresentWorkingDirectory() filekit.Path { return filekit.Default().WorkingDirectory() }

func PresentWorkingDirectoryPath() string { return PresentWorkingDirectory().String() }

// IsRanInsideIDE reports whether the executable looks like an IDE or
// debugger build.
func IsRanInsideIDE() bool { return filekit.Default().Environment().IsDevGUI() }

// IsRanFromTest reports whether the executable is a test binary.
func IsRanFromTest() bool { return filekit.Default().Environment().IsTestHarness() }
