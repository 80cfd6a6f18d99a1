package environments

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Environment describes how the current process was launched. Both flags may
// be set at once, e.g. a test binary started from an IDE debugger.
type Environment struct {
	DevGUI      bool
	TestHarness bool
}

const (
	NameAuto    = "auto"
	NameLocal   = "local"
	NameIDE     = "ide"
	NameTest    = "test"
	NameIDETest = "ide+test"
)

// Markers holds the path fragments used to classify an executable.
type Markers struct {
	// DevGUISegments are matched anywhere in the slash-separated executable path.
	DevGUISegments []string
	// TestRunnerSuffixes are matched against the executable's base name.
	TestRunnerSuffixes []string
}

// DefaultMarkers recognises Xcode-style DerivedData folders, the Delve debug
// binaries written by VS Code and GoLand, and binaries produced by go test.
var DefaultMarkers = Markers{
	DevGUISegments: []string{
		"/DerivedData/",
		"/__debug_bin",
		"/___go_build_",
	},
	TestRunnerSuffixes: []string{
		".test",
		".test.exe",
	},
}

// Detect classifies the resolved executable path. This is a heuristic: any
// runner that does not follow one of the naming conventions above is treated
// as a plain command-line invocation.
func Detect(executable string, markers Markers) Environment {
	slashed := filepath.ToSlash(executable)
	base := filepath.Base(executable)

	var env Environment
	for _, segment := range markers.DevGUISegments {
		if segment != "" && strings.Contains(slashed, segment) {
			env.DevGUI = true
			break
		}
	}
	for _, suffix := range markers.TestRunnerSuffixes {
		if suffix != "" && strings.HasSuffix(base, suffix) {
			env.TestHarness = true
			break
		}
	}
	return env
}

// IsDevGUI reports whether the process runs under an IDE or debugger.
func (e Environment) IsDevGUI() bool {
	return e.DevGUI
}

// IsTestHarness reports whether the process is a test binary.
func (e Environment) IsTestHarness() bool {
	return e.TestHarness
}

// IsInteractive reports whether the OS working directory is likely unrelated
// to the project, in which case the project folder stands in for it.
func (e Environment) IsInteractive() bool {
	return e.DevGUI || e.TestHarness
}

func (e Environment) String() string {
	switch {
	case e.DevGUI && e.TestHarness:
		return NameIDETest
	case e.DevGUI:
		return NameIDE
	case e.TestHarness:
		return NameTest
	default:
		return NameLocal
	}
}

// Check if the environment name is valid.
func IsValidEnvironment(environment string) bool {
	_, _, err := Parse(environment)
	return err == nil
}

// Parse converts a configured environment name into a forced Environment.
// The returned bool is false for "auto", meaning the caller should detect.
func Parse(environment string) (Environment, bool, error) {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "", NameAuto:
		return Environment{}, false, nil
	case NameLocal:
		return Environment{}, true, nil
	case NameIDE:
		return Environment{DevGUI: true}, true, nil
	case NameTest:
		return Environment{TestHarness: true}, true, nil
	case NameIDETest, "test+ide":
		return Environment{DevGUI: true, TestHarness: true}, true, nil
	default:
		return Environment{}, false, fmt.Errorf("invalid environment: %s", environment)
	}
}
