// Package projectroot walks up a directory tree looking for the file that
// marks a project root.
package projectroot

import (
	"os"
	"path/filepath"
)

const (
	DefaultMarker        = "go.mod"
	DefaultWorkspaceFile = "info.plist"
)

// placeholder is appended to the starting directory so that the first
// ascent lands on the starting directory itself.
const placeholder = "dummy"

// Finder locates the nearest ancestor directory holding Marker. When
// WorkspaceFile is set, a metadata file of that name carrying a WorkspacePath
// redirects the search result to the named directory.
type Finder struct {
	Marker        string
	WorkspaceFile string
}

// New returns a Finder with the default marker when marker is empty.
func New(marker, workspaceFile string) Finder {
	if marker == "" {
		marker = DefaultMarker
	}
	return Finder{Marker: marker, WorkspaceFile: workspaceFile}
}

// Find searches start and each of its parents. The search stops after the
// filesystem root has been checked.
func (f Finder) Find(start string) (string, bool) {
	dir := filepath.Join(start, placeholder)

	for {
		dir = filepath.Dir(dir)

		if f.Marker != "" && fileExists(filepath.Join(dir, f.Marker)) {
			return dir, true
		}

		if f.WorkspaceFile != "" {
			if redirect, ok := readWorkspaceRedirect(filepath.Join(dir, f.WorkspaceFile)); ok {
				return redirect, true
			}
		}

		if filepath.Dir(dir) == dir {
			return "", false
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
