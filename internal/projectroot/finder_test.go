package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMarker is unlikely to exist above t.TempDir().
const testMarker = "Project.marker"

func mkdirs(t *testing.T, root string, parts ...string) string {
	t.Helper()
	dir := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func tempRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestFindMarkerInStartingDirectory(t *testing.T) {
	root := tempRoot(t)
	start := mkdirs(t, root, "a", "b", "c")
	touch(t, filepath.Join(start, testMarker), "")

	dir, found := Finder{Marker: testMarker}.Find(start)

	require.True(t, found)
	assert.Equal(t, start, dir)
}

func TestFindMarkerInAncestor(t *testing.T) {
	root := tempRoot(t)
	start := mkdirs(t, root, "a", "b", "c")
	touch(t, filepath.Join(root, "a", "b", testMarker), "")
	touch(t, filepath.Join(root, "a", testMarker), "")

	dir, found := Finder{Marker: testMarker}.Find(start)

	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "a", "b"), dir)
}

func TestFindWithoutMarker(t *testing.T) {
	root := tempRoot(t)
	start := mkdirs(t, root, "a", "b", "c")

	dir, found := Finder{Marker: testMarker}.Find(start)

	assert.False(t, found)
	assert.Equal(t, "", dir)
}

func TestFindFromFilesystemRoot(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)

	dir, found := Finder{Marker: testMarker}.Find(root)

	assert.False(t, found)
	assert.Equal(t, "", dir)
}

func TestFindUncleanStartingDirectory(t *testing.T) {
	root := tempRoot(t)
	mkdirs(t, root, "a", "b", "c")
	touch(t, filepath.Join(root, "a", testMarker), "")

	dir, found := Finder{Marker: testMarker}.Find(filepath.Join(root, "a", "b", "..", "b", "c", "."))

	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "a"), dir)
}

func TestNewDefaultsMarker(t *testing.T) {
	f := New("", DefaultWorkspaceFile)
	assert.Equal(t, DefaultMarker, f.Marker)
	assert.Equal(t, DefaultWorkspaceFile, f.WorkspaceFile)

	f = New(testMarker, "")
	assert.Equal(t, testMarker, f.Marker)
	assert.Empty(t, f.WorkspaceFile)
}

func TestFindWorkspaceRedirect(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content func(target string) string
	}{
		{
			name: "plist",
			file: "info.plist",
			content: func(target string) string {
				return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>WorkspacePath</key>
	<string>` + target + `</string>
</dict>
</plist>
`
			},
		},
		{
			name:    "ini",
			file:    "workspace.ini",
			content: func(target string) string { return "WorkspacePath = " + target + "\n" },
		},
		{
			name:    "toml",
			file:    "workspace.toml",
			content: func(target string) string { return "WorkspacePath = '" + target + "'\n" },
		},
		{
			name:    "yaml",
			file:    "workspace.yaml",
			content: func(target string) string { return "WorkspacePath: '" + target + "'\n" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tempRoot(t)
			target := mkdirs(t, root, "elsewhere", "project")
			start := mkdirs(t, root, "derived", "build", "debug")
			touch(t, filepath.Join(root, "derived", tt.file), tt.content(target))

			dir, found := Finder{Marker: testMarker, WorkspaceFile: tt.file}.Find(start)

			require.True(t, found)
			assert.Equal(t, target, dir)
			assert.NotEqual(t, filepath.Join(root, "derived"), dir)
		})
	}
}

func TestFindMarkerWinsOverWorkspaceInSameDirectory(t *testing.T) {
	root := tempRoot(t)
	start := mkdirs(t, root, "a")
	touch(t, filepath.Join(start, testMarker), "")
	touch(t, filepath.Join(start, "workspace.yaml"), "WorkspacePath: /somewhere/else\n")

	dir, found := Finder{Marker: testMarker, WorkspaceFile: "workspace.yaml"}.Find(start)

	require.True(t, found)
	assert.Equal(t, start, dir)
}

func TestFindRelativeWorkspaceRedirect(t *testing.T) {
	root := tempRoot(t)
	start := mkdirs(t, root, "derived", "debug")
	touch(t, filepath.Join(root, "derived", "workspace.ini"), "WorkspacePath = ../source\n")

	dir, found := Finder{Marker: testMarker, WorkspaceFile: "workspace.ini"}.Find(start)

	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "source"), dir)
}

func TestFindIgnoresMalformedWorkspaceMetadata(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml syntax", "workspace.yaml", "WorkspacePath: [unterminated\n"},
		{"toml syntax", "workspace.toml", "WorkspacePath = \n"},
		{"ini syntax", "workspace.ini", "this line has no delimiter\n"},
		{"plist garbage", "info.plist", "<plist><dict><key>WorkspacePath"},
		{"missing key", "workspace.yaml", "OtherKey: value\n"},
		{"empty value", "workspace.toml", "WorkspacePath = ''\n"},
		{"unsupported extension", "workspace.json", `{"WorkspacePath": "/redirect"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tempRoot(t)
			start := mkdirs(t, root, "a", "b", "c")
			touch(t, filepath.Join(root, "a", "b", tt.file), tt.content)
			touch(t, filepath.Join(root, "a", testMarker), "")

			dir, found := Finder{Marker: testMarker, WorkspaceFile: tt.file}.Find(start)

			require.True(t, found)
			assert.Equal(t, filepath.Join(root, "a"), dir)
		})
	}
}

func TestReadWorkspaceRedirectMissingFile(t *testing.T) {
	_, ok := readWorkspaceRedirect(filepath.Join(t.TempDir(), "info.plist"))
	assert.False(t, ok)
}

func TestSupportedWorkspaceExtensions(t *testing.T) {
	for _, ext := range SupportedWorkspaceExtensions() {
		_, ok := workspaceDecoders[ext]
		assert.True(t, ok, "no decoder for %s", ext)
	}
	assert.Len(t, SupportedWorkspaceExtensions(), len(workspaceDecoders))
}
