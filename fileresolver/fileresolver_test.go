package fileresolver

import (
	"testing"

	"github.com/Azure/filekit"
	"github.com/stretchr/testify/assert"
)

func TestExecutablePathResolution(t *testing.T) {
	assert.Equal(t, ExecutableFolder().String(), ExecutableFolderPath())
	assert.Equal(t, Executable().String(), ExecutablePath())
	assert.Equal(t, filekit.ExecutablePath(), ExecutablePath())
	assert.Equal(t, filekit.ExecutableFolderPath(), ExecutableFolderPath())
}

func TestProjectPathResolution(t *testing.T) {
	assert.Equal(t, ProjectFolder().String(), ProjectFolderPath())
	assert.Equal(t, filekit.ProjectFolderPath(), ProjectFolderPath())
}

func TestPresentWorkingDirectoryPathResolution(t *testing.T) {
	assert.Equal(t, PresentWorkingDirectory().String(), PresentWorkingDirectoryPath())
	assert.Equal(t, filekit.WorkingDirectoryPath(), PresentWorkingDirectoryPath())
}

func TestEnvironmentFlags(t *testing.T) {
	env := filekit.Default().Environment()
	assert.Equal(t, env.IsDevGUI(), IsRanInsideIDE())
	assert.Equal(t, env.IsTestHarness(), IsRanFromTest())
}
