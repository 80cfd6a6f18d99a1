package filekit

import (
	"os"
	"sync"

	"github.com/Azure/filekit/internal/environments"
	"github.com/Azure/filekit/internal/locator"
	"github.com/Azure/filekit/internal/logging"
	"github.com/Azure/filekit/internal/projectroot"
	"github.com/sirupsen/logrus"
)

// Environment reports whether the process runs under an IDE or debugger
// (DevGUI) and whether it is a test binary (TestHarness).
type Environment = environments.Environment

// EnvironmentMarkers are the executable path fragments used for detection.
type EnvironmentMarkers = environments.Markers

// ExecutableLocator finds the running executable. It returns "" when it
// cannot tell, in which case the first command-line argument is used.
type ExecutableLocator interface {
	Executable() string
}

// Options configures a Resolver. The zero value detects everything from the
// host and disables workspace metadata redirects.
type Options struct {
	// Locator defaults to the strategy for the host platform.
	Locator ExecutableLocator
	// Environment forces the environment instead of detecting it.
	Environment *Environment
	// Markers defaults to environments.DefaultMarkers.
	Markers *EnvironmentMarkers
	// SourceFile overrides the compiled-in location of this package's sources.
	SourceFile string
	// BuildLayouts defaults to DefaultBuildLayouts.
	BuildLayouts []BuildLayout
	// ProjectMarker defaults to go.mod.
	ProjectMarker string
	// WorkspaceFile names an optional metadata file whose WorkspacePath
	// redirects the project folder. Empty disables the lookup.
	WorkspaceFile string
	// Getwd defaults to os.Getwd.
	Getwd func() (string, error)
	// Logger defaults to the package logger.
	Logger logrus.FieldLogger
}

// Resolver computes each location once, on first use, and returns the same
// value afterwards. It is safe for concurrent use.
type Resolver struct {
	opts   Options
	finder projectroot.Finder

	executable       func() Path
	environment      func() Environment
	executableFolder func() Path
	projectRoot      func() (Path, bool)
	projectFolder    func() Path
	workingDirectory func() Path
}

// New returns a Resolver. Nothing is resolved until an accessor is called.
func New(opts Options) *Resolver {
	if opts.Locator == nil {
		opts.Locator = locator.Platform()
	}
	if opts.Markers == nil {
		markers := environments.DefaultMarkers
		opts.Markers = &markers
	}
	if opts.BuildLayouts == nil {
		opts.BuildLayouts = DefaultBuildLayouts
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}
	if opts.Logger == nil {
		opts.Logger = logging.GlobalLogger
	}

	r := &Resolver{
		opts:   opts,
		finder: projectroot.New(opts.ProjectMarker, opts.WorkspaceFile),
	}
	r.executable = sync.OnceValue(r.resolveExecutable)
	r.environment = sync.OnceValue(r.resolveEnvironment)
	r.executableFolder = sync.OnceValue(r.resolveExecutableFolder)
	r.projectRoot = sync.OnceValues(r.resolveProjectRoot)
	r.projectFolder = sync.OnceValue(r.resolveProjectFolder)
	r.workingDirectory = sync.OnceValue(r.resolveWorkingDirectory)
	return r
}

// Executable is the running executable with symbolic links resolved.
func (r *Resolver) Executable() Path {
	return r.executable()
}

func (r *Resolver) ExecutablePath() string {
	return r.Executable().String()
}

// Environment is the detected, or forced, launch environment.
func (r *Resolver) Environment() Environment {
	return r.environment()
}

// ExecutableFolder is the folder the build wrote the executable to. Under an
// IDE or test harness it is inferred from where this package's sources were
// staged, since those runners place binaries away from the source tree.
func (r *Resolver) ExecutableFolder() Path {
	return r.executableFolder()
}

func (r *Resolver) ExecutableFolderPath() string {
	return r.ExecutableFolder().String()
}

// ProjectFolder is the nearest ancestor of ExecutableFolder that holds the
// project marker, or ExecutableFolder itself when there is none.
func (r *Resolver) ProjectFolder() Path {
	return r.projectFolder()
}

func (r *Resolver) ProjectFolderPath() string {
	return r.ProjectFolder().String()
}

// ProjectFound reports whether ProjectFolder came from a marker search
// rather than the executable folder fallback.
func (r *Resolver) ProjectFound() bool {
	_, found := r.projectRoot()
	return found
}

// WorkingDirectory is the directory relative paths should resolve against:
// the project folder under an IDE or test harness, otherwise the OS working
// directory.
func (r *Resolver) WorkingDirectory() Path {
	return r.workingDirectory()
}

func (r *Resolver) WorkingDirectoryPath() string {
	return r.WorkingDirectory().String()
}

func (r *Resolver) resolveExecutable() Path {
	return NewPath(locator.Resolve(r.opts.Locator))
}

func (r *Resolver) resolveEnvironment() Environment {
	if r.opts.Environment != nil {
		return *r.opts.Environment
	}
	return environments.Detect(r.Executable().String(), *r.opts.Markers)
}

func (r *Resolver) resolveExecutableFolder() Path {
	if r.Environment().IsInteractive() {
		source := r.opts.SourceFile
		if source == "" {
			source = compiledSourceFile()
		}

		if folder, ok := inferBuildFolder(source, r.opts.BuildLayouts); ok {
			return NewPath(folder)
		}

		r.opts.Logger.
			WithField("source", source).
			Warn("Cannot infer build output folder from source location. Using executable folder.")
	}

	return r.Executable().Dir()
}

func (r *Resolver) resolveProjectRoot() (Path, bool) {
	dir, found := r.finder.Find(r.ExecutableFolder().String())
	if !found {
		return Path{}, false
	}
	return NewPath(dir), true
}

func (r *Resolver) resolveProjectFolder() Path {
	root, found := r.projectRoot()
	if !found {
		r.opts.Logger.
			WithField("marker", r.finder.Marker).
			Warnf("No %s found. Using executable folder as project folder.", r.finder.Marker)
		return r.ExecutableFolder()
	}
	return root
}

func (r *Resolver) resolveWorkingDirectory() Path {
	if r.Environment().IsInteractive() {
		if root, found := r.projectRoot(); found {
			r.opts.Logger.Debug("Running under an IDE or test harness. Using project folder as working directory.")
			return root
		}
	}

	wd, err := r.opts.Getwd()
	if err != nil {
		r.opts.Logger.
			WithError(err).
			Debug("Cannot read the OS working directory. Using executable folder.")
		return r.ExecutableFolder()
	}
	return NewPath(wd)
}
