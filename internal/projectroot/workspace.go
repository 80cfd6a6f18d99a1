package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// WorkspacePathKey names the field that redirects the search in every
// supported metadata format.
const WorkspacePathKey = "WorkspacePath"

type workspaceMetadata struct {
	WorkspacePath string `plist:"WorkspacePath" toml:"WorkspacePath" yaml:"WorkspacePath"`
}

type workspaceDecoder func(data []byte) (workspaceMetadata, error)

var workspaceDecoders = map[string]workspaceDecoder{
	".plist": decodePlist,
	".ini":   decodeINI,
	".toml":  decodeTOML,
	".yaml":  decodeYAML,
	".yml":   decodeYAML,
}

// SupportedWorkspaceExtensions lists the metadata file extensions that can
// carry a redirect.
func SupportedWorkspaceExtensions() []string {
	return []string{".ini", ".plist", ".toml", ".yaml", ".yml"}
}

// readWorkspaceRedirect returns the directory named by the metadata file at
// path. A missing, unreadable or malformed file is reported as no redirect.
// Relative redirects are resolved against the directory holding the file.
func readWorkspaceRedirect(path string) (string, bool) {
	decode, ok := workspaceDecoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	meta, err := decode(data)
	if err != nil {
		return "", false
	}

	target := strings.TrimSpace(meta.WorkspacePath)
	if target == "" {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), true
}

func decodePlist(data []byte) (workspaceMetadata, error) {
	var meta workspaceMetadata
	if _, err := plist.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("failed to decode plist workspace metadata: %w", err)
	}
	return meta, nil
}

func decodeINI(data []byte) (workspaceMetadata, error) {
	var meta workspaceMetadata
	cfg, err := ini.Load(data)
	if err != nil {
		return meta, fmt.Errorf("failed to decode ini workspace metadata: %w", err)
	}
	meta.WorkspacePath = cfg.Section(ini.DefaultSection).Key(WorkspacePathKey).String()
	return meta, nil
}

func decodeTOML(data []byte) (workspaceMetadata, error) {
	var meta workspaceMetadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("failed to decode toml workspace metadata: %w", err)
	}
	return meta, nil
}

func decodeYAML(data []byte) (workspaceMetadata, error) {
	var meta workspaceMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("failed to decode yaml workspace metadata: %w", err)
	}
	return meta, nil
}
