// ABOUTME: Standard filesystem paths for pkgfind configuration and logs
// ABOUTME: Resolves ~/.pkgfind/ for global and .pkgfind/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pkgfind"
	projectDirName = ".pkgfind"
	configFileName = "config.yaml"
	logFileName    = "pkgfind.log"
)

// GlobalDir returns the user-global config directory (~/.pkgfind/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pkgfind/ in the workspace).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// DefaultLogFile is where the output channel is written unless configured.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), logFileName)
}
