// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paths

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// ConfigFileName is the name of user and project config files.
	ConfigFileName = ".npmrc"

	packageManifest = "package.json"
	dependencyDir   = "node_modules"
)

// FindLocalPrefix walks up from start looking for the first directory that
// holds a package.json file or a node_modules directory. When the walk hits
// the filesystem root without a match, start is returned unchanged.
func FindLocalPrefix(fs afero.Fs, start string) string {
	current := filepath.Clean(start)

	for {
		if isProjectRoot(fs, current) {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return start
		}
		current = parent
	}
}

func isProjectRoot(fs afero.Fs, dir string) bool {
	if info, err := fs.Stat(filepath.Join(dir, packageManifest)); err == nil && info.Mode().IsRegular() {
		return true
	}

	isDir, err := afero.IsDir(fs, filepath.Join(dir, dependencyDir))
	return err == nil && isDir
}

// GlobalConfigPath returns {prefix}/etc/npmrc.
func GlobalConfigPath(prefix string) string {
	return filepath.Join(prefix, "etc", "npmrc")
}

// UserConfigPath returns {home}/.npmrc.
func UserConfigPath(home string) string {
	return filepath.Join(home, ConfigFileName)
}

// ProjectConfigPath returns {prefix}/.npmrc.
func ProjectConfigPath(prefix string) string {
	return filepath.Join(prefix, ConfigFileName)
}

// ExpandTilde replaces a leading "~" or "~/" with home. "~user" forms and
// tildes anywhere else are left alone, as is every path when home is empty.
func ExpandTilde(path, home string) string {
	if home == "" {
		return path
	}

	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
