// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paths

import (
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

const nodeExecutable = "node"

// SystemLocator is the production [Locator]. It asks go-homedir for the
// home directory and searches PATH for the node executable.
type SystemLocator struct {
	lookPath func(file string) (string, error)
	homeDir  func() (string, error)
	goos     string
}

// NewSystemLocator returns a [Locator] backed by the running process.
func NewSystemLocator() *SystemLocator {
	return &SystemLocator{
		lookPath: exec.LookPath,
		homeDir:  homedir.Dir,
		goos:     runtime.GOOS,
	}
}

// HomeDir implements [Locator].
func (l *SystemLocator) HomeDir() (string, bool) {
	home, err := l.homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

// GlobalPrefix implements [Locator].
//
// On Windows node.exe sits directly in the prefix (c:\node\node.exe ->
// c:\node). Elsewhere it lives in a bin directory one level below
// (/usr/local/bin/node -> /usr/local).
func (l *SystemLocator) GlobalPrefix() (string, bool) {
	nodePath, err := l.lookPath(nodeExecutable)
	if err != nil {
		return "", false
	}
	return prefixFromNode(nodePath, l.goos), true
}

func prefixFromNode(nodePath, goos string) string {
	dir := filepath.Dir(nodePath)
	if goos == "windows" {
		return dir
	}
	return filepath.Dir(dir)
}
