package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-npmrc/internal/mock"
)

const (
	testHome    = "/home/tester"
	testPrefix  = "/usr/local"
	testProject = "/work/app"
)

var (
	testGlobalFile  = filepath.Join(testPrefix, "etc", "npmrc")
	testUserFile    = filepath.Join(testHome, ".npmrc")
	testProjectFile = filepath.Join(testProject, ".npmrc")
)

// fixture describes the files of an in-memory npm installation. Nil
// contents leave the file out.
type fixture struct {
	global  *string
	user    *string
	project *string
}

func ptr(s string) *string { return &s }

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func (f fixture) fs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join(testProject, "package.json"), "{}")
	if f.global != nil {
		writeFile(t, fsys, testGlobalFile, *f.global)
	}
	if f.user != nil {
		writeFile(t, fsys, testUserFile, *f.user)
	}
	if f.project != nil {
		writeFile(t, fsys, testProjectFile, *f.project)
	}
	return fsys
}

func newLocator(t *testing.T, home, prefix string) *mock.MockLocator {
	t.Helper()
	locator := mock.NewMockLocator(gomock.NewController(t))
	locator.EXPECT().HomeDir().Return(home, home != "").AnyTimes()
	locator.EXPECT().GlobalPrefix().Return(prefix, prefix != "").AnyTimes()
	return locator
}

func newTestLoader(t *testing.T, fsys afero.Fs, environ map[string]string, opts ...Option) *Loader {
	t.Helper()
	if environ == nil {
		environ = map[string]string{}
	}
	base := []Option{
		WithFs(fsys),
		WithLocator(newLocator(t, testHome, testPrefix)),
		WithEnvironment(environ),
		WithWorkingDir(testProject),
	}
	return NewLoader(append(base, opts...)...)
}

func load(t *testing.T, f fixture) *Config {
	t.Helper()
	cfg, err := newTestLoader(t, f.fs(t), nil).Load(LoadOptions{})
	require.NoError(t, err)
	return cfg
}

// failingFs fails to open one path with a permission error.
type failingFs struct {
	afero.Fs
	path string
}

func (f failingFs) Open(name string) (afero.File, error) {
	if name == f.path {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.Fs.Open(name)
}
