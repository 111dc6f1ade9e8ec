package vcpkg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/vcpkg-locate/pkg/env"
)

// installTree creates root/<triplet>/{lib,bin,include}
func installTree(t *testing.T, triplet string) string {
	t.Helper()
	root := t.TempDir()
	for _, sub := range []string{"lib", "bin", "include"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, triplet, sub), 0o755))
	}
	return root
}

func TestLocateZlib(t *testing.T) {
	root := installTree(t, "x64-windows")
	var out bytes.Buffer

	l, err := New("zlib").
		InstalledDir(root).
		VcpkgTarget("x64-windows").
		Env(env.Map{}).
		Output(&out).
		Locate()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "cargo:rustc-link-lib=zlib", lines[0])

	search := strings.TrimPrefix(lines[1], "cargo:rustc-link-search=native=")
	assert.True(t, strings.HasSuffix(search, filepath.Join("x64-windows", "lib")), search)
	assert.Equal(t, l.Lib, search)

	include := strings.TrimPrefix(lines[2], "cargo:include=")
	assert.True(t, strings.HasSuffix(include, filepath.Join("x64-windows", "include")), include)
	assert.Equal(t, filepath.Join(root, "x64-windows", "bin"), l.Bin)
}

func TestLocateWithoutTriplet(t *testing.T) {
	root := installTree(t, "x64-windows")
	var out bytes.Buffer

	_, err := New("zlib").
		InstalledDir(root).
		Env(env.Map{}).
		Output(&out).
		Locate()
	require.ErrorIs(t, err, ErrTripletNotDetermined)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "zlib", e.Package)

	var cerr *CandidateError
	require.ErrorAs(t, err, &cerr)
	assert.NotEmpty(t, cerr.Candidates)

	assert.Zero(t, out.Len(), "nothing may be emitted on failure")
}

func TestLocateWithoutRoot(t *testing.T) {
	_, err := New("zlib").
		VcpkgTarget("x64-linux").
		Env(env.Map{}).
		Output(&bytes.Buffer{}).
		Locate()
	assert.ErrorIs(t, err, ErrInstallRootNotFound)
}

func TestVcpkgRootAppendsInstalled(t *testing.T) {
	vcpkgRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(vcpkgRoot, "installed"), 0o755))

	l, err := New("zlib").
		VcpkgRoot(vcpkgRoot).
		VcpkgTarget("x64-linux").
		Env(env.Map{}).
		Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vcpkgRoot, "installed"), l.Root)
}

func TestTripletFromEnvironment(t *testing.T) {
	root := installTree(t, "arm64-osx")

	l, err := New("zlib").
		InstalledDir(root).
		Env(env.Map{Vars: map[string]string{env.VcpkgDefaultTriplet: "arm64-osx"}}).
		Resolve()
	require.NoError(t, err)
	assert.Equal(t, "arm64-osx", l.Triplet)
}

func TestSettersCarryThrough(t *testing.T) {
	root := installTree(t, "x64-linux")

	l, err := New("zlib").
		Target("linux/amd64").
		Host("linux/amd64").
		OutDir("/tmp/out").
		StaticCRT(true).
		InstalledDir(root).
		VcpkgTarget("x64-linux").
		VcpkgHost("x64-linux").
		Env(env.Map{}).
		Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", l.OutDir)
	assert.Equal(t, "x64-linux", l.HostTriplet)
}

func TestConfigIsConsumed(t *testing.T) {
	root := installTree(t, "x64-linux")
	cfg := New("zlib").InstalledDir(root).VcpkgTarget("x64-linux").Env(env.Map{})

	_, err := cfg.Resolve()
	require.NoError(t, err)

	_, err = cfg.Locate()
	assert.ErrorIs(t, err, ErrConfigConsumed)

	_, err = cfg.Resolve()
	assert.ErrorIs(t, err, ErrConfigConsumed)
}

func TestConfigIsConsumedByFailure(t *testing.T) {
	cfg := New("zlib").Env(env.Map{})

	_, err := cfg.Resolve()
	require.Error(t, err)

	_, err = cfg.Resolve()
	assert.ErrorIs(t, err, ErrConfigConsumed)
}

func TestLocateFormats(t *testing.T) {
	root := installTree(t, "x64-linux")
	var out bytes.Buffer

	_, err := New("zlib").
		InstalledDir(root).
		VcpkgTarget("x64-linux").
		Env(env.Map{}).
		Output(&out).
		Format(FormatFlags).
		Locate()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "-lzlib\n"))

	_, err = New("zlib").
		InstalledDir(root).
		VcpkgTarget("x64-linux").
		Env(env.Map{}).
		Output(&out).
		Format(Format("xml")).
		Locate()
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEmptyName(t *testing.T) {
	_, err := New("").Env(env.Map{}).Resolve()
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestErrorMessage(t *testing.T) {
	e := &Error{Op: "resolve", Package: "zlib", Err: ErrConfigConsumed}
	assert.Equal(t, "resolve zlib: config already consumed", e.Error())

	e = &Error{Op: "resolve", Err: ErrConfigConsumed}
	assert.Equal(t, "resolve: config already consumed", e.Error())
}
