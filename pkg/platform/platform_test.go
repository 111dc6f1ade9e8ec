package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{in: "linux/amd64", want: Platform{OS: "linux", Arch: "amd64"}},
		{in: "Windows/ARM64", want: Platform{OS: "windows", Arch: "arm64"}},
		{in: "x86_64-pc-windows-msvc", want: Platform{OS: "windows", Arch: "x86_64"}},
		{in: "i686-pc-windows-gnu", want: Platform{OS: "windows", Arch: "i686"}},
		{in: "aarch64-apple-darwin", want: Platform{OS: "darwin", Arch: "aarch64"}},
		{in: "aarch64-apple-ios", want: Platform{OS: "ios", Arch: "aarch64"}},
		{in: "x86_64-unknown-linux-gnu", want: Platform{OS: "linux", Arch: "x86_64"}},
		{in: "aarch64-linux-android", want: Platform{OS: "android", Arch: "aarch64"}},
		{in: "wasm32-unknown-emscripten", want: Platform{OS: "js", Arch: "wasm32"}},
		{in: "darwin-arm64", wantErr: true},
		{in: "x86_64-unknown-none", wantErr: true},
		{in: "linux", wantErr: true},
		{in: "/amd64", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTriplet(t *testing.T) {
	tests := []struct {
		in      string
		want    Triplet
		wantErr bool
	}{
		{in: "x64-windows", want: Triplet{Arch: "x64", OS: "windows"}},
		{in: "x64-windows-static", want: Triplet{Arch: "x64", OS: "windows", Linkage: "static"}},
		{in: "x64-windows-static-md", want: Triplet{Arch: "x64", OS: "windows", Linkage: "static-md"}},
		{in: "arm64-osx", want: Triplet{Arch: "arm64", OS: "osx"}},
		{in: "x64", wantErr: true},
		{in: "x64-", wantErr: true},
		{in: "x64-linux-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTriplet(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTripletIsStatic(t *testing.T) {
	assert.False(t, Triplet{Arch: "x64", OS: "windows"}.IsStatic())
	assert.True(t, Triplet{Arch: "x64", OS: "windows", Linkage: "static-md"}.IsStatic())
	assert.True(t, Triplet{Arch: "x64", OS: "linux"}.IsStatic())
	assert.False(t, Triplet{Arch: "x64", OS: "linux", Linkage: "dynamic"}.IsStatic())
}

func TestPlatformTriplet(t *testing.T) {
	tests := []struct {
		name   string
		p      Platform
		static *bool
		want   string
	}{
		{"windows default", Platform{"windows", "amd64"}, nil, "x64-windows"},
		{"windows static", Platform{"windows", "amd64"}, boolPtr(true), "x64-windows-static"},
		{"windows dynamic", Platform{"windows", "386"}, boolPtr(false), "x86-windows"},
		{"linux default", Platform{"linux", "amd64"}, nil, "x64-linux"},
		{"linux dynamic", Platform{"linux", "arm64"}, boolPtr(false), "arm64-linux-dynamic"},
		{"darwin static", Platform{"darwin", "arm64"}, boolPtr(true), "arm64-osx"},
		{"unknown arch", Platform{"linux", "mips"}, nil, "mips-linux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Triplet(tt.static).String())
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		host   string
		static *bool
		want   string
	}{
		{name: "target wins", target: "windows/amd64", host: "linux/arm64", want: "x64-windows"},
		{name: "host fallback", host: "linux/arm64", want: "arm64-linux"},
		{name: "msvc target", target: "x86_64-pc-windows-msvc", want: "x64-windows"},
		{name: "msvc static crt", target: "x86_64-pc-windows-msvc", static: boolPtr(true), want: "x64-windows-static"},
		{name: "gnu windows 32-bit", target: "i686-pc-windows-gnu", want: "x86-windows"},
		{name: "apple silicon", target: "aarch64-apple-darwin", want: "arm64-osx"},
		{name: "linux gnu", target: "x86_64-unknown-linux-gnu", want: "x64-linux"},
		{name: "linux dynamic", target: "x86_64-unknown-linux-gnu", static: boolPtr(false), want: "x64-linux-dynamic"},
		{name: "android", target: "aarch64-linux-android", want: "arm64-android"},
		{name: "armv7 hard float", target: "armv7-unknown-linux-gnueabihf", want: "arm-linux"},
		{name: "emscripten", target: "wasm32-unknown-emscripten", want: "wasm32-emscripten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Suggest(tt.target, tt.host, tt.static)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	got, err := Suggest("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, Detect().Triplet(nil), got)

	_, err = Suggest("bogus", "", nil)
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	p := Detect()
	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, p.String())
}

func TestKnownOS(t *testing.T) {
	assert.True(t, KnownOS("osx"))
	assert.False(t, KnownOS("darwin"))
}
