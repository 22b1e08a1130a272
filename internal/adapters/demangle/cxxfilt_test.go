package demangle_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/Debian/apt/internal/adapters/demangle"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestFilter_Demangle(t *testing.T) {
	requireTool(t, "sed")

	f := demangle.New([]string{"sed", "s/_Z8apt_initv/apt_init()/"})
	got, err := f.Demangle(context.Background(), " _Z8apt_initv@APTPKG_7.0 2.9.1\n plain@APTPKG_7.0 2.9.1\n")
	require.NoError(t, err)
	assert.Equal(t, " apt_init()@APTPKG_7.0 2.9.1\n plain@APTPKG_7.0 2.9.1\n", got)
}

func TestFilter_CxxFilt(t *testing.T) {
	requireTool(t, "c++filt")

	f := demangle.New(nil)
	got, err := f.Demangle(context.Background(), " _ZN8pkgCacheC1EP4MMapb@APTPKG_7.0 2.9.1\n")
	require.NoError(t, err)
	assert.Equal(t, " pkgCache::pkgCache(MMap*, bool)@APTPKG_7.0 2.9.1\n", got)
}

func TestFilter_DefaultCommand(t *testing.T) {
	assert.Equal(t, []string{"c++filt"}, demangle.New(nil).Command())
	assert.Equal(t, []string{"llvm-cxxfilt"}, demangle.New([]string{"llvm-cxxfilt"}).Command())
}

func TestFilter_Failure(t *testing.T) {
	requireTool(t, "sh")

	f := demangle.New([]string{"sh", "-c", "echo broken pipe >&2; exit 3"})
	_, err := f.Demangle(context.Background(), " a 1.0\n")
	require.ErrorContains(t, err, domain.ErrDemanglerFailed.Error())
}

func TestFilter_MissingCommand(t *testing.T) {
	f := demangle.New([]string{"definitely-not-a-demangler-binary"})
	_, err := f.Demangle(context.Background(), " a 1.0\n")
	require.ErrorContains(t, err, domain.ErrDemanglerFailed.Error())
}
