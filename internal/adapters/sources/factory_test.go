package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Debian/apt/internal/adapters/archive"
	"github.com/Debian/apt/internal/adapters/demangle"
	"github.com/Debian/apt/internal/adapters/sources"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFactory_NewSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := sources.NewFactory(mocks.NewMockLogger(ctrl), archive.WithWorkers(1))

	cfg := domain.DefaultConfig()
	cfg.CacheDir = t.TempDir()
	cfg.Demangler = []string{"llvm-cxxfilt"}

	src, err := factory.NewSources(cfg)
	require.NoError(t, err)

	assert.IsType(t, &archive.Client{}, src.Resolver)
	assert.Same(t, src.Resolver, src.Fetcher)

	filter, ok := src.Demangler.(*demangle.Filter)
	require.True(t, ok)
	assert.Equal(t, []string{"llvm-cxxfilt"}, filter.Command())

	info, err := os.Stat(filepath.Join(cfg.CacheDir, domain.StoreDirName))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFactory_NewSources_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := sources.NewFactory(mocks.NewMockLogger(ctrl))

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	cfg := domain.DefaultConfig()
	cfg.CacheDir = blocker

	_, err := factory.NewSources(cfg)
	require.ErrorContains(t, err, domain.ErrCacheCreateFailed.Error())
}
