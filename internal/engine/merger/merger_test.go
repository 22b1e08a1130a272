package merger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"github.com/Debian/apt/internal/core/ports/mocks"
	"github.com/Debian/apt/internal/engine/merger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePackage is a package handle with a canned symbols table.
type fakePackage struct {
	name  string
	arch  string
	table string
	err   error
}

func (p *fakePackage) Name() string         { return p.name }
func (p *fakePackage) Architecture() string { return p.arch }
func (p *fakePackage) Version() string      { return "1.0" }

func (p *fakePackage) SymbolsTable() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []byte(p.table), nil
}

type mergerTestMocks struct {
	resolver  *mocks.MockArchitectureResolver
	fetcher   *mocks.MockPackageFetcher
	demangler *mocks.MockDemangler
	logger    *mocks.MockLogger
}

func setupMergerTest(t *testing.T) (*merger.Merger, mergerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mergerTestMocks{
		resolver:  mocks.NewMockArchitectureResolver(ctrl),
		fetcher:   mocks.NewMockPackageFetcher(ctrl),
		demangler: mocks.NewMockDemangler(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	m.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	// Tables in these tests carry no mangled names.
	m.demangler.EXPECT().Demangle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) (string, error) { return text, nil },
	).AnyTimes()

	return merger.New(m.resolver, m.fetcher, m.demangler, m.logger), m
}

func mylibSeed() *domain.SeedCatalog {
	return &domain.SeedCatalog{
		Prelude: []string{"libmylib.so.1 libmylib1 #MINVER#"},
		Entries: []domain.SeedEntry{{Key: domain.PlainKey("mylib_init"), Version: "1.0"}},
	}
}

const mylibCatalogHead = "libmylib.so.1 libmylib1 #MINVER#\n"

const optionalHeader = "# Optional C++ standard library symbols\n" +
	"# These are inlined libstdc++ symbols and not supposed to be part of our ABI\n" +
	"# but we cannot stop stuff from linking against it, sigh.\n"

func TestMerge_SeedVersionWins(t *testing.T) {
	m, mk := setupMergerTest(t)
	universe := domain.NewArchSet("amd64", "arm64")

	mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(universe, nil)
	mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "bookworm", universe).Return([]ports.PackageHandle{
		&fakePackage{name: "libmylib1", arch: "amd64", table: " mylib_init 1.2\n"},
		&fakePackage{name: "libmylib1", arch: "arm64", table: " mylib_init 1.1\n"},
	}, nil)

	res, err := m.Merge(context.Background(), mylibSeed(), []string{"bookworm"})
	require.NoError(t, err)

	assert.Equal(t, mylibCatalogHead+" mylib_init 1.0\n"+optionalHeader, string(res.Catalog))
	assert.Equal(t, 1, res.Symbols)
	assert.Empty(t, res.Skipped)
	require.Len(t, res.Runs, 1)
	assert.Equal(t, 2, res.Runs[0].Packages)
}

func TestMerge_UnreadablePackageIsSkipped(t *testing.T) {
	m, mk := setupMergerTest(t)
	universe := domain.NewArchSet("amd64", "arm64")

	mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(universe, nil)
	mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "bookworm", universe).Return([]ports.PackageHandle{
		&fakePackage{name: "libmylib1", arch: "amd64", table: " mylib_init 1.2\n"},
		&fakePackage{name: "libmylib1", arch: "arm64", err: domain.ErrPackageReadFailure},
	}, nil)
	mk.logger.EXPECT().Warn("skipping package",
		domain.LogKeyDist, "bookworm",
		domain.LogKeyArch, "arm64",
		domain.LogKeyPackage, "libmylib1",
		"error", gomock.Any(),
	).Times(1)

	res, err := m.Merge(context.Background(), mylibSeed(), []string{"bookworm"})
	require.NoError(t, err)

	assert.Equal(t, mylibCatalogHead+" (arch=amd64) mylib_init 1.0\n"+optionalHeader, string(res.Catalog))
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "arm64", res.Skipped[0].Arch)
	assert.Equal(t, "libmylib1", res.Skipped[0].Package)
	assert.ErrorContains(t, res.Skipped[0].Err, domain.ErrPackageReadFailure.Error())
}

func TestMerge_DemangleMismatchIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockArchitectureResolver(ctrl)
	fetcher := mocks.NewMockPackageFetcher(ctrl)
	demangler := mocks.NewMockDemangler(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	m := merger.New(resolver, fetcher, demangler, logger)

	universe := domain.NewArchSet("amd64")
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn("skipping package", gomock.Any()).Times(1)
	resolver.EXPECT().ResolveArchitectures(gomock.Any(), "sid").Return(universe, nil)
	fetcher.EXPECT().FetchPackages(gomock.Any(), "sid", universe).Return([]ports.PackageHandle{
		&fakePackage{name: "libmylib1", arch: "amd64", table: " a 1.0\n b 1.0\n"},
	}, nil)
	demangler.EXPECT().Demangle(gomock.Any(), " a 1.0\n b 1.0\n").Return(" a 1.0\n", nil)

	res, err := m.Merge(context.Background(), mylibSeed(), []string{"sid"})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.ErrorContains(t, res.Skipped[0].Err, domain.ErrDemangleMismatch.Error())
	assert.Equal(t, 0, res.Symbols, "nothing observed in the last run survives")
}

func TestMerge_LastRunDecides(t *testing.T) {
	m, mk := setupMergerTest(t)
	first := domain.NewArchSet("amd64", "arm64")
	last := domain.NewArchSet("amd64", "arm64")

	gomock.InOrder(
		mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(first, nil),
		mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "bookworm", first).Return([]ports.PackageHandle{
			&fakePackage{name: "libmylib1", arch: "amd64", table: " S 1.0\n gone 0.9\n"},
		}, nil),
		mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "trixie").Return(last, nil),
		mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "trixie", last).Return([]ports.PackageHandle{
			&fakePackage{name: "libmylib1", arch: "arm64", table: " S 1.1\n"},
		}, nil),
	)

	res, err := m.Merge(context.Background(), &domain.SeedCatalog{}, []string{"bookworm", "trixie"})
	require.NoError(t, err)

	assert.Equal(t, " (arch=arm64) S 1.0\n"+optionalHeader, string(res.Catalog))
	assert.Equal(t, last, res.Universe)
	assert.Len(t, res.Runs, 2)
}

func TestMerge_Errors(t *testing.T) {
	t.Run("no distributions", func(t *testing.T) {
		m, _ := setupMergerTest(t)
		_, err := m.Merge(context.Background(), mylibSeed(), nil)
		require.ErrorIs(t, err, domain.ErrNoDistributions)
	})

	t.Run("metadata unavailable aborts", func(t *testing.T) {
		m, mk := setupMergerTest(t)
		mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(nil, errors.New("status 404"))

		res, err := m.Merge(context.Background(), mylibSeed(), []string{"bookworm", "trixie"})
		require.ErrorContains(t, err, domain.ErrMetadataUnavailable.Error())
		require.ErrorContains(t, err, "status 404")
		assert.Nil(t, res)
	})

	t.Run("fetch failure aborts", func(t *testing.T) {
		m, mk := setupMergerTest(t)
		universe := domain.NewArchSet("amd64")
		mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(universe, nil)
		mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "bookworm", universe).Return(nil, errors.New("connection reset"))

		res, err := m.Merge(context.Background(), mylibSeed(), []string{"bookworm"})
		require.ErrorContains(t, err, domain.ErrPackageFetchFailed.Error())
		assert.Nil(t, res)
	})

	t.Run("cancellation aborts", func(t *testing.T) {
		m, mk := setupMergerTest(t)
		ctx, cancel := context.WithCancel(context.Background())
		universe := domain.NewArchSet("amd64")
		mk.resolver.EXPECT().ResolveArchitectures(gomock.Any(), "bookworm").Return(universe, nil)
		mk.fetcher.EXPECT().FetchPackages(gomock.Any(), "bookworm", universe).DoAndReturn(
			func(context.Context, string, domain.ArchSet) ([]ports.PackageHandle, error) {
				cancel()
				return []ports.PackageHandle{&fakePackage{name: "libmylib1", arch: "amd64", table: " a 1.0\n"}}, nil
			},
		)

		res, err := m.Merge(ctx, mylibSeed(), []string{"bookworm"})
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, res)
	})
}
