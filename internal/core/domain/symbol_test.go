package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/Debian/apt/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		demangled string
		want      domain.Tag
	}{
		{
			name:      "plain C symbol",
			raw:       "apt_init@APTPKG_6.0",
			demangled: "apt_init@APTPKG_6.0",
			want:      domain.TagPlain,
		},
		{
			name:      "library C++ symbol",
			raw:       "_ZN8pkgCacheC1EP7MMapb@APTPKG_6.0",
			demangled: "pkgCache::pkgCache(MMap*, bool)@APTPKG_6.0",
			want:      domain.TagCxx,
		},
		{
			name:      "typeinfo of library class",
			raw:       "_ZTI8pkgCache@APTPKG_6.0",
			demangled: "typeinfo for pkgCache@APTPKG_6.0",
			want:      domain.TagCxx,
		},
		{
			name:      "std function",
			raw:       "_ZNSt6vectorIiSaIiEE9push_backERKi@APTPKG_6.0",
			demangled: "std::vector<int, std::allocator<int> >::push_back(int const&)@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "typeinfo for std",
			raw:       "_ZTISt9exception@APTPKG_6.0",
			demangled: "typeinfo for std::exception@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "typeinfo name for std",
			raw:       "_ZTSSt9exception@APTPKG_6.0",
			demangled: "typeinfo name for std::exception@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "vtable for gnu_cxx",
			raw:       "_ZTVN9__gnu_cxx13stdio_filebufIcSt11char_traitsIcEEE@APTPKG_6.0",
			demangled: "vtable for __gnu_cxx::stdio_filebuf<char, std::char_traits<char> >@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "guard variable for std",
			raw:       "_ZGVNSt7__cxx1112basic_stringIcSt11char_traitsIcESaIcEE4nposE@APTPKG_6.0",
			demangled: "guard variable for std::__cxx11::basic_string<char, std::char_traits<char>, std::allocator<char> >::npos@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "lowercase word before std",
			raw:       "_ZSt4swapIiEvRT_S1_@APTPKG_6.0",
			demangled: "void std::swap<int>(int&, int&)@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "lowercase word before gnu_cxx",
			raw:       "_ZN9__gnu_cxxeqIPKcSsEEbRKNS_17__normal_iteratorIT_T0_EESA_@APTPKG_6.0",
			demangled: "bool __gnu_cxx::operator==<char const*, std::string>(__gnu_cxx::__normal_iterator<char const*, std::string> const&, __gnu_cxx::__normal_iterator<char const*, std::string> const&)@APTPKG_6.0",
			want:      domain.TagCxxOptionalStd,
		},
		{
			name:      "std only inside arguments",
			raw:       "_ZN3APT6String8StartswERKNSt7__cxx1112basic_stringIcSt11char_traitsIcESaIcEEES8_@APTPKG_6.0",
			demangled: "APT::String::Startswith(std::__cxx11::basic_string<char, std::char_traits<char>, std::allocator<char> > const&, std::__cxx11::basic_string<char, std::char_traits<char>, std::allocator<char> > const&)@APTPKG_6.0",
			want:      domain.TagCxx,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Classify(tt.raw, tt.demangled)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, domain.Classify(tt.raw, tt.demangled), "classification must be stable")
		})
	}
}

func TestTag(t *testing.T) {
	assert.False(t, domain.TagPlain.IsCxx())
	assert.True(t, domain.TagCxx.IsCxx())
	assert.True(t, domain.TagCxxOptionalStd.IsCxx())

	assert.False(t, domain.TagCxx.IsOptional())
	assert.True(t, domain.TagCxxOptionalStd.IsOptional())

	assert.Equal(t, "c++", domain.TagCxx.String())
	assert.Equal(t, "c++|optional=std", domain.TagCxxOptionalStd.String())
}

func TestSymbolKey_Equality(t *testing.T) {
	a := domain.SymbolKey{Tag: domain.TagCxx, Name: "foo()"}
	b := domain.SymbolKey{Tag: domain.TagCxx, Name: "foo()"}
	c := domain.SymbolKey{Tag: domain.TagCxxOptionalStd, Name: "foo()"}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, domain.SymbolKey{Tag: domain.TagPlain, Name: "bar"}, domain.PlainKey("bar"))
}
