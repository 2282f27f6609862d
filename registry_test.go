package printf_test

import (
	"strconv"
	"testing"

	"github.com/bjaus/printf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(v printf.Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	return strconv.Quote(v.String()), true
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		key     rune
		conv    printf.Conversion
		wantErr require.ErrorAssertionFunc
	}{
		"lowercase":    {key: 'q', conv: printf.ConversionFunc(quote), wantErr: require.NoError},
		"digit":        {key: '7', conv: printf.String, wantErr: require.NoError},
		"symbol":       {key: '@', conv: printf.String, wantErr: require.NoError},
		"uppercase":    {key: 'Q', conv: printf.String, wantErr: require.Error},
		"nil":          {key: 'q', conv: nil, wantErr: require.Error},
		"non-ascii up": {key: 'É', conv: printf.String, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := printf.NewRegistry().Register(tt.key, tt.conv)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, printf.ErrInvalidKey)
			}
		})
	}
}

func TestRegistryCustomSpecifier(t *testing.T) {
	t.Parallel()
	reg := printf.Default()
	require.NoError(t, reg.RegisterFunc('q', quote))
	f := printf.New(reg)

	assert.Equal(t, `"hi"`, f.Sprintf("%q", "hi"))
	assert.Equal(t, "Q", f.Sprintf("%Q", "hi"))
	assert.Equal(t, `  "a"`, f.Sprintf("%5q", "a"))
	assert.Equal(t, `"undefined"`, f.Sprintf("%q"))
}

func TestRegistryRegisterFuncNil(t *testing.T) {
	t.Parallel()
	err := printf.NewRegistry().RegisterFunc('q', nil)
	require.ErrorIs(t, err, printf.ErrInvalidKey)
}

func TestRegistryOverride(t *testing.T) {
	t.Parallel()
	reg := printf.Default()
	reg.MustRegister('s', printf.ConversionFunc(func(v printf.Value, _, _ bool) (string, bool) {
		return "<" + v.String() + ">", true
	}))
	f := printf.New(reg)
	assert.Equal(t, "<a>", f.Sprintf("%s", "a"))
	assert.Equal(t, "<a>", f.Sprintf("%S", "a"))
}

func TestRegistryMustRegisterPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		printf.NewRegistry().MustRegister('S', printf.String)
	})
}

func TestRegistryLookupRemove(t *testing.T) {
	t.Parallel()
	reg := printf.Default()
	_, ok := reg.Lookup('d')
	assert.True(t, ok)

	reg.Remove('d')
	_, ok = reg.Lookup('d')
	assert.False(t, ok)
	assert.Equal(t, "d", printf.New(reg).Sprintf("%d", 5))
}

func TestRegistryClone(t *testing.T) {
	t.Parallel()
	orig := printf.Minimal()
	clone := orig.Clone()
	clone.MustRegister('d', printf.Decimal)

	assert.Equal(t, 1, orig.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, "d", printf.New(orig).Sprintf("%d", 5))
	assert.Equal(t, "5", printf.New(clone).Sprintf("%d", 5))
}

func TestRegistryKeys(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []rune("bcdefgosx"), printf.Default().Keys())
	assert.Equal(t, []rune("s"), printf.Minimal().Keys())
	assert.Empty(t, printf.NewRegistry().Keys())
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()
	var reg printf.Registry
	assert.Zero(t, reg.Len())
	_, ok := reg.Lookup('s')
	assert.False(t, ok)
	reg.Remove('s')

	require.NoError(t, reg.Register('s', printf.String))
	assert.Equal(t, []rune{'s'}, reg.Keys())
	assert.Equal(t, 1, reg.Clone().Len())
	assert.Equal(t, "a", printf.New(&reg).Sprintf("%s", "a"))
}

func TestBuiltins(t *testing.T) {
	t.Parallel()
	got := printf.Builtins()
	assert.Equal(t, []rune("bcdefgosx"), got)
	// Returned slice must be a copy.
	got[0] = 'z'
	assert.Equal(t, 'b', printf.Builtins()[0])
}

func TestMinimal(t *testing.T) {
	t.Parallel()
	f := printf.New(printf.Minimal())
	assert.Equal(t, "a d x", f.Sprintf("%s %d %x", "a", 1, 2))
}

func TestEmptyRegistry(t *testing.T) {
	t.Parallel()
	f := printf.New(printf.NewRegistry())
	assert.Equal(t, "s-d", f.Sprintf("%s-%5d", "a", 1))
}

func TestAssemble(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		types    string
		wantKeys []rune
		wantErr  require.ErrorAssertionFunc
	}{
		"all":          {types: "", wantKeys: []rune("bcdefgosx"), wantErr: require.NoError},
		"subset":       {types: "xd", wantKeys: []rune("dsx"), wantErr: require.NoError},
		"uppercase":    {types: "DX", wantKeys: []rune("dsx"), wantErr: require.NoError},
		"s only":       {types: "s", wantKeys: []rune("s"), wantErr: require.NoError},
		"duplicates":   {types: "ddd", wantKeys: []rune("ds"), wantErr: require.NoError},
		"unknown":      {types: "dz", wantErr: require.Error},
		"extension ch": {types: "h", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			reg, err := printf.Assemble(tt.types)
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, printf.ErrUnknownSpecifier)
				assert.Nil(t, reg)
				return
			}
			assert.Equal(t, tt.wantKeys, reg.Keys())
		})
	}
}
