package readex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.dw1.io/readex/json"
)

func TestAsFlags(t *testing.T) {
	tests := map[string]struct {
		config any
		want   string
	}{
		"nil":          {nil, "gm"},
		"empty":        {FlagsConfig{}, "gm"},
		"defaults":     {DefaultFlags(), "gm"},
		"zeroFlags":    {Flags{}, ""},
		"flagsPointer": {&Flags{IgnoreCase: true}, "i"},
		"nilPointer":   {(*Flags)(nil), "gm"},
		"ignoreCase":   {FlagsConfig{"global": false, "ignoreCase": true}, "im"},
		"boolMap":      {map[string]bool{"sticky": true}, "gmy"},
		"anyMap":       {map[string]any{"dotAll": "true", "global": 0}, "sm"},
		"nullValue":    {map[string]any{"global": nil}, "gm"},
		"options":      {Options{"unicode": true}, "gmu"},
		"everything": {FlagsConfig{
			"dotAll":     true,
			"global":     false,
			"ignoreCase": true,
			"multiline":  false,
			"sticky":     true,
			"unicode":    true,
		}, "siyu"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := AsFlags(tt.config)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAsFlagsErrors(t *testing.T) {
	t.Run("notMapping", func(t *testing.T) {
		for _, v := range []any{"gim", 1, []string{"global"}, true} {
			_, err := AsFlags(v)
			require.ErrorIs(t, err, ErrInvalidFlagsType, "config %#v", v)
		}
	})

	t.Run("unknownKey", func(t *testing.T) {
		_, err := AsFlags(FlagsConfig{"global": true, "extended": true})
		require.ErrorIs(t, err, ErrInvalidFlagKey)
	})

	t.Run("badValue", func(t *testing.T) {
		_, err := AsFlags(map[string]any{"global": []int{1}})
		require.ErrorIs(t, err, ErrInvalidFlagsType)
	})
}

func TestAsFlagsOrderIndependent(t *testing.T) {
	docs := []string{
		`{"sticky":true,"ignoreCase":true,"global":false}`,
		`{"global":false,"sticky":true,"ignoreCase":true}`,
		`{"ignoreCase":true,"global":false,"sticky":true}`,
	}

	for _, doc := range docs {
		flags, err := ParseFlags([]byte(doc))
		require.NoError(t, err)
		require.Equal(t, "imy", flags.String(), doc)
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("nullKeepsDefault", func(t *testing.T) {
		flags, err := ParseFlags([]byte(`{"multiline":null,"dotAll":true}`))
		require.NoError(t, err)
		require.Equal(t, "sgm", flags.String())
	})

	t.Run("notObject", func(t *testing.T) {
		_, err := ParseFlags([]byte(`["global"]`))
		require.ErrorIs(t, err, ErrInvalidFlagsType)
	})

	t.Run("unknownKey", func(t *testing.T) {
		_, err := ParseFlags([]byte(`{"verbose":true}`))
		require.ErrorIs(t, err, ErrInvalidFlagKey)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseFlags([]byte(`{"global":`))
		require.Error(t, err)
	})
}

func TestFlagsJSONRoundTrip(t *testing.T) {
	in := Flags{DotAll: true, IgnoreCase: true, Unicode: true}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"dotAll":true,"global":false,"ignoreCase":true,"multiline":false,"sticky":false,"unicode":true}`, string(data))

	out, err := ParseFlags(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestAsFlagsKeyErrorWins(t *testing.T) {
	config := map[string]any{"bogus": true, "global": []int{1}, "sticky": "maybe"}

	for i := 0; i < 50; i++ {
		_, err := AsFlags(config)
		require.ErrorIs(t, err, ErrInvalidFlagKey)
	}
}
