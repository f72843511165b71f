package jsonvalue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeepsMemberOrder(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())
	assert.Equal(t, []string{"b", "a"}, v.Field("mid").Keys())
}

func TestDecodeNestedObjects(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"event": {"homeTeam": {"name": "Luke Littler", "country": {"name": "England"}}, "id": 42}, "list": [{"k": "v"}, {}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"event", "list"}, v.Keys())
	assert.Equal(t, []string{"homeTeam", "id"}, v.Field("event").Keys())
	assert.Equal(t, "Luke Littler", v.Path("event", "homeTeam", "name").StringOr(""))
	assert.Equal(t, "England", v.Path("event", "homeTeam", "country", "name").StringOr(""))
	assert.Equal(t, int64(42), v.Path("event", "id").IntOr(0))
	assert.Equal(t, "v", v.Field("list").Index(0).Field("k").StringOr(""))
	assert.Equal(t, 0, v.Field("list").Index(1).Len())
	assert.True(t, v.Field("list").Index(1).IsObject())
}

func TestDecodeDuplicateKeys(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Keys())
	assert.Equal(t, int64(3), v.Field("a").IntOr(0))
}

func TestDecodeScalars(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"s": "xé", "i": 1765612800, "f": 98.5, "e": 1e3, "t": true, "n": null, "arr": [1, "two"]}`))
	require.NoError(t, err)

	assert.Equal(t, "xé", v.Field("s").StringOr(""))
	assert.Equal(t, int64(1765612800), v.Field("i").IntOr(0))
	assert.Equal(t, "int", v.Field("i").TypeName())
	assert.Equal(t, "float", v.Field("f").TypeName())
	assert.Equal(t, "float", v.Field("e").TypeName())
	assert.Equal(t, int64(1000), v.Field("e").IntOr(0))
	b, ok := v.Field("t").BoolValue()
	assert.True(t, ok)
	assert.True(t, b)
	assert.Equal(t, 2, v.Field("arr").Len())
	assert.Equal(t, "two", v.Field("arr").Index(1).StringOr(""))
}

func TestNullAndAbsentAreEquivalent(t *testing.T) {
	v, err := DecodeBytes([]byte(`{"shortName": null}`))
	require.NoError(t, err)

	assert.True(t, v.Has("shortName"))
	assert.Nil(t, v.Field("shortName"))
	assert.Nil(t, v.Field("missing"))
	assert.Equal(t, "N/A", v.Field("shortName").Display("N/A"))
	assert.Equal(t, "N/A", v.Path("missing", "deeper", "name").Display("N/A"))
	assert.Equal(t, int64(7), v.Path("shortName", "x").IntOr(7))
}

func TestNilValueIsSafe(t *testing.T) {
	var v *Value
	assert.Equal(t, KindNull, v.Kind())
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Keys())
	assert.Nil(t, v.Items())
	assert.False(t, v.Has("x"))
	assert.Equal(t, "null", v.TypeName())
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"truncated", `{"events": [`},
		{"trailing comma", `{"a": 1,}`},
		{"bare word", `hello`},
		{"trailing data", `{"a": 1} {"b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidJSON), "error %v should wrap ErrInvalidJSON", err)
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1}]`), 0o644))

	v, err := DecodeFile(path)
	require.NoError(t, err)
	assert.True(t, v.IsArray())
	assert.Equal(t, int64(1), v.Index(0).Field("id").IntOr(0))

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrInvalidJSON))
}

func TestObjectBuilder(t *testing.T) {
	v := Object(
		Member{Key: "b", Value: Int(1)},
		Member{Key: "a", Value: String("x")},
		Member{Key: "b", Value: Int(2)},
	)
	assert.Equal(t, []string{"b", "a"}, v.Keys())
	assert.Equal(t, int64(2), v.Field("b").IntOr(0))
}
