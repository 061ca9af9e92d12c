package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	res, err := Parse("github:abc123,google:def456", Lenient)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Service: "github", Code: "abc123"},
		{Service: "google", Code: "def456"},
	}, res.Entries)
	assert.Empty(t, res.Dropped)
}

func TestParse_SplitsOnFirstColonOnly(t *testing.T) {
	res, err := Parse("aws:key:with:colons", Lenient)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)

	assert.Equal(t, "aws", res.Entries[0].Service)
	assert.Equal(t, "key:with:colons", res.Entries[0].Code)
}

func TestParse_LenientDropsMalformed(t *testing.T) {
	res, err := Parse("github:abc123,noColonHere,google:def456", Lenient)
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "github", res.Entries[0].Service)
	assert.Equal(t, "google", res.Entries[1].Service)
	assert.Equal(t, []string{"noColonHere"}, res.Dropped)
}

func TestParse_StrictRejectsMalformed(t *testing.T) {
	_, err := Parse("github:abc123,noColonHere", Strict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestParse_EmptyInput(t *testing.T) {
	for _, p := range []Policy{Lenient, Strict} {
		res, err := Parse("", p)
		require.NoError(t, err)
		assert.Empty(t, res.Entries)
		assert.Empty(t, res.Dropped)
	}
}

func TestParse_BlankSegmentsIgnored(t *testing.T) {
	res, err := Parse("github:abc, ,google:def,", Strict)
	require.NoError(t, err)
	assert.Len(t, res.Entries, 2)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	res, err := Parse(" github : abc123 ", Lenient)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, Entry{Service: "github", Code: "abc123"}, res.Entries[0])
}

func TestParse_TrimOnlyAtEdges(t *testing.T) {
	res, err := Parse("\tmy bank :\t12 34\n", Lenient)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, Entry{Service: "my bank", Code: "12 34"}, res.Entries[0])
}
