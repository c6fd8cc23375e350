package gitx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tag
		wantErr bool
	}{
		{"simple", "v1.2.3", Tag{Prefix: "v", Major: 1, Minor: 2, Patch: 3}, false},
		{"zero", "v0.0.0", Tag{Prefix: "v"}, false},
		{"double digit", "v0.10.0", Tag{Prefix: "v", Minor: 10}, false},
		{"missing prefix", "1.2.3", Tag{}, true},
		{"two parts", "v1.2", Tag{}, true},
		{"four parts", "v1.2.3.4", Tag{}, true},
		{"prerelease suffix", "v1.2.3-rc1", Tag{}, true},
		{"non numeric", "v1.two.3", Tag{}, true},
		{"negative", "v1.-2.3", Tag{}, true},
		{"empty", "", Tag{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTag("v", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTagCustomPrefix(t *testing.T) {
	got, err := ParseTag("release-", "release-2.0.1")
	require.NoError(t, err)
	assert.Equal(t, Tag{Prefix: "release-", Major: 2, Minor: 0, Patch: 1}, got)
	assert.Equal(t, "release-2.0.1", got.String())

	_, err = ParseTag("release-", "v2.0.1")
	require.Error(t, err)
}

func TestTagString(t *testing.T) {
	tag := Tag{Prefix: "v", Major: 1, Minor: 2, Patch: 3}
	assert.Equal(t, "v1.2.3", tag.String())

	parsed, err := ParseTag("v", tag.String())
	require.NoError(t, err)
	assert.Equal(t, tag, parsed)
}

func TestTagCompare(t *testing.T) {
	// Numeric ordering, not lexical: v0.10.0 > v0.9.0.
	older, err := ParseTag("v", "v0.9.0")
	require.NoError(t, err)
	newer, err := ParseTag("v", "v0.10.0")
	require.NoError(t, err)

	assert.True(t, older.Less(newer))
	assert.False(t, newer.Less(older))
	assert.Equal(t, 0, older.Compare(older))

	assert.True(t, Tag{Major: 1, Minor: 9, Patch: 9}.Less(Tag{Major: 2}))
	assert.True(t, Tag{Major: 1, Minor: 1, Patch: 1}.Less(Tag{Major: 1, Minor: 1, Patch: 2}))
}

func TestTagBump(t *testing.T) {
	base := Tag{Prefix: "v", Major: 1, Minor: 2, Patch: 3}

	tests := []struct {
		name string
		part Part
		want string
	}{
		{"major zeroes the rest", PartMajor, "v2.0.0"},
		{"minor zeroes patch", PartMinor, "v1.3.0"},
		{"patch", PartPatch, "v1.2.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Bump(tt.part).String())
		})
	}

	// Bump does not mutate the receiver.
	assert.Equal(t, "v1.2.3", base.String())
}
