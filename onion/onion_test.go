package onion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLegacy(t *testing.T) {
	tests := []struct {
		name     string
		id       []byte
		expected string
	}{
		{"all ones", bytes.Repeat([]byte{0xff}, LegacySize), "7777777777777777"},
		{"all zeros", make([]byte, LegacySize), "aaaaaaaaaaaaaaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeLegacy(tt.id))
		})
	}
}

func TestEncodeLegacyPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { EncodeLegacy(make([]byte, 9)) })
}

func TestDecodeLegacy(t *testing.T) {
	names := []string{
		"aaaaaaaaaaaaaaaa.onion",
		"zzzzzzzzzzzzzzzz.onion",
		"abcdefghijklmnop.onion",
		"qrstuvwxyz234567.onion",
		"7777777777777777",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			id, err := DecodeLegacy(name)
			require.NoError(t, err)
			require.Len(t, id, LegacySize)
			assert.Equal(t, trimSuffix(name), EncodeLegacy(id))
		})
	}
}

func TestDecodeLegacyUppercase(t *testing.T) {
	id, err := DecodeLegacy("ABCDEFGHIJKLMNOP.ONION")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnop", EncodeLegacy(id))
}

func TestDecodeLegacyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"too short", "abc.onion", ErrInvalidLength},
		{"v3 length", "pg6mmjiyjmcrsslvykfwnntlaru7p5svn6y2ymmju6nubxndf4pscryd.onion", ErrInvalidLength},
		{"bad alphabet", "0000000000000000.onion", ErrInvalidEncoding},
		{"empty", "", ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLegacy(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestIsLegacyString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"aaaaaaaaaaaaaaaa.onion", true},
		{"qrstuvwxyz234567.onion", true},
		{"QRSTUVWXYZ234567.Onion", true},
		{"aaaaaaaaaaaaaaaa", false},
		{"0000000000000000.onion", false},
		{"aaaaaaaaaaaaaaa.onion", false},
		{"aaaaaaaaaaaaaaaa.onions", false},
		{"example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLegacyString(tt.input))
		})
	}
}
