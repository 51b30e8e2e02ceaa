package inet

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressTypeString(t *testing.T) {
	tests := []struct {
		typ      AddressType
		expected string
	}{
		{AddressTypeName, "Name"},
		{AddressTypeIPv4, "IPv4"},
		{AddressTypeIPv6, "IPv6"},
		{AddressTypeOnion, "Onion"},
		{AddressType(99), "AddressType(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{1}, Size)
	a, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, a.Bytes())

	// Bytes returns a copy.
	b := a.Bytes()
	b[0] = 0xff
	assert.Equal(t, byte(1), a[0])

	_, err = FromBytes(make([]byte, 15))
	assert.True(t, errors.Is(err, ErrInvalidIP))
}

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"zero ipv6", "00000000000000000000000000000000", "00000000000000000000000000000000"},
		{"ones", "01010101010101010101010101010101", "01010101010101010101010101010101"},
		{"mapped zero", "00000000000000000000ffff00000000", "00000000000000000000ffff00000000"},
		{"bare zero", "00000000", "00000000000000000000ffff00000000"},
		{"already mapped", "00000000000000000000fffffefefefe", "00000000000000000000fffffefefefe"},
		{"bare", "fefefefe", "00000000000000000000fffffefefefe"},
		{"bare ones", "ffffffff", "00000000000000000000ffffffffffff"},
		{"unmappable kept", "ffffffffffffffffffffffffffffffff", "ffffffffffffffffffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Map(mustHex(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.expected), a.Bytes())
		})
	}

	_, err := Map(make([]byte, 5))
	assert.True(t, errors.Is(err, ErrInvalidIP))
}

func TestUnmap(t *testing.T) {
	mapped := []struct {
		raw      string
		expected [4]byte
	}{
		{"00000000000000000000ffff00000000", [4]byte{0, 0, 0, 0}},
		{"00000000000000000000ffffffffffff", [4]byte{0xff, 0xff, 0xff, 0xff}},
		{"00000000000000000000ffff7f000001", [4]byte{127, 0, 0, 1}},
	}

	for _, tt := range mapped {
		a, err := FromBytes(mustHex(t, tt.raw))
		require.NoError(t, err)
		v4, ok := a.Unmap()
		assert.True(t, ok, tt.raw)
		assert.Equal(t, tt.expected, v4)
	}

	unmapped := []string{
		"00000000000000000000000000000000",
		"000000000000000000000000ffffffff",
		"00000000000000000000000fffffffff",
		"0000000000000000000000ffffffffff",
		"000000000000000000000fffffffffff",
		"00000000000000000001ffffffffffff",
		"10000000000000000000ffffffffffff",
		"f0000000000000000000ffff00000000",
		"ffffffffffffffffffffffff00000000",
		"ffffffffffffffffffffffffffffffff",
	}

	for _, raw := range unmapped {
		a, err := FromBytes(mustHex(t, raw))
		require.NoError(t, err)
		_, ok := a.Unmap()
		assert.False(t, ok, raw)
		assert.False(t, a.IsMapped(), raw)
	}
}

func TestEqual(t *testing.T) {
	a := mustDecode(t, "::1").Bytes()
	b := LocalIP.Bytes()
	c := ZeroIP.Bytes()

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))

	assert.Panics(t, func() { Equal(a[:4], b) })
	assert.Panics(t, func() { Equal(a, make([]byte, 17)) })
}

func TestHasPrefix(t *testing.T) {
	a := mustDecode(t, "fd87:d87e:eb43::1")

	assert.True(t, a.HasPrefix(torOnionPrefix))
	assert.True(t, a.HasPrefix(nil))
	assert.True(t, a.HasPrefix(a[:]))
	assert.False(t, a.HasPrefix(mappedPrefix))

	assert.Panics(t, func() { a.HasPrefix(make([]byte, Size+1)) })
}

func TestTextMarshaling(t *testing.T) {
	type peer struct {
		Addr Addr `json:"addr"`
	}

	data, err := json.Marshal(peer{Addr: mustDecode(t, "2001:0db8::0001")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"2001:db8::1"}`, string(data))

	var p peer
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"::ffff:10.0.0.1"}`), &p))
	assert.Equal(t, "10.0.0.1", p.Addr.String())
	assert.True(t, p.Addr.IsRFC1918())

	err = json.Unmarshal([]byte(`{"addr":"example.com"}`), &p)
	assert.True(t, errors.Is(err, ErrInvalidIP))
}
