// Package identity encodes the 33-byte peer identity keys that may prefix a
// host string as "key@host:port".
//
// Keys are rendered in unpadded lowercase RFC 4648 base32, which yields 53
// characters for a 33-byte key.
package identity

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// Size is the size of a raw identity key.
	Size = 33

	// EncodedLength is the length of a base32-encoded identity key.
	EncodedLength = 53
)

var (
	// ErrKeySize indicates a decoded key is not Size bytes long.
	ErrKeySize = errors.New("invalid key size")

	// ErrKeyEncoding indicates the key text is not valid base32.
	ErrKeyEncoding = errors.New("invalid key encoding")

	// ErrInvalidKey indicates the key is not a compressed secp256k1 point.
	ErrInvalidKey = errors.New("invalid public key")
)

var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Key is a raw identity public key.
type Key [Size]byte

// Zero is the all-zero key. It is treated as "no key" when rendering hosts.
var Zero Key

// IsZero reports whether k is the all-zero key.
func (k Key) IsZero() bool {
	return k == Zero
}

// String returns the base32 form of the key.
func (k Key) String() string {
	return Encode(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(Encode(k)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	key, err := Decode(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// Encode renders a key as base32.
func Encode(k Key) string {
	return encoding.EncodeToString(k[:])
}

// Decode parses a base32 key. Text longer than EncodedLength, text that is
// not base32, and text that does not decode to exactly Size bytes are
// rejected.
func Decode(s string) (Key, error) {
	var k Key

	if len(s) > EncodedLength {
		return k, fmt.Errorf("%w: %d characters", ErrKeySize, len(s))
	}

	text := strings.ToLower(s)
	raw, err := encoding.DecodeString(text)
	if err != nil {
		return k, fmt.Errorf("%w: %v", ErrKeyEncoding, err)
	}
	if len(raw) != Size {
		return k, fmt.Errorf("%w: %d bytes", ErrKeySize, len(raw))
	}

	copy(k[:], raw)

	// The last character carries one unused bit, which must be zero.
	if Encode(k) != text {
		return Key{}, fmt.Errorf("%w: non-canonical trailing bits", ErrKeyEncoding)
	}
	return k, nil
}

// FromBytes copies a raw key, rejecting any length other than Size.
func FromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != Size {
		return k, fmt.Errorf("%w: %d bytes", ErrKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// Validate checks that k is a compressed secp256k1 public key. Host strings
// do not require this; callers that accept keys from untrusted peers may
// apply it on top of Decode.
func Validate(k Key) error {
	if k[0] != secp256k1.PubKeyFormatCompressedEven && k[0] != secp256k1.PubKeyFormatCompressedOdd {
		return fmt.Errorf("%w: prefix 0x%02x", ErrInvalidKey, k[0])
	}
	if _, err := secp256k1.ParsePubKey(k[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return nil
}
