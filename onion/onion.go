package onion

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

const (
	// LegacySize is the size of a decoded legacy onion identifier.
	LegacySize = 10

	// LegacyLength is the length of the base32 label of a legacy onion name.
	LegacyLength = 16

	// Suffix is the pseudo top-level domain of onion names.
	Suffix = ".onion"
)

var (
	// ErrInvalidLength indicates the onion label is not 16 characters long.
	ErrInvalidLength = errors.New("invalid onion name length")

	// ErrInvalidEncoding indicates the onion label is not valid base32.
	ErrInvalidEncoding = errors.New("invalid onion name encoding")

	// ErrInvalidSize indicates the identifier is not 10 bytes long.
	ErrInvalidSize = errors.New("invalid onion identifier size")
)

var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// EncodeLegacy renders a 10-byte identifier as a 16-character base32 label,
// without the ".onion" suffix. It panics if id is not LegacySize bytes.
func EncodeLegacy(id []byte) string {
	if len(id) != LegacySize {
		panic(fmt.Sprintf("onion: identifier must be %d bytes, got %d", LegacySize, len(id)))
	}
	return encoding.EncodeToString(id)
}

// DecodeLegacy parses a legacy onion name. The ".onion" suffix is optional
// and the label is matched case-insensitively.
func DecodeLegacy(name string) ([]byte, error) {
	label := trimSuffix(name)
	if len(label) != LegacyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(label))
	}

	id, err := encoding.DecodeString(strings.ToLower(label))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(id) != LegacySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(id))
	}
	return id, nil
}

// IsLegacyString reports whether s is a complete legacy onion name, suffix
// included.
func IsLegacyString(s string) bool {
	if len(s) != LegacyLength+len(Suffix) {
		return false
	}
	if !strings.EqualFold(s[LegacyLength:], Suffix) {
		return false
	}
	for i := 0; i < LegacyLength; i++ {
		if !isBase32Char(s[i]) {
			return false
		}
	}
	return true
}

func trimSuffix(name string) string {
	if len(name) >= len(Suffix) && strings.EqualFold(name[len(name)-len(Suffix):], Suffix) {
		return name[:len(name)-len(Suffix)]
	}
	return name
}

func isBase32Char(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '2' && ch <= '7':
		return true
	}
	return false
}
