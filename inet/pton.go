package inet

import (
	"fmt"
	"strings"

	"github.com/opd-ai/inetaddr/limits"
	"github.com/opd-ai/inetaddr/onion"
)

// Address bits written by the Put functions.
const (
	IPv4Bits = 32
	IPv6Bits = 128
)

// PutIPv4 parses a dotted-quad literal and writes its 4 bytes to dst at off.
// It returns the number of address bits written.
func PutIPv4(dst []byte, off int, s string) (int, error) {
	if off < 0 || off > len(dst)-4 {
		return 0, newAddrError("pton4", s, ErrOutOfBounds)
	}
	ip, ok := parseIPv4(s)
	if !ok {
		return 0, newAddrError("pton4", s, ErrInvalidIPv4)
	}
	copy(dst[off:], ip[:])
	return IPv4Bits, nil
}

// PutIPv6 parses an IPv6 literal and writes its 16 bytes to dst at off.
// It returns the number of address bits written.
func PutIPv6(dst []byte, off int, s string) (int, error) {
	if off < 0 || off > len(dst)-Size {
		return 0, newAddrError("pton6", s, ErrOutOfBounds)
	}
	ip, ok := parseIPv6(s)
	if !ok {
		return 0, newAddrError("pton6", s, ErrInvalidIPv6)
	}
	copy(dst[off:], ip[:])
	return IPv6Bits, nil
}

// DecodeIPv4 parses a dotted-quad literal into its IPv4-mapped form.
func DecodeIPv4(s string) (Addr, error) {
	ip, ok := parseIPv4(s)
	if !ok {
		return ZeroIP, newAddrError("decode", s, ErrInvalidIPv4)
	}
	a, _ := Map(ip[:])
	return a, nil
}

// DecodeIPv6 parses an IPv6 literal. An embedded dotted quad is allowed as
// the last two groups.
func DecodeIPv6(s string) (Addr, error) {
	ip, ok := parseIPv6(s)
	if !ok {
		return ZeroIP, newAddrError("decode", s, ErrInvalidIPv6)
	}
	return Addr(ip), nil
}

// DecodeOnion parses a legacy onion name into the onion-prefixed form.
func DecodeOnion(s string) (Addr, error) {
	var a Addr
	id, err := onion.DecodeLegacy(s)
	if err != nil {
		return a, newAddrError("decode", s, fmt.Errorf("%w: %w", ErrInvalidOnion, err))
	}
	copy(a[:], torOnionPrefix)
	copy(a[len(torOnionPrefix):], id)
	return a, nil
}

// Decode parses any address literal: dotted-quad IPv4, IPv6 or a legacy onion
// name. Anything else, including host names, is ErrInvalidIP.
func Decode(s string) (Addr, error) {
	switch guessType(s) {
	case AddressTypeIPv4:
		return DecodeIPv4(s)
	case AddressTypeIPv6:
		return DecodeIPv6(s)
	case AddressTypeOnion:
		return DecodeOnion(s)
	}
	return ZeroIP, newAddrError("decode", s, ErrInvalidIP)
}

// Normalize returns the canonical text of an address literal.
func Normalize(s string) (string, error) {
	a, err := Decode(s)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// IsIPv4String reports whether s is a valid dotted-quad literal.
func IsIPv4String(s string) bool {
	if guessType(s) != AddressTypeIPv4 {
		return false
	}
	_, ok := parseIPv4(s)
	return ok
}

// IsIPv6String reports whether s is a valid IPv6 literal.
func IsIPv6String(s string) bool {
	if guessType(s) != AddressTypeIPv6 {
		return false
	}
	_, ok := parseIPv6(s)
	return ok
}

// IsOnionString reports whether s is a legacy onion name.
func IsOnionString(s string) bool {
	return onion.IsLegacyString(s)
}

// IsMappedString reports whether s is IPv6 text for an IPv4-mapped address,
// such as "::ffff:1.2.3.4". Dotted quads themselves are not mapped strings.
func IsMappedString(s string) bool {
	if guessType(s) != AddressTypeIPv6 {
		return false
	}
	ip, ok := parseIPv6(s)
	return ok && Addr(ip).IsIPv4()
}

// IsNameString reports whether s should be treated as a symbolic host name.
func IsNameString(s string) bool {
	if len(s) == 0 || len(s) > limits.MaxName {
		return false
	}
	return StringType(s) == AddressTypeName
}

// StringType returns the family of a valid address literal, or
// AddressTypeName for anything that does not parse as one.
func StringType(s string) AddressType {
	switch {
	case IsIPv4String(s):
		return AddressTypeIPv4
	case IsIPv6String(s):
		return AddressTypeIPv6
	case IsOnionString(s):
		return AddressTypeOnion
	}
	return AddressTypeName
}

// guessType picks the only family s could belong to from its shape alone,
// without validating it: onion suffix, any colon, or three dots over digits.
func guessType(s string) AddressType {
	if onion.IsLegacyString(s) {
		return AddressTypeOnion
	}
	if len(s) >= 2 && strings.IndexByte(s, ':') >= 0 {
		return AddressTypeIPv6
	}
	if len(s) >= 7 && len(s) <= limits.MaxIPv4Text && strings.Count(s, ".") == 3 &&
		strings.Trim(s, "0123456789.") == "" {
		return AddressTypeIPv4
	}
	return AddressTypeName
}

// parseIPv4 accepts exactly four decimal octets of 1-3 digits each.
func parseIPv4(s string) (ip [4]byte, ok bool) {
	if len(s) > limits.MaxIPv4Text {
		return ip, false
	}

	word, size, dots := 0, 0, 0

	for i := 0; i < len(s); i++ {
		ch := s[i]

		switch {
		case ch == '.':
			if dots == 3 || size == 0 || word > 0xff {
				return ip, false
			}
			ip[dots] = byte(word)
			dots++
			word, size = 0, 0
		case ch >= '0' && ch <= '9':
			if size == 3 {
				return ip, false
			}
			word = word*10 + int(ch-'0')
			size++
		default:
			return ip, false
		}
	}

	if dots != 3 || size == 0 || word > 0xff {
		return ip, false
	}
	ip[3] = byte(word)

	return ip, true
}

// parseIPv6 splits s around a single "::" and parses both halves as 16-bit
// groups. Without "::" there must be exactly eight groups; with it, the
// elided zero groups make up the difference to eight.
func parseIPv6(s string) (ip [16]byte, ok bool) {
	if len(s) < 2 || len(s) > limits.MaxIPv6Text || strings.IndexByte(s, ':') < 0 {
		return ip, false
	}

	head, tail := s, ""
	elided := false

	if i := strings.Index(s, "::"); i >= 0 {
		head, tail = s[:i], s[i+2:]
		elided = true
		// ":::" and a second "::" both leave a colon run in the tail.
		if strings.HasPrefix(tail, ":") || strings.Contains(tail, "::") {
			return ip, false
		}
	}

	front, ok := parseGroups(head, !elided)
	if !ok {
		return ip, false
	}

	var back []uint16
	if elided {
		back, ok = parseGroups(tail, true)
		if !ok {
			return ip, false
		}
	}

	missing := 8 - len(front) - len(back)
	if missing < 0 || (!elided && missing != 0) {
		return ip, false
	}

	off := 0
	for _, w := range front {
		ip[off] = byte(w >> 8)
		ip[off+1] = byte(w)
		off += 2
	}
	off += missing * 2
	for _, w := range back {
		ip[off] = byte(w >> 8)
		ip[off+1] = byte(w)
		off += 2
	}

	return ip, true
}

// parseGroups parses colon-separated hex groups. When v4Tail is set the last
// field may be a dotted quad, which counts as two groups.
func parseGroups(seg string, v4Tail bool) ([]uint16, bool) {
	if seg == "" {
		return nil, true
	}

	fields := strings.Split(seg, ":")
	if len(fields) > 8 {
		return nil, false
	}

	groups := make([]uint16, 0, 8)

	for i, field := range fields {
		if v4Tail && i == len(fields)-1 && strings.IndexByte(field, '.') >= 0 {
			v4, ok := parseIPv4(field)
			if !ok {
				return nil, false
			}
			groups = append(groups,
				uint16(v4[0])<<8|uint16(v4[1]),
				uint16(v4[2])<<8|uint16(v4[3]))
			continue
		}

		word, ok := parseHexGroup(field)
		if !ok {
			return nil, false
		}
		groups = append(groups, word)
	}

	return groups, true
}

// parseHexGroup parses 1-4 hex digits, either case.
func parseHexGroup(field string) (uint16, bool) {
	if len(field) == 0 || len(field) > 4 {
		return 0, false
	}

	var word uint16

	for i := 0; i < len(field); i++ {
		ch := field[i]
		word <<= 4

		switch {
		case ch >= '0' && ch <= '9':
			word |= uint16(ch - '0')
		case ch >= 'a' && ch <= 'f':
			word |= uint16(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			word |= uint16(ch-'A') + 10
		default:
			return 0, false
		}
	}

	return word, true
}
