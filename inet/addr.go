package inet

import (
	"fmt"
)

// Size is the size of the canonical address form.
const Size = 16

// AddressType is the family of an address or address literal.
type AddressType uint8

const (
	// AddressTypeName marks text that is not an address literal (a symbolic name)
	AddressTypeName AddressType = 0
	// AddressTypeIPv4 represents IPv4 addresses, stored IPv4-mapped
	AddressTypeIPv4 AddressType = 4
	// AddressTypeIPv6 represents plain IPv6 addresses
	AddressTypeIPv6 AddressType = 6
	// AddressTypeOnion represents legacy Tor onion addresses
	AddressTypeOnion AddressType = 10
)

// String returns a human-readable representation of the AddressType.
func (at AddressType) String() string {
	switch at {
	case AddressTypeName:
		return "Name"
	case AddressTypeIPv4:
		return "IPv4"
	case AddressTypeIPv6:
		return "IPv6"
	case AddressTypeOnion:
		return "Onion"
	default:
		return fmt.Sprintf("AddressType(%d)", uint8(at))
	}
}

// Addr is the canonical 16-byte form shared by every address family.
//
// IPv4 addresses are stored IPv4-mapped (::ffff:a.b.c.d), legacy onion
// addresses carry the fd87:d87e:eb43::/48 prefix followed by their 10-byte
// identifier, and everything else is a plain IPv6 address. Exactly one of
// IsIPv4, IsOnion and IsIPv6 holds for any value.
type Addr [Size]byte

var (
	// ZeroIP is the all-zero address (::). Names decode to it.
	ZeroIP Addr

	// LocalIP is the IPv6 loopback address (::1).
	LocalIP = Addr{15: 0x01}
)

var (
	mappedPrefix   = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}
	torOnionPrefix = []byte{0xfd, 0x87, 0xd8, 0x7e, 0xeb, 0x43}
	shiftedPrefix  = []byte{0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}
	rfc6052Prefix  = []byte{0x00, 0x64, 0xff, 0x9b, 0, 0, 0, 0, 0, 0, 0, 0}
	rfc4862Prefix  = []byte{0xfe, 0x80, 0, 0, 0, 0, 0, 0}
	rfc6145Prefix  = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 0, 0}
)

// FromBytes copies a 16-byte raw address.
func FromBytes(raw []byte) (Addr, error) {
	var a Addr
	if len(raw) != Size {
		return a, newAddrError("frombytes", "", fmt.Errorf("%w: %d bytes", ErrInvalidIP, len(raw)))
	}
	copy(a[:], raw)
	return a, nil
}

// Map converts a 4-byte IPv4 address to its IPv4-mapped form. A 16-byte
// address is returned unchanged.
func Map(raw []byte) (Addr, error) {
	var a Addr
	switch len(raw) {
	case 4:
		copy(a[:], mappedPrefix)
		copy(a[12:], raw)
		return a, nil
	case Size:
		copy(a[:], raw)
		return a, nil
	}
	return a, newAddrError("map", "", fmt.Errorf("%w: %d bytes", ErrInvalidIP, len(raw)))
}

// Unmap returns the IPv4 octets of an IPv4-mapped address.
func (a Addr) Unmap() ([4]byte, bool) {
	var v4 [4]byte
	if !a.IsIPv4() {
		return v4, false
	}
	copy(v4[:], a[12:])
	return v4, true
}

// Bytes returns a copy of the raw address.
func (a Addr) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, a[:])
	return b
}

// IsIPv4 reports whether a is IPv4-mapped.
func (a Addr) IsIPv4() bool {
	return a.HasPrefix(mappedPrefix)
}

// IsMapped is IsIPv4 under its IPv6 name.
func (a Addr) IsMapped() bool {
	return a.IsIPv4()
}

// IsOnion reports whether a carries the Tor onion prefix.
func (a Addr) IsOnion() bool {
	return a.HasPrefix(torOnionPrefix)
}

// IsIPv6 reports whether a is neither IPv4-mapped nor an onion address.
func (a Addr) IsIPv6() bool {
	return !a.IsIPv4() && !a.IsOnion()
}

// Type returns the family of a.
func (a Addr) Type() AddressType {
	switch {
	case a.IsIPv4():
		return AddressTypeIPv4
	case a.IsOnion():
		return AddressTypeOnion
	default:
		return AddressTypeIPv6
	}
}

// HasPrefix reports whether a starts with prefix. It panics if prefix is
// longer than Size.
func (a Addr) HasPrefix(prefix []byte) bool {
	if len(prefix) > Size {
		panic(fmt.Sprintf("inet: prefix of %d bytes exceeds address size", len(prefix)))
	}
	for i, b := range prefix {
		if a[i] != b {
			return false
		}
	}
	return true
}

// Equal compares two raw addresses. Both must be exactly Size bytes; any
// other length is a caller bug and panics.
func Equal(a, b []byte) bool {
	if len(a) != Size || len(b) != Size {
		panic(fmt.Sprintf("inet: Equal requires %d-byte addresses, got %d and %d", Size, len(a), len(b)))
	}
	for i := 0; i < Size; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the canonical text form of a.
func (a Addr) String() string {
	return a.encode()
}

// MarshalText implements encoding.TextMarshaler.
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts IPv4, IPv6
// and legacy onion literals.
func (a *Addr) UnmarshalText(text []byte) error {
	addr, err := Decode(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
