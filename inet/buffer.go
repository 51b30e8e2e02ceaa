package inet

import (
	"fmt"
)

// Read decodes an address of size bytes (4 or 16) from buf at off. A 4-byte
// address is returned IPv4-mapped. It also returns the offset just past the
// address.
func Read(buf []byte, off, size int) (Addr, int, error) {
	if size != 4 && size != Size {
		return ZeroIP, off, newAddrError("read", "", fmt.Errorf("%w: size %d", ErrInvalidIP, size))
	}
	if off < 0 || off > len(buf)-size {
		return ZeroIP, off, newAddrError("read", "", ErrOutOfBounds)
	}

	a, _ := Map(buf[off : off+size])
	return a, off + size, nil
}

// Write stores a into buf at off using size bytes. A 4-byte slot only holds
// IPv4-mapped addresses. It returns the offset just past the address.
func Write(buf []byte, a Addr, off, size int) (int, error) {
	if size != 4 && size != Size {
		return off, newAddrError("write", a.String(), fmt.Errorf("%w: size %d", ErrInvalidIP, size))
	}
	if off < 0 || off > len(buf)-size {
		return off, newAddrError("write", a.String(), ErrOutOfBounds)
	}

	if size == 4 {
		v4, ok := a.Unmap()
		if !ok {
			return off, newAddrError("write", a.String(), ErrInvalidIPv4)
		}
		copy(buf[off:], v4[:])
		return off + 4, nil
	}

	copy(buf[off:], a[:])
	return off + Size, nil
}

// WriteString decodes an address literal and stores it like Write. A literal
// that does not decode is reported against the slot size: ErrInvalidIPv4 for
// 4-byte slots, ErrInvalidIPv6 for 16-byte slots.
func WriteString(buf []byte, s string, off, size int) (int, error) {
	a, err := Decode(s)
	if err != nil {
		switch size {
		case 4:
			return off, newAddrError("write", s, ErrInvalidIPv4)
		case Size:
			return off, newAddrError("write", s, ErrInvalidIPv6)
		}
		return off, err
	}
	return Write(buf, a, off, size)
}
