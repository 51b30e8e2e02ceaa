package inet

import (
	"errors"
	"fmt"
)

// Malformed address text and buffer errors.
var (
	// ErrInvalidIPv4 indicates text that is not a dotted-quad IPv4 literal
	ErrInvalidIPv4 = errors.New("invalid IPv4 address")

	// ErrInvalidIPv6 indicates text that is not a valid IPv6 literal
	ErrInvalidIPv6 = errors.New("invalid IPv6 address")

	// ErrInvalidOnion indicates text that is not a legacy onion name
	ErrInvalidOnion = errors.New("invalid onion address")

	// ErrInvalidIP indicates a raw buffer of the wrong size, or text that is
	// not an address literal of any family
	ErrInvalidIP = errors.New("invalid IP address")

	// ErrOutOfBounds indicates a read or write past the end of a buffer
	ErrOutOfBounds = errors.New("out of bounds")
)

// Host string errors. Each structural problem has its own sentinel so callers
// can tell a bad host from a bad port or a bad key.
var (
	ErrBadAddress      = errors.New("bad address")
	ErrHostEmpty       = errors.New("invalid host (zero length)")
	ErrHostTooLarge    = errors.New("invalid host (too large)")
	ErrBadHost         = errors.New("bad host")
	ErrUnexpectedColon = errors.New("unexpected colon")
	ErrBracketMismatch = errors.New("bracket mismatch")
	ErrBadIPv6Host     = errors.New("bad IPv6 address")
	ErrBadPort         = errors.New("bad port")
	ErrBadKey          = errors.New("bad key")
)

// AddrError records a failed address operation together with its input.
type AddrError struct {
	Op   string // operation that caused the error
	Addr string // offending input if relevant
	Err  error  // underlying error
}

func (e *AddrError) Error() string {
	if e.Addr != "" {
		return fmt.Sprintf("inet %s %q: %v", e.Op, e.Addr, e.Err)
	}
	return fmt.Sprintf("inet %s: %v", e.Op, e.Err)
}

func (e *AddrError) Unwrap() error {
	return e.Err
}

// newAddrError creates a new AddrError
func newAddrError(op, addr string, err error) *AddrError {
	return &AddrError{
		Op:   op,
		Addr: addr,
		Err:  err,
	}
}
