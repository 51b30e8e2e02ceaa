// Package limits provides centralized text size limits for address strings.
// This ensures consistent validation across the parser and the host codec.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxIPv4Text is the longest dotted-quad IPv4 literal ("255.255.255.255").
	MaxIPv4Text = 15

	// MaxIPv6Text is the longest IPv6 literal, including the embedded IPv4 form
	// ("ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255").
	MaxIPv6Text = 45

	// MaxHost is the longest host accepted when rendering a host string.
	MaxHost = 255

	// MaxName is the longest text still considered a symbolic name.
	MaxName = 320

	// MaxKeyText is the length of a base32-encoded 33-byte identity key.
	MaxKeyText = 53

	// MaxPortText is the number of digits in the largest port (65535).
	MaxPortText = 5

	// MaxHostString is the longest "key@host:port" string accepted for parsing:
	// a name, a bracketed port suffix, and a key with its separator.
	MaxHostString = MaxName + 8 + MaxKeyText
)

var (
	// ErrEmpty indicates empty text was provided
	ErrEmpty = errors.New("zero length")

	// ErrTooLarge indicates text exceeds its maximum size
	ErrTooLarge = errors.New("too large")
)

// ValidateTextSize validates text against the specified maximum size.
// Returns an error with context including the actual and maximum sizes.
func ValidateTextSize(text string, maxSize int) error {
	if len(text) == 0 {
		return ErrEmpty
	}
	if len(text) > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrTooLarge, len(text), maxSize)
	}
	return nil
}

// ValidateHost validates a bare host against MaxHost.
func ValidateHost(host string) error {
	return ValidateTextSize(host, MaxHost)
}

// ValidateHostString validates a complete "key@host:port" string against
// MaxHostString.
func ValidateHostString(addr string) error {
	return ValidateTextSize(addr, MaxHostString)
}

// ValidatePortText validates the digits of a port against MaxPortText.
func ValidatePortText(port string) error {
	return ValidateTextSize(port, MaxPortText)
}
