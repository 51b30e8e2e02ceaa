// Package limits provides centralized size constants and validation functions
// for address text. The inet package consults these limits before parsing so
// that oversized input is rejected without being scanned.
//
// # Size Hierarchy
//
//   - MaxIPv4Text (15): the longest dotted-quad literal.
//   - MaxIPv6Text (45): the longest IPv6 literal, embedded IPv4 tail included.
//   - MaxHost (255): the longest host accepted when rendering "host:port".
//   - MaxName (320): the longest text still considered a symbolic name.
//   - MaxHostString (381): the longest "key@host:port" accepted for parsing.
//
// # Validation Functions
//
// Each validation function checks for empty text and size limit violations:
//
//	if err := limits.ValidateHost(host); err != nil {
//	    // ErrEmpty or ErrTooLarge
//	}
//
// For custom limits, use ValidateTextSize:
//
//	err := limits.ValidateTextSize(label, 63)
package limits
