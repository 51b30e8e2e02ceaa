// Package onion encodes and decodes legacy (version 2) Tor hidden service
// names.
//
// A legacy onion name is the lowercase RFC 4648 base32 rendering of a 10-byte
// identifier followed by the ".onion" suffix, for example
// "7777777777777777.onion". The inet package embeds these 10 bytes in the
// fd87:d87e:eb43::/48 block so onion peers can be stored next to IPv4 and
// IPv6 peers in a single 16-byte form.
//
//	id, err := onion.DecodeLegacy("aaaaaaaaaaaaaaaa.onion")
//	name := onion.EncodeLegacy(id) // "aaaaaaaaaaaaaaaa"
//
// Version 3 names (56 characters) are not recognized and are treated as
// ordinary host names by callers.
package onion
