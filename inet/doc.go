// Package inet normalizes, classifies and serializes peer addresses.
//
// Every address, whatever its textual family, is held in one canonical
// 16-byte form, [Addr]. IPv4 addresses are IPv4-mapped (::ffff:a.b.c.d),
// legacy Tor onion names are embedded in fd87:d87e:eb43::/48, and anything
// else is a plain IPv6 address.
//
// # Parsing and Serialization
//
// [Decode] accepts dotted-quad IPv4, IPv6 (with "::" compression and an
// optional embedded dotted quad) and legacy onion names. [Addr.String]
// renders the canonical text: dotted quad for mapped addresses, the onion
// name for onion addresses, and RFC 5952 style compressed IPv6 otherwise.
//
//	a, err := inet.Decode("::FFFF:192.168.1.1")
//	fmt.Println(a)          // 192.168.1.1
//	fmt.Println(a.IsIPv4()) // true
//
// # Classification
//
// Addr methods test membership in the special-purpose ranges (IsRFC1918,
// IsRFC4380, IsLocal, IsMulticast and so on) and derive [Addr.IsValid],
// [Addr.IsRoutable] and [Addr.Network] from them. [Reachability] scores how
// well a source can reach a destination, from [ScoreUnreachable] to
// [ScorePrivate].
//
// # Host Strings
//
// [ToHost] and [FromHost] convert between host/port/key triples and
// "[key@]host[:port]" strings. IPv6 hosts are bracketed, and the key is a
// base32-encoded 33-byte identity key from the identity package.
//
//	s, _ := inet.ToHost("::1", 8333, nil) // "[::1]:8333"
//	rec, _ := inet.FromHost(s, 0, nil)
//	fmt.Println(rec.Port)                 // 8333
//
// # Errors
//
// Failures are returned as *[AddrError] wrapping one of the package sentinel
// errors, so callers can tell malformed text apart with errors.Is:
//
//	if errors.Is(err, inet.ErrBadPort) {
//		// ...
//	}
//
// All functions except the interface enumeration helpers are pure and safe
// for concurrent use.
package inet
