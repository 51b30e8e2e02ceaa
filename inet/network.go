package inet

import "fmt"

// Network is the reachability class of an address. It refines AddressType
// by splitting Teredo out of IPv6 and by folding unroutable addresses into
// NetworkNone.
type Network uint8

const (
	// NetworkNone marks an address that is not routable
	NetworkNone Network = iota
	// NetworkIPv4 is routable IPv4 space
	NetworkIPv4
	// NetworkIPv6 is routable IPv6 space outside Teredo
	NetworkIPv6
	// NetworkOnion is the legacy Tor onion range
	NetworkOnion
	// NetworkTeredo is the Teredo tunnel range (2001::/32)
	NetworkTeredo
)

// String returns a human-readable representation of the Network.
func (n Network) String() string {
	switch n {
	case NetworkNone:
		return "None"
	case NetworkIPv4:
		return "IPv4"
	case NetworkIPv6:
		return "IPv6"
	case NetworkOnion:
		return "Onion"
	case NetworkTeredo:
		return "Teredo"
	default:
		return fmt.Sprintf("Network(%d)", uint8(n))
	}
}

// Network returns the reachability class of a, or NetworkNone when a is not
// routable.
func (a Addr) Network() Network {
	if !a.IsRoutable() {
		return NetworkNone
	}
	return a.RawNetwork()
}

// RawNetwork classifies a by its bytes alone, ignoring routability:
// IPv4-mapped, then Teredo, then plain IPv6, then onion. The four checks
// cover every address.
func (a Addr) RawNetwork() Network {
	switch {
	case a.IsIPv4():
		return NetworkIPv4
	case a.IsRFC4380():
		return NetworkTeredo
	case a.IsIPv6():
		return NetworkIPv6
	default:
		return NetworkOnion
	}
}
