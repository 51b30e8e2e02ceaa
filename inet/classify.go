package inet

// Special-use range predicates. Each one looks only at the raw bytes; the
// IPv4 ranges never match a non-mapped address.

// IsNull reports whether a is 0.0.0.0 or ::.
func (a Addr) IsNull() bool {
	if a.IsIPv4() {
		return a[12] == 0 && a[13] == 0 && a[14] == 0 && a[15] == 0
	}
	return a == ZeroIP
}

// IsBroadcast reports whether a is 255.255.255.255.
func (a Addr) IsBroadcast() bool {
	if !a.IsIPv4() {
		return false
	}
	return a[12] == 255 && a[13] == 255 && a[14] == 255 && a[15] == 255
}

// IsRFC1918 reports whether a is a private IPv4 address
// (10/8, 172.16/12, 192.168/16).
func (a Addr) IsRFC1918() bool {
	if !a.IsIPv4() {
		return false
	}
	return a[12] == 10 ||
		(a[12] == 172 && a[13] >= 16 && a[13] <= 31) ||
		(a[12] == 192 && a[13] == 168)
}

// IsRFC2544 reports whether a is in the IPv4 benchmarking block (198.18/15).
// 169.254/16 is matched as well.
func (a Addr) IsRFC2544() bool {
	if !a.IsIPv4() {
		return false
	}
	return (a[12] == 198 && (a[13] == 18 || a[13] == 19)) ||
		(a[12] == 169 && a[13] == 254)
}

// IsRFC3927 reports whether a is IPv4 link-local (169.254/16).
func (a Addr) IsRFC3927() bool {
	return a.IsIPv4() && a[12] == 169 && a[13] == 254
}

// IsRFC6598 reports whether a is in the IPv4 shared address space (100.64/10).
func (a Addr) IsRFC6598() bool {
	return a.IsIPv4() && a[12] == 100 && a[13] >= 64 && a[13] <= 127
}

// IsRFC5737 reports whether a is in an IPv4 documentation block
// (192.0.2/24, 198.51.100/24, 203.0.113/24).
func (a Addr) IsRFC5737() bool {
	if !a.IsIPv4() {
		return false
	}
	return (a[12] == 192 && a[13] == 0 && a[14] == 2) ||
		(a[12] == 198 && a[13] == 51 && a[14] == 100) ||
		(a[12] == 203 && a[13] == 0 && a[14] == 113)
}

// IsRFC3849 reports whether a is in the IPv6 documentation block (2001:db8::/32).
func (a Addr) IsRFC3849() bool {
	return a[0] == 0x20 && a[1] == 0x01 && a[2] == 0x0d && a[3] == 0xb8
}

// IsRFC3964 reports whether a is a 6to4 address (2002::/16).
func (a Addr) IsRFC3964() bool {
	return a[0] == 0x20 && a[1] == 0x02
}

// IsRFC6052 reports whether a is in the NAT64 well-known prefix (64:ff9b::/96).
func (a Addr) IsRFC6052() bool {
	return a.HasPrefix(rfc6052Prefix)
}

// IsRFC4380 reports whether a is a Teredo address (2001::/32).
func (a Addr) IsRFC4380() bool {
	return a[0] == 0x20 && a[1] == 0x01 && a[2] == 0x00 && a[3] == 0x00
}

// IsRFC4862 reports whether a is IPv6 link-local (fe80::/64).
func (a Addr) IsRFC4862() bool {
	return a.HasPrefix(rfc4862Prefix)
}

// IsRFC4193 reports whether a is an IPv6 unique local address (fc00::/7).
// Onion addresses fall inside this block.
func (a Addr) IsRFC4193() bool {
	return a[0]&0xfe == 0xfc
}

// IsRFC6145 reports whether a is an IPv4-translated address (::ffff:0:0:0/96).
func (a Addr) IsRFC6145() bool {
	return a.HasPrefix(rfc6145Prefix)
}

// IsRFC4843 reports whether a is an ORCHID address (2001:10::/28).
func (a Addr) IsRFC4843() bool {
	return a[0] == 0x20 && a[1] == 0x01 && a[2] == 0x00 && a[3]&0xf0 == 0x10
}

// IsRFC7343 reports whether a is an ORCHIDv2 address (2001:20::/28).
func (a Addr) IsRFC7343() bool {
	return a[0] == 0x20 && a[1] == 0x01 && a[2] == 0x00 && a[3]&0xf0 == 0x20
}

// IsLocal reports whether a is loopback or "this network":
// 127/8 and 0/8 for IPv4, ::1 for IPv6.
func (a Addr) IsLocal() bool {
	if a.IsIPv4() {
		return a[12] == 127 || a[12] == 0
	}
	return a == LocalIP
}

// IsMulticast reports whether a is multicast (224/4 or ff00::/8).
func (a Addr) IsMulticast() bool {
	if a.IsIPv4() {
		return a[12]&0xf0 == 0xe0
	}
	return a[0] == 0xff
}

// IsValid reports whether a can name a peer at all. Shifted addresses
// (::ff:ff00:0:0:0/72), null, broadcast and documentation addresses cannot.
func (a Addr) IsValid() bool {
	switch {
	case a.HasPrefix(shiftedPrefix):
		return false
	case a.IsNull():
		return false
	case a.IsBroadcast():
		return false
	case a.IsRFC3849():
		return false
	}
	return true
}

// IsRoutable reports whether a may be advertised to peers as globally
// reachable. Onion addresses stay routable even though they sit inside
// fc00::/7.
func (a Addr) IsRoutable() bool {
	if !a.IsValid() {
		return false
	}

	switch {
	case a.IsRFC1918(),
		a.IsRFC2544(),
		a.IsRFC3927(),
		a.IsRFC4862(),
		a.IsRFC6598(),
		a.IsRFC5737(),
		a.IsRFC4193() && !a.IsOnion(),
		a.IsRFC4843(),
		a.IsLocal():
		return false
	}

	return true
}
