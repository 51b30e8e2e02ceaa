package inet

// Address vectors for the special-use ranges. Each range lists members and
// the nearest addresses just outside it.
var (
	vecShifted = []string{
		"::ff:ff00:0:0:0",
		"::ff:ff00:0:0:1",
		"::ff:ffff:ffff:ffff:ffff",
	}

	vecNull = []string{"::", "0.0.0.0"}

	vecBroadcast = []string{"255.255.255.255"}

	vecLocalIPv4 = []string{
		"127.0.0.0",
		"127.0.0.1",
		"127.255.255.255",
		"0.0.0.0",
		"0.0.0.1",
		"0.1.0.1",
		"0.255.255.255",
	}

	vecLocalIPv6 = []string{"::1"}

	vecMulticast = []string{
		"224.0.0.0",
		"224.0.0.1",
		"230.100.100.100",
		"239.255.255.255",
		"ff00::",
		"ff00::1",
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecMulticastBorders = []string{
		"223.255.255.255",
		"240.0.0.0",
		"feff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC1918 = []string{
		"192.168.0.0",
		"192.168.1.1",
		"192.168.255.255",
		"10.0.0.0",
		"10.0.0.1",
		"10.255.255.255",
		"172.16.0.0",
		"172.16.255.255",
		"172.31.255.255",
	}

	vecRFC1918Borders = []string{
		"9.255.255.255",
		"11.0.0.0",
		"172.15.255.255",
		"172.32.0.0",
		"192.167.255.255",
		"192.169.0.0",
	}

	vecRFC2544 = []string{
		"198.18.0.0",
		"198.18.255.255",
		"198.19.0.0",
		"198.19.255.255",
	}

	vecRFC2544Borders = []string{
		"198.17.255.255",
		"198.20.0.0",
	}

	vecRFC3927 = []string{
		"169.254.0.0",
		"169.254.1.1",
		"169.254.255.255",
	}

	vecRFC3927Borders = []string{
		"169.253.255.255",
		"169.255.0.0",
	}

	vecRFC6598 = []string{
		"100.64.0.0",
		"100.64.255.255",
		"100.100.100.100",
		"100.100.200.200",
		"100.127.255.255",
	}

	vecRFC6598Borders = []string{
		"100.63.255.255",
		"100.128.0.0",
	}

	vecRFC5737 = []string{
		"192.0.2.0",
		"192.0.2.1",
		"192.0.2.255",
		"198.51.100.0",
		"198.51.100.1",
		"198.51.100.255",
		"203.0.113.0",
		"203.0.113.1",
		"203.0.113.255",
	}

	vecRFC5737Borders = []string{
		"192.0.1.255",
		"192.0.3.0",
		"198.51.99.255",
		"198.51.101.0",
		"203.0.112.255",
		"203.0.114.0",
	}

	vecRFC3849 = []string{
		"2001:0db8::",
		"2001:db8::",
		"2001:db8::1:1",
		"2001:db8:85a3::8a2e:370:7334",
		"2001:0db8:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC3849Borders = []string{
		"2001:db9::",
		"2001:db7:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC3964 = []string{
		"2002::",
		"2002::1",
		"2002:20::",
		"2002:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC3964Borders = []string{
		"2001:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"2003::",
	}

	vecRFC6052 = []string{
		"64:ff9b::",
		"0064:ff9b::ffff:ffff",
	}

	vecRFC6052Borders = []string{
		"64:ff9b::1:0:0",
		"64:ff9a:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC4380 = []string{
		"2001::",
		"2001::1",
		"2001:0:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC4380Borders = []string{
		"2000:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"2001:1::",
		"2002::",
		"2001:1:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC4862 = []string{
		"fe80::",
		"fe80::1",
		"fe80::ffff:ffff:ffff:ffff",
	}

	vecRFC4862Borders = []string{
		"fe79:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"fe80:0:0:1::",
	}

	// Onion addresses are tested separately even though they sit in fc00::/7.
	vecRFC4193 = []string{
		"fc00::",
		"fc00::1",
		"fcff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"fd00::",
		"fdff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC4193Borders = []string{
		"fbff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
		"fe00::",
	}

	vecRFC6145 = []string{
		"0::ffff:0:0:0",
		"0::ffff:0:0:1",
		"0::ffff:0:ffff:ffff",
	}

	vecRFC6145Borders = []string{
		"0::fffe:ffff:ffff:ffff",
		"0::ffff:1:0:0",
	}

	vecRFC4843 = []string{
		"2001:10::",
		"2001:10::1",
		"2001:1f:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC4843Borders = []string{
		"2001:f:ffff:ffff:ffff:ffff:ffff:ffff",
		"2001:20::",
	}

	vecRFC7343 = []string{
		"2001:20::",
		"2001:20::1",
		"2001:2f:ffff:ffff:ffff:ffff:ffff:ffff",
	}

	vecRFC7343Borders = []string{
		"2001:1f:ffff:ffff:ffff:ffff:ffff:ffff",
		"2001:30::",
		"2002:20::",
	}

	vecOnion = []string{
		"fd87:d87e:eb43::",
		"fd87:d87e:eb43::1",
		"fd87:d87e:eb43:ffff:ffff:ffff:ffff:ffff",
	}

	vecOnionBorders = []string{
		"fd87:d87e:eb42:ffff:ffff:ffff:ffff:ffff",
		"fd87:d87e:eb44::",
	}
)

func join(sets ...[]string) []string {
	var out []string
	for _, set := range sets {
		out = append(out, set...)
	}
	return out
}

// allVectors returns every vector above, without duplicates, excluding the
// onion range.
func allVectors() []string {
	all := join(
		vecShifted, vecNull, vecBroadcast, vecLocalIPv4, vecLocalIPv6,
		vecMulticast, vecMulticastBorders,
		vecRFC1918, vecRFC1918Borders,
		vecRFC2544, vecRFC2544Borders,
		vecRFC3927, vecRFC3927Borders,
		vecRFC6598, vecRFC6598Borders,
		vecRFC5737, vecRFC5737Borders,
		vecRFC3849, vecRFC3849Borders,
		vecRFC3964, vecRFC3964Borders,
		vecRFC6052, vecRFC6052Borders,
		vecRFC4380, vecRFC4380Borders,
		vecRFC4862, vecRFC4862Borders,
		vecRFC4193, vecRFC4193Borders,
		vecRFC6145, vecRFC6145Borders,
		vecRFC4843, vecRFC4843Borders,
		vecRFC7343, vecRFC7343Borders,
		[]string{"::ffff:199.200.201.202"},
	)
	return sub(all, nil)
}

// sub returns the members of set that are not in exclude, deduplicated by
// address value.
func sub(set, exclude []string) []string {
	seen := make(map[Addr]bool)
	for _, s := range exclude {
		a, _ := Decode(s)
		seen[a] = true
	}

	var out []string
	for _, s := range set {
		a, err := Decode(s)
		if err != nil || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, s)
	}
	return out
}
