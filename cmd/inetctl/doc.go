// Command inetctl normalizes and classifies peer address strings.
//
// Each argument is a "[key@]host[:port]" string. For address literals the
// tool prints the canonical host string, the address family, the
// reachability network, validity, routability and the special-use ranges
// the address falls in. With -source it also scores how reachable the
// address is from that local address. Host names are checked for DNS
// syntax.
//
//	inetctl 127.0.0.1:8333 '[2001:db8::1]:443' aaaaaaaaaaaaaaaa.onion
//	inetctl -source 8.8.8.8 -port 8333 2a01::1
//
// -interfaces lists the addresses of local network interfaces in a scope
// (all, local, nonlocal, private or public), optionally narrowed by -family.
//
// Settings may also come from a YAML file given with -config:
//
//	defaultPort: 8333
//	source: 8.8.8.8
//	interfaceScope: public
//	interfaceFamily: all
//	strictKeys: true
//	logLevel: info
//
// Flags given on the command line override the file. The exit status is 1
// if any argument could not be processed; every failure is reported.
package main
