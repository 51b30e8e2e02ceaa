package inet

import (
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wlynxg/anet"
)

// Scope selects interface addresses by classification.
type Scope uint8

const (
	// ScopeAll keeps every valid address
	ScopeAll Scope = iota
	// ScopeLocal keeps loopback addresses
	ScopeLocal
	// ScopeNonlocal drops loopback addresses
	ScopeNonlocal
	// ScopePrivate keeps non-loopback addresses that are not routable
	ScopePrivate
	// ScopePublic keeps non-loopback routable addresses
	ScopePublic
)

var scopeNames = map[Scope]string{
	ScopeAll:      "all",
	ScopeLocal:    "local",
	ScopeNonlocal: "nonlocal",
	ScopePrivate:  "private",
	ScopePublic:   "public",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scope(%d)", uint8(s))
}

// ParseScope maps a scope name, in any case, to its Scope.
func ParseScope(name string) (Scope, error) {
	name = strings.ToLower(name)
	for s, n := range scopeNames {
		if n == name {
			return s, nil
		}
	}
	return ScopeAll, fmt.Errorf("unknown interface scope %q", name)
}

// Family selects interface addresses by IP version.
type Family uint8

const (
	FamilyAll Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyAll:
		return "all"
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// ParseFamily maps "all", "ipv4" or "ipv6", in any case, to its Family. An
// empty name is FamilyAll.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(name) {
	case "", "all":
		return FamilyAll, nil
	case "ipv4":
		return FamilyIPv4, nil
	case "ipv6":
		return FamilyIPv6, nil
	}
	return FamilyAll, fmt.Errorf("unknown address family %q", name)
}

// InterfaceAddr is one address reported by the operating system.
type InterfaceAddr struct {
	Name    string // interface name
	Address string // address text, without prefix length
	Family  Family // FamilyIPv4 or FamilyIPv6 as reported by the system
}

// FilterInterfaces returns the canonical text of every address in list that
// parses, is valid, and matches scope and family. Order is preserved.
func FilterInterfaces(list []InterfaceAddr, scope Scope, family Family) []string {
	result := make([]string, 0, len(list))

	for _, item := range list {
		if family != FamilyAll && item.Family != family {
			continue
		}

		raw, err := Decode(item.Address)
		if err != nil {
			continue
		}

		if !raw.IsValid() {
			continue
		}

		switch family {
		case FamilyIPv4:
			if !raw.IsIPv4() {
				continue
			}
		case FamilyIPv6:
			if raw.IsIPv4() {
				continue
			}
		}

		if !scope.matches(raw) {
			continue
		}

		result = append(result, raw.String())
	}

	return result
}

func (s Scope) matches(raw Addr) bool {
	switch s {
	case ScopeLocal:
		return raw.IsLocal()
	case ScopeNonlocal:
		return !raw.IsLocal()
	case ScopePrivate:
		return !raw.IsLocal() && !raw.IsRoutable()
	case ScopePublic:
		return !raw.IsLocal() && raw.IsRoutable()
	}
	return true
}

// SystemInterfaces enumerates the addresses of every network interface.
// Interfaces whose addresses cannot be read are skipped.
func SystemInterfaces() ([]InterfaceAddr, error) {
	ifaces, err := anet.Interfaces()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "SystemInterfaces",
			"package":  "inet",
			"error":    err.Error(),
		}).Error("Failed to enumerate network interfaces")
		return nil, fmt.Errorf("enumerate interfaces: %w", err)
	}

	var result []InterfaceAddr

	for i := range ifaces {
		addrs, err := anet.InterfaceAddrsByInterface(&ifaces[i])
		if err != nil {
			newLogger("SystemInterfaces").
				WithField("interface", ifaces[i].Name).
				WithError(err).
				Warn("Skipping interface with unreadable addresses")
			continue
		}

		for _, addr := range addrs {
			ip := addrIP(addr)
			if ip == nil {
				continue
			}
			family := FamilyIPv6
			if ip.To4() != nil {
				family = FamilyIPv4
			}
			result = append(result, InterfaceAddr{
				Name:    ifaces[i].Name,
				Address: ip.String(),
				Family:  family,
			})
		}
	}

	newLogger("SystemInterfaces").
		WithFields(logrus.Fields{
			"interfaces": len(ifaces),
			"addresses":  len(result),
		}).
		Debug("Enumerated interface addresses")

	return result, nil
}

func addrIP(addr net.Addr) net.IP {
	switch v := addr.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	}
	return nil
}

// Interfaces returns the system's valid addresses of the given family.
func Interfaces(family Family) ([]string, error) {
	return scopedInterfaces(ScopeAll, family)
}

// LocalInterfaces returns the system's loopback addresses.
func LocalInterfaces(family Family) ([]string, error) {
	return scopedInterfaces(ScopeLocal, family)
}

// NonlocalInterfaces returns the system's non-loopback addresses.
func NonlocalInterfaces(family Family) ([]string, error) {
	return scopedInterfaces(ScopeNonlocal, family)
}

// PrivateInterfaces returns the system's non-routable, non-loopback
// addresses.
func PrivateInterfaces(family Family) ([]string, error) {
	return scopedInterfaces(ScopePrivate, family)
}

// PublicInterfaces returns the system's routable addresses.
func PublicInterfaces(family Family) ([]string, error) {
	return scopedInterfaces(ScopePublic, family)
}

func scopedInterfaces(scope Scope, family Family) ([]string, error) {
	list, err := SystemInterfaces()
	if err != nil {
		return nil, err
	}
	return FilterInterfaces(list, scope, family), nil
}
