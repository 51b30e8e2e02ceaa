package inet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/inetaddr/identity"
	"github.com/opd-ai/inetaddr/limits"
)

// HostRecord is a decoded "[key@]host[:port]" string.
type HostRecord struct {
	// Host is the canonical host text, without brackets.
	Host string
	// Type is the family of Host, AddressTypeName for symbolic names.
	Type AddressType
	// Port is the explicit port, or the fallback port when none was given.
	Port uint16
	// Hostname is "host:port", with IPv6 hosts bracketed.
	Hostname string
	// Raw is the decoded address. It is ZeroIP for symbolic names.
	Raw Addr
	// Key is the identity key, or nil when neither the string nor the
	// caller supplied one.
	Key *identity.Key
}

// String renders the record back into host string form.
func (r *HostRecord) String() string {
	if r.Key != nil && !r.Key.IsZero() {
		return identity.Encode(*r.Key) + "@" + r.Hostname
	}
	return r.Hostname
}

// ToHost renders host, port and an optional identity key as
// "[key@]host:port". Address literals are canonicalized and IPv6 hosts are
// bracketed. A nil or all-zero key is omitted.
func ToHost(host string, port uint16, key *identity.Key) (string, error) {
	if err := validateHostText(host); err != nil {
		return "", newAddrError("tohost", host, err)
	}

	typ := StringType(host)

	if strings.IndexByte(host, ':') >= 0 && typ != AddressTypeIPv6 {
		return "", newAddrError("tohost", host, ErrUnexpectedColon)
	}

	if typ != AddressTypeName {
		raw, err := Decode(host)
		if err != nil {
			return "", err
		}
		typ = raw.Type()
		host = raw.String()
	}

	var prefix string
	if key != nil && !key.IsZero() {
		prefix = identity.Encode(*key) + "@"
	}

	return prefix + joinHostPort(host, typ, port), nil
}

// FromHost parses "[key@]host[:port]". The host may be a bracketed IPv6
// literal with or without a port, a bare IPv6 literal (no port), an IPv4
// literal, a legacy onion name or a symbolic name. fallbackPort and
// fallbackKey are used when the string has no port or key.
func FromHost(addr string, fallbackPort uint16, fallbackKey *identity.Key) (*HostRecord, error) {
	log := newLogger("FromHost").WithField("addr", addr)

	if err := limits.ValidateHostString(addr); err != nil {
		return nil, newAddrError("fromhost", addr, fmt.Errorf("%w: %w", ErrBadAddress, err))
	}

	key := fallbackKey
	input := addr

	if at := strings.IndexByte(addr, '@'); at >= 0 {
		front := addr[:at]
		if len(front) > limits.MaxKeyText {
			return nil, newAddrError("fromhost", input, ErrBadKey)
		}
		k, err := identity.Decode(front)
		if err != nil {
			log.WithError(err).Debug("Rejected host key")
			return nil, newAddrError("fromhost", input, fmt.Errorf("%w: %w", ErrBadKey, err))
		}
		key = &k
		if k.IsZero() {
			key = nil
		}
		addr = addr[at+1:]
	}

	host, port, hasPort, err := splitHostPort(addr)
	if err != nil {
		log.WithError(err).Debug("Rejected host structure")
		return nil, newAddrError("fromhost", input, err)
	}

	portNum := fallbackPort
	if hasPort {
		portNum, err = parsePort(port)
		if err != nil {
			return nil, newAddrError("fromhost", input, err)
		}
	}

	typ := StringType(host)
	raw := ZeroIP

	if typ != AddressTypeName {
		raw, err = Decode(host)
		if err != nil {
			log.WithError(err).Debug("Rejected host literal")
			return nil, err
		}
		typ = raw.Type()
		host = raw.String()
	}

	return &HostRecord{
		Host:     host,
		Type:     typ,
		Port:     portNum,
		Hostname: joinHostPort(host, typ, portNum),
		Raw:      raw,
		Key:      key,
	}, nil
}

// validateHostText checks length and rejects brackets, '@', ',' and any
// byte outside printable ASCII.
func validateHostText(host string) error {
	if err := limits.ValidateHost(host); err != nil {
		if errors.Is(err, limits.ErrEmpty) {
			return ErrHostEmpty
		}
		return fmt.Errorf("%w: %w", ErrHostTooLarge, err)
	}

	for i := 0; i < len(host); i++ {
		switch ch := host[i]; {
		case ch < 0x20 || ch > 0x7e:
			return fmt.Errorf("%w: byte 0x%02x at %d", ErrBadHost, ch, i)
		case ch == '[' || ch == ']' || ch == '@' || ch == ',':
			return fmt.Errorf("%w: %q at %d", ErrBadHost, ch, i)
		}
	}

	return nil
}

// splitHostPort separates host and port for the three accepted shapes:
// "[v6]", "[v6]:port", and "host" or "host:port". More than one colon
// without brackets is only accepted as a bare IPv6 literal.
func splitHostPort(addr string) (host, port string, hasPort bool, err error) {
	if strings.HasPrefix(addr, "[") {
		if strings.HasSuffix(addr, "]") {
			host = addr[1 : len(addr)-1]
		} else {
			parts := strings.Split(addr[1:], "]:")
			if len(parts) != 2 {
				return "", "", false, ErrBracketMismatch
			}
			host, port, hasPort = parts[0], parts[1], true
		}
		if strings.ContainsAny(host, "[]") {
			return "", "", false, ErrBracketMismatch
		}
	} else {
		if strings.ContainsAny(addr, "[]") {
			return "", "", false, ErrBracketMismatch
		}
		parts := strings.Split(addr, ":")
		switch len(parts) {
		case 1:
			host = parts[0]
		case 2:
			host, port, hasPort = parts[0], parts[1], true
		default:
			if !IsIPv6String(addr) {
				return "", "", false, ErrBadIPv6Host
			}
			host = addr
		}
	}

	if host == "" {
		return "", "", false, ErrBadHost
	}

	return host, port, hasPort, nil
}

func parsePort(port string) (uint16, error) {
	if err := limits.ValidatePortText(port); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadPort, err)
	}
	if strings.Trim(port, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", ErrBadPort, port)
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadPort, err)
	}
	return uint16(n), nil
}

func joinHostPort(host string, typ AddressType, port uint16) string {
	p := strconv.FormatUint(uint64(port), 10)
	if typ == AddressTypeIPv6 {
		return "[" + host + "]:" + p
	}
	return host + ":" + p
}
