package inet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/inetaddr/onion"
)

// Encode renders a raw address as canonical text. A 4-byte buffer is a bare
// IPv4 address; a 16-byte buffer is rendered by family. Any other length is
// ErrInvalidIP.
func Encode(raw []byte) (string, error) {
	switch len(raw) {
	case 4:
		return encodeDottedQuad(raw), nil
	case Size:
		return Addr(raw).encode(), nil
	}
	return "", newAddrError("encode", "", fmt.Errorf("%w: %d bytes", ErrInvalidIP, len(raw)))
}

func (a Addr) encode() string {
	switch {
	case a.IsIPv4():
		return encodeDottedQuad(a[12:])
	case a.IsOnion():
		return onion.EncodeLegacy(a[len(torOnionPrefix):]) + onion.Suffix
	default:
		return a.encodeIPv6()
	}
}

func encodeDottedQuad(b []byte) string {
	var sb strings.Builder
	sb.Grow(15)
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(b[i])))
	}
	return sb.String()
}

// encodeIPv6 writes eight minimal lowercase hex groups and collapses the
// longest run of two or more zero groups to "::". Ties go to the leftmost run.
func (a Addr) encodeIPv6() string {
	var groups [8]uint16
	for i := range groups {
		groups[i] = uint16(a[i*2])<<8 | uint16(a[i*2+1])
	}

	bestStart, bestLen := -1, 0
	for i := 0; i < 8; {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var sb strings.Builder
	sb.Grow(39)

	for i := 0; i < 8; i++ {
		if i == bestStart {
			sb.WriteString("::")
			i += bestLen - 1
			continue
		}
		if i > 0 && i != bestStart+bestLen {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}

	return sb.String()
}
