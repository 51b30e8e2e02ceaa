package inet

import "fmt"

// Score estimates how useful it is to advertise an address to a peer that
// connects from a given source address. Higher is better.
type Score int

const (
	ScoreUnreachable Score = 0
	ScoreDefault     Score = 1
	ScoreTeredo      Score = 2
	ScoreIPv6Weak    Score = 3
	ScoreIPv4        Score = 4
	ScoreIPv6Strong  Score = 5
	ScorePrivate     Score = 6
)

// String returns a human-readable representation of the Score.
func (s Score) String() string {
	switch s {
	case ScoreUnreachable:
		return "Unreachable"
	case ScoreDefault:
		return "Default"
	case ScoreTeredo:
		return "Teredo"
	case ScoreIPv6Weak:
		return "IPv6Weak"
	case ScoreIPv4:
		return "IPv4"
	case ScoreIPv6Strong:
		return "IPv6Strong"
	case ScorePrivate:
		return "Private"
	default:
		return fmt.Sprintf("Score(%d)", int(s))
	}
}

// Reachability scores dest as seen from src. An unroutable src is always
// ScoreUnreachable and dest is not inspected.
func Reachability(src, dest Addr) Score {
	if !src.IsRoutable() {
		return ScoreUnreachable
	}

	srcNet := src.Network()

	switch dest.Network() {
	case NetworkIPv4:
		if srcNet == NetworkIPv4 {
			return ScoreIPv4
		}
		return ScoreDefault

	case NetworkIPv6:
		switch srcNet {
		case NetworkTeredo:
			return ScoreTeredo
		case NetworkIPv4:
			return ScoreIPv4
		case NetworkIPv6:
			if src.IsRFC3964() || src.IsRFC6052() || src.IsRFC6145() {
				// tunneled
				return ScoreIPv6Weak
			}
			return ScoreIPv6Strong
		}
		return ScoreDefault

	case NetworkOnion:
		switch srcNet {
		case NetworkIPv4:
			return ScoreIPv4
		case NetworkOnion:
			return ScorePrivate
		}
		return ScoreDefault

	case NetworkTeredo:
		switch srcNet {
		case NetworkTeredo:
			return ScoreTeredo
		case NetworkIPv6:
			return ScoreIPv6Weak
		case NetworkIPv4:
			return ScoreIPv4
		}
		return ScoreDefault
	}

	switch srcNet {
	case NetworkTeredo:
		return ScoreTeredo
	case NetworkIPv6:
		return ScoreIPv6Weak
	case NetworkIPv4:
		return ScoreIPv4
	case NetworkOnion:
		return ScorePrivate
	}
	return ScoreDefault
}
