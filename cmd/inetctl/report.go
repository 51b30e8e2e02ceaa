package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/miekg/dns"

	"github.com/opd-ai/inetaddr/config"
	"github.com/opd-ai/inetaddr/identity"
	"github.com/opd-ai/inetaddr/inet"
)

// rangeChecks names the special-use ranges reported for an address.
var rangeChecks = []struct {
	name string
	fn   func(inet.Addr) bool
}{
	{"null", inet.Addr.IsNull},
	{"broadcast", inet.Addr.IsBroadcast},
	{"local", inet.Addr.IsLocal},
	{"multicast", inet.Addr.IsMulticast},
	{"rfc1918", inet.Addr.IsRFC1918},
	{"rfc2544", inet.Addr.IsRFC2544},
	{"rfc3927", inet.Addr.IsRFC3927},
	{"rfc6598", inet.Addr.IsRFC6598},
	{"rfc5737", inet.Addr.IsRFC5737},
	{"rfc3849", inet.Addr.IsRFC3849},
	{"rfc3964", inet.Addr.IsRFC3964},
	{"rfc6052", inet.Addr.IsRFC6052},
	{"rfc4380", inet.Addr.IsRFC4380},
	{"rfc4862", inet.Addr.IsRFC4862},
	{"rfc4193", inet.Addr.IsRFC4193},
	{"rfc6145", inet.Addr.IsRFC6145},
	{"rfc4843", inet.Addr.IsRFC4843},
	{"rfc7343", inet.Addr.IsRFC7343},
}

// Report describes one analyzed host string.
type Report struct {
	Input    string
	Record   *inet.HostRecord
	Network  inet.Network
	Valid    bool
	Routable bool
	Ranges   []string
	Score    *inet.Score
	Labels   int // DNS labels, names only
}

// analyze decodes a host string and classifies its address. Names are
// checked for DNS syntax instead of being classified.
func analyze(input string, cfg *config.Config) (*Report, error) {
	rec, err := inet.FromHost(input, cfg.DefaultPort, cfg.DefaultKey)
	if err != nil {
		return nil, err
	}

	if cfg.StrictKeys && rec.Key != nil && !rec.Key.IsZero() {
		if err := identity.Validate(*rec.Key); err != nil {
			return nil, err
		}
	}

	report := &Report{Input: input, Record: rec}

	if rec.Type == inet.AddressTypeName {
		labels, ok := dns.IsDomainName(rec.Host)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a domain name", inet.ErrBadHost, rec.Host)
		}
		report.Labels = labels
		return report, nil
	}

	raw := rec.Raw
	report.Network = raw.Network()
	report.Valid = raw.IsValid()
	report.Routable = raw.IsRoutable()

	for _, check := range rangeChecks {
		if check.fn(raw) {
			report.Ranges = append(report.Ranges, check.name)
		}
	}

	if cfg.Source != nil {
		score := inet.Reachability(*cfg.Source, raw)
		report.Score = &score
	}

	return report, nil
}

func (r *Report) write(w io.Writer) {
	rec := r.Record

	fmt.Fprintf(w, "%s\n", rec.String())
	fmt.Fprintf(w, "  type:     %s\n", rec.Type)

	if rec.Key != nil && !rec.Key.IsZero() {
		fmt.Fprintf(w, "  key:      %s\n", rec.Key)
	}

	if rec.Type == inet.AddressTypeName {
		fmt.Fprintf(w, "  labels:   %d\n", r.Labels)
		return
	}

	fmt.Fprintf(w, "  network:  %s\n", r.Network)
	fmt.Fprintf(w, "  valid:    %t\n", r.Valid)
	fmt.Fprintf(w, "  routable: %t\n", r.Routable)

	if len(r.Ranges) > 0 {
		fmt.Fprintf(w, "  ranges:   %s\n", strings.Join(r.Ranges, ", "))
	}

	if r.Score != nil {
		fmt.Fprintf(w, "  score:    %d (%s)\n", int(*r.Score), *r.Score)
	}
}
