package utils

import (
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

const (
	dnsTimeout = 10 * time.Second
	resolvConf = "/etc/resolv.conf"

	// default nameserver suffix for domains delegated to the registrar.
	registrarNSSuffix = "registrar-servers.com"
)

// LookupNS resolves the delegated nameservers of a domain using the
// system resolver.
func LookupNS(domain string) ([]string, error) {
	config, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read resolver config")
	}

	c := new(dns.Client)
	m := new(dns.Msg)

	c.Timeout = dnsTimeout
	m.SetQuestion(dns.Fqdn(domain), dns.TypeNS)
	m.RecursionDesired = true

	r, _, err := c.Exchange(m, net.JoinHostPort(config.Servers[0], config.Port))
	if r == nil {
		return nil, errors.Wrapf(err, "failed to exchange msg for %s", domain)
	}

	if r.Rcode != dns.RcodeSuccess {
		return nil, errors.Errorf("invalid answer for %s", domain)
	}

	servers := make([]string, 0, len(r.Answer))
	for _, rr := range r.Answer {
		if ns, ok := rr.(*dns.NS); ok {
			servers = append(servers, TrimTrailingDot(strings.ToLower(ns.Ns)))
		}
	}
	return servers, nil
}

// IsRegistrarNS reports whether any delegated nameserver belongs to the
// registrar's default dns service.
func IsRegistrarNS(servers []string) bool {
	for _, s := range servers {
		if strings.HasSuffix(s, registrarNSSuffix) {
			return true
		}
	}
	return false
}
