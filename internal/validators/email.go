// Package validators holds request checks that need more than a binding tag.
package validators

import (
	"net"
	"net/mail"
	"strings"
)

// EmailDeliverable reports whether the address parses and its domain resolves
// to something that can receive mail. Registration runs it so booking
// confirmations have somewhere to go; it never proves the mailbox exists.
func EmailDeliverable(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return false
	}
	domain := addr.Address[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// No MX record, fall back to a plain host lookup.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
