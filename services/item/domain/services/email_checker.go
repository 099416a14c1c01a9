// Package services contains stateless domain services for the item bounded context.
package services

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"
)

// emailFormat is slightly stricter than a bare "has an @" check:
// letters, digits and . _ % + - in the local part; letter/digit/hyphen
// labels in the domain; top-level label of at least two letters.
var emailFormat = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// MXResolver resolves mail-exchange records for a domain.
// *net.Resolver satisfies this interface.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// EmailChecker decides whether an address is well-formed and has a mail
// domain with at least one MX record. One live DNS query per call; no
// caching, no retry.
type EmailChecker struct {
	resolver MXResolver
	timeout  time.Duration
}

// NewEmailChecker returns an EmailChecker using the given resolver.
// A nil resolver falls back to the system resolver. timeout bounds each
// MX lookup; zero means no per-call deadline beyond the caller's context.
func NewEmailChecker(resolver MXResolver, timeout time.Duration) *EmailChecker {
	if resolver == nil {
		resolver = &net.Resolver{}
	}
	return &EmailChecker{resolver: resolver, timeout: timeout}
}

// Deliverable reports whether email passes the format gate and its domain
// publishes at least one MX record.
//
// The format gate runs first and short-circuits: blank input, a missing
// domain ("foo@") or a missing top-level label ("foo@bar") are rejected
// before any DNS I/O happens. Lookup failure and absence of a record are
// deliberately indistinguishable: both return false, never an error.
func (c *EmailChecker) Deliverable(ctx context.Context, email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	if !emailFormat.MatchString(email) {
		return false
	}

	domain := email[strings.Index(email, "@")+1:]

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	records, err := c.resolver.LookupMX(ctx, domain)
	return err == nil && len(records) > 0
}
