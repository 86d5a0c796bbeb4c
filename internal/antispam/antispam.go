// Package antispam contains the heuristics applied to contact form traffic
// before any parsing or validation happens. All checks are pure predicates:
// they return a boolean and never fail.
package antispam

import (
	"regexp"
	"strings"
)

// botUserAgentPatterns matches known bot/tooling signatures. Patterns are
// tried in order; the first match wins.
var botUserAgentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bot`),
	regexp.MustCompile(`(?i)crawl`),
	regexp.MustCompile(`(?i)spider`),
	regexp.MustCompile(`(?i)scrap`),
	regexp.MustCompile(`(?i)^curl/`),
	regexp.MustCompile(`(?i)^wget/`),
	regexp.MustCompile(`(?i)python-requests`),
	regexp.MustCompile(`(?i)python-urllib`),
	regexp.MustCompile(`(?i)go-http-client`),
	regexp.MustCompile(`(?i)java/`),
	regexp.MustCompile(`(?i)okhttp`),
	regexp.MustCompile(`(?i)libwww`),
	regexp.MustCompile(`(?i)headless`),
	regexp.MustCompile(`(?i)phantomjs`),
}

// spamKeywordPatterns flags message bodies that look like bulk spam.
// Covers the usual gambling/finance-scam/link-bait phrases in English and Turkish.
var spamKeywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bbitcoin\b`),
	regexp.MustCompile(`(?i)\bcrypto(currency)?\b`),
	regexp.MustCompile(`(?i)\bcasino\b`),
	regexp.MustCompile(`(?i)\bbahis\b`),
	regexp.MustCompile(`(?i)\bviagra\b`),
	regexp.MustCompile(`(?i)\bforex\b`),
	regexp.MustCompile(`(?i)click\s+here`),
	regexp.MustCompile(`(?i)buraya\s+tıkla`),
	regexp.MustCompile(`(?i)\blottery\b`),
	regexp.MustCompile(`(?i)make\s+money\s+(fast|online)`),
	regexp.MustCompile(`(?i)hızlı\s+para\s+kazan`),
	regexp.MustCompile(`(?i)\bseo\s+(service|backlink)`),
	regexp.MustCompile(`(?i)100%\s+(free|guaranteed)`),
	regexp.MustCompile(`(?i)kredi\s+(çek|fırsat)`),
}

// Detector evaluates request-level abuse signals. The IP denylist is empty by
// default; it exists as a hook point for operators, not an active filter.
type Detector struct {
	ipDenylist map[string]struct{}
}

// NewDetector creates a Detector with the given denylisted IPs (exact match).
func NewDetector(denylist []string) *Detector {
	m := make(map[string]struct{}, len(denylist))
	for _, ip := range denylist {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			m[ip] = struct{}{}
		}
	}
	return &Detector{ipDenylist: m}
}

// SuspiciousIP reports whether ip is on the denylist.
func (d *Detector) SuspiciousIP(ip string) bool {
	_, ok := d.ipDenylist[ip]
	return ok
}

// SuspiciousUserAgent reports whether ua matches a known bot/tooling signature.
// An empty User-Agent is treated as suspicious: every real browser sends one.
func SuspiciousUserAgent(ua string) bool {
	if strings.TrimSpace(ua) == "" {
		return true
	}
	for _, p := range botUserAgentPatterns {
		if p.MatchString(ua) {
			return true
		}
	}
	return false
}

// ContainsSpamKeywords reports whether text matches any spam keyword pattern.
func ContainsSpamKeywords(text string) bool {
	for _, p := range spamKeywordPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
