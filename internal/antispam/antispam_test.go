package antispam

import "testing"

func TestSuspiciousUserAgent(t *testing.T) {
	suspicious := []string{
		"curl/7.88.1",
		"Wget/1.21",
		"python-requests/2.31.0",
		"Go-http-client/1.1",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"Scrapy/2.8 (+https://scrapy.org)",
		"MyScraper/1.0",
		"Java/17.0.2",
		"",
		"   ",
	}
	for _, ua := range suspicious {
		if !SuspiciousUserAgent(ua) {
			t.Errorf("expected %q to be flagged as suspicious", ua)
		}
	}

	legit := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
	}
	for _, ua := range legit {
		if SuspiciousUserAgent(ua) {
			t.Errorf("expected %q not to be flagged", ua)
		}
	}
}

func TestContainsSpamKeywords(t *testing.T) {
	spam := []string{
		"Invest in Bitcoin today",
		"en iyi casino siteleri",
		"click here for free money",
		"hemen buraya tıkla",
		"güvenilir bahis sitesi",
	}
	for _, text := range spam {
		if !ContainsSpamKeywords(text) {
			t.Errorf("expected %q to be flagged as spam", text)
		}
	}

	clean := []string{
		"Merhaba, satılık daire hakkında bilgi almak istiyorum.",
		"3+1 kiralık daireniz hala müsait mi?",
	}
	for _, text := range clean {
		if ContainsSpamKeywords(text) {
			t.Errorf("expected %q not to be flagged", text)
		}
	}
}

func TestDetector_SuspiciousIP(t *testing.T) {
	// Denylist is empty by default — nothing is suspicious.
	d := NewDetector(nil)
	if d.SuspiciousIP("203.0.113.7") {
		t.Error("expected no IP to be flagged with an empty denylist")
	}

	d = NewDetector([]string{"203.0.113.7", " 198.51.100.2 "})
	if !d.SuspiciousIP("203.0.113.7") {
		t.Error("expected denylisted IP to be flagged")
	}
	if !d.SuspiciousIP("198.51.100.2") {
		t.Error("expected denylist entries to be trimmed")
	}
	if d.SuspiciousIP("192.0.2.1") {
		t.Error("expected non-listed IP not to be flagged")
	}
}
