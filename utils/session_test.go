package utils

import "testing"

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	iphoneSafariUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent(chromeWindowsUA)
	if browser != "Chrome" {
		t.Errorf("browser = %q, want Chrome", browser)
	}
	if os != "Windows" {
		t.Errorf("os = %q, want Windows", os)
	}
	if device != "Desktop" {
		t.Errorf("device = %q, want Desktop", device)
	}

	_, _, device = ParseUserAgent(iphoneSafariUA)
	if device != "iPhone" {
		t.Errorf("device = %q, want iPhone", device)
	}
}

func TestParseUserAgentEmpty(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
		t.Errorf("got %q/%q/%q for empty user agent", browser, os, device)
	}
}

func TestGenerateSessionName(t *testing.T) {
	name := GenerateSessionName(chromeWindowsUA)
	if name != "Chrome on Windows (Desktop)" {
		t.Errorf("name = %q", name)
	}
}
