package platform

import (
	"runtime"
	"testing"
)

func TestIsMobile(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148", true},
		{"Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 Chrome/116.0 Mobile Safari/537.36", true},
		{"Mozilla/5.0 (X11; Linux x86_64; Quest 3) AppleWebKit/537.36 OculusBrowser/28.0 Chrome/116.0 VR Safari/537.36", true},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/116.0 Safari/537.36", false},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5) AppleWebKit/605.1.15 Version/16.6 Safari/605.1.15", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsMobile(tt.ua); got != tt.want {
			t.Errorf("IsMobile(%q) = %v, expected %v", tt.ua, got, tt.want)
		}
	}
}

func TestIsMobileOS(t *testing.T) {
	if !IsMobileOS("android") || !IsMobileOS("ios") {
		t.Error("android and ios should be mobile")
	}
	if IsMobileOS("linux") || IsMobileOS("windows") {
		t.Error("desktop targets should not be mobile")
	}
}

func TestDetectUsesUserAgentOverride(t *testing.T) {
	t.Setenv("VRSCENE_USER_AGENT", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)")
	if !Detect() {
		t.Error("Detect should honor VRSCENE_USER_AGENT")
	}
}

func TestForceOverridesDetection(t *testing.T) {
	t.Setenv("VRSCENE_USER_AGENT", "")
	defer Force(nil)

	mobile := true
	Force(&mobile)
	if !Detect() {
		t.Error("Detect should return the forced value")
	}

	Force(nil)
	if Detect() != IsMobileOS(runtime.GOOS) {
		t.Error("Detect should fall back to the OS after Force(nil)")
	}
}
