// Package platform classifies the runtime as mobile or not. The answer
// decides whether drag input still contributes while a headset is active.
package platform

import (
	"os"
	"regexp"
	"runtime"
	"sync/atomic"
)

var forced atomic.Pointer[bool]

var mobileUserAgent = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini|mobile|silk|kindle|oculusbrowser|samsungbrowser`)

// IsMobile reports whether userAgent belongs to a phone, tablet or
// standalone headset browser.
func IsMobile(userAgent string) bool {
	return mobileUserAgent.MatchString(userAgent)
}

// Force pins the answer of Detect. Pass nil to go back to detection.
func Force(mobile *bool) {
	forced.Store(mobile)
}

// Detect classifies the current process. A value set with Force wins.
// VRSCENE_USER_AGENT, when set, is classified with IsMobile; otherwise the
// target OS decides.
func Detect() bool {
	if m := forced.Load(); m != nil {
		return *m
	}
	if ua := os.Getenv("VRSCENE_USER_AGENT"); ua != "" {
		return IsMobile(ua)
	}
	return IsMobileOS(runtime.GOOS)
}

func IsMobileOS(goos string) bool {
	return goos == "android" || goos == "ios"
}
