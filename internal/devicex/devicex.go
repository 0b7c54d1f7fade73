// Package devicex derives a stable per-machine identifier used as the input
// for sealing the local session slot. The identifier is not a secret; it only
// binds the stored token to the installation it was created on.
package devicex

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Fingerprint returns a machine identifier for the current device. It tries
// platform-specific sources first and falls back to the hostname, so it never
// fails outright.
func Fingerprint() string {
	switch runtime.GOOS {
	case "linux":
		if id := readFirstLine("/etc/machine-id"); id != "" {
			return id
		}
		if id := readFirstLine("/sys/class/dmi/id/product_uuid"); id != "" {
			return id
		}
	case "darwin":
		if id := macOSPlatformUUID(); id != "" {
			return id
		}
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		return "tapcoin"
	}
	return host
}

func readFirstLine(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}

func macOSPlatformUUID() string {
	out, err := exec.Command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, "\"")
		if len(parts) >= 4 {
			return parts[3]
		}
	}
	return ""
}
