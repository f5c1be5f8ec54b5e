// ABOUTME: Opens a package's registry page in the system web browser
// ABOUTME: Picks the platform launcher and refuses anything but http(s) URLs

package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener launches URLs.
type Opener struct {
	// GOOS selects the launcher; empty means runtime.GOOS.
	GOOS string
	// Start runs the launcher without waiting for it; nil means exec.Cmd.Start.
	Start func(name string, args ...string) error
}

// Default is the Opener used by OpenURL.
var Default = &Opener{}

// OpenURL opens u with the Default opener.
func OpenURL(u string) error {
	return Default.Open(u)
}

// Command returns the launcher and its arguments for u.
func (o *Opener) Command(u string) (string, []string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", nil, fmt.Errorf("parsing url %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", nil, fmt.Errorf("refusing to open %q: scheme must be http or https", u)
	}

	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return "open", []string{u}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{u}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", u}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform %q for opening browser", goos)
	}
}

// Open launches the browser on u.
func (o *Opener) Open(u string) error {
	name, args, err := o.Command(u)
	if err != nil {
		return err
	}
	start := o.Start
	if start == nil {
		start = func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		}
	}
	if err := start(name, args...); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
