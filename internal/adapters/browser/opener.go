package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"journeydeck/internal/ports"
)

// Opener implements ports.LinkOpener using the platform URL handler
type Opener struct {
	goos string
	run  func(*exec.Cmd) error
}

var _ ports.LinkOpener = (*Opener)(nil)

// NewOpener creates an opener for the running operating system
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  (*exec.Cmd).Run,
	}
}

// Open opens an http(s) URL in the default browser
func (o *Opener) Open(rawURL string) error {
	cmd, err := o.BuildCommand(rawURL)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

// BuildCommand validates the URL and constructs the command that opens it
func (o *Opener) BuildCommand(rawURL string) (*exec.Cmd, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("refusing to open non-web url: %s", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url has no host: %s", rawURL)
	}

	link := u.String()
	switch o.goos {
	case "darwin":
		return exec.Command("open", link), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", link), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", link), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
