// Package fontdir resolves the well-known font directories for the host
// platform and installation scope.
package fontdir

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for platform and scope resolution.
var (
	// ErrUnsupportedPlatform indicates the host OS is not one of the
	// platforms fontls knows font directories for.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnknownScope indicates a scope name could not be parsed.
	ErrUnknownScope = errors.New("unknown scope")
)

// Platform identifies the host operating system family.
type Platform int

// Supported platforms.
const (
	Windows Platform = iota
	Linux
	MacOS
)

// String returns the platform's display name.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	case MacOS:
		return "MacOS"
	default:
		return "Unknown"
	}
}

// Detect classifies the host OS into one of the supported platforms.
// It returns ErrUnsupportedPlatform for anything else.
func Detect() (Platform, error) {
	return detect(runtime.GOOS)
}

func detect(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedPlatform, "GOOS %s", goos)
	}
}

// Scope identifies the installation tier fonts are searched in.
type Scope int

// Supported scopes.
const (
	CurrentUser Scope = iota
	AllUsers
)

// String returns the scope's display name. This is the exact string
// reported in Record.Scope.
func (s Scope) String() string {
	switch s {
	case CurrentUser:
		return "CurrentUser"
	case AllUsers:
		return "AllUsers"
	default:
		return "Unknown"
	}
}

// ParseScope parses a scope name. It accepts the short CLI forms
// ("user", "system") as well as the display names, case-insensitively.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(name) {
	case "user", "currentuser", "current-user":
		return CurrentUser, nil
	case "system", "allusers", "all-users":
		return AllUsers, nil
	default:
		return 0, errors.Wrapf(ErrUnknownScope, "%q", name)
	}
}

// ScopeNames returns the accepted short scope names, for error messages
// and flag help.
func ScopeNames() []string {
	return []string{"user", "system"}
}

// dirResolvers maps (Platform, Scope) to a directory resolver. A missing
// entry, or a resolver returning "", means the pair has no usable font
// directory and the scope is skipped.
var dirResolvers = map[Platform]map[Scope]func() string{
	Windows: {
		CurrentUser: windowsUserDir,
		AllUsers:    windowsSystemDir,
	},
	Linux: {
		CurrentUser: linuxUserDir,
		AllUsers:    func() string { return "/usr/share/fonts" },
	},
	MacOS: {
		CurrentUser: macUserDir,
		AllUsers:    func() string { return "/Library/Fonts" },
	},
}

// Dir returns the font directory for the given platform and scope.
// The second return value is false when no directory is mapped or the
// mapped directory cannot be resolved on this host.
func Dir(p Platform, s Scope) (string, bool) {
	byScope, ok := dirResolvers[p]
	if !ok {
		return "", false
	}
	resolve, ok := byScope[s]
	if !ok {
		return "", false
	}
	dir := resolve()
	if dir == "" {
		return "", false
	}
	return dir, true
}

// windowsUserDir returns %LOCALAPPDATA%\Microsoft\Windows\Fonts, the
// per-user font store introduced in Windows 10 1809.
func windowsUserDir() string {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		return ""
	}
	return filepath.Join(local, "Microsoft", "Windows", "Fonts")
}

// windowsSystemDir returns %WINDIR%\Fonts.
func windowsSystemDir() string {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		return ""
	}
	return filepath.Join(windir, "Fonts")
}

// linuxUserDir returns $XDG_DATA_HOME/fonts (~/.local/share/fonts by default).
func linuxUserDir() string {
	return filepath.Join(xdg.DataHome, "fonts")
}

// macUserDir returns ~/Library/Fonts.
func macUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Fonts")
}
