// ABOUTME: Install modes and their package-manager flags
// ABOUTME: Each mode maps to exactly one flag string or to none

package pkgmanager

import "fmt"

// InstallMode selects which dependency list a new package is recorded under.
type InstallMode int

const (
	InstallDefault InstallMode = iota // plain install, no flags
	InstallSave                       // record under dependencies
	InstallSaveDev                    // record under devDependencies
)

// InstallModes lists every mode. Tests iterate it to keep Flags exhaustive.
var InstallModes = []InstallMode{InstallDefault, InstallSave, InstallSaveDev}

// String returns the human-readable name of the mode.
func (m InstallMode) String() string {
	switch m {
	case InstallDefault:
		return "install"
	case InstallSave:
		return "save"
	case InstallSaveDev:
		return "save-dev"
	default:
		return fmt.Sprintf("InstallMode(%d)", int(m))
	}
}

// Flags returns the command-line flag for m. The bool is false when the
// mode takes no flag.
func (m InstallMode) Flags() (string, bool) {
	switch m {
	case InstallDefault:
		return "", false
	case InstallSave:
		return "-S", true
	case InstallSaveDev:
		return "-D", true
	default:
		return "", false
	}
}

// Valid reports whether m is one of InstallModes.
func (m InstallMode) Valid() bool {
	return m >= InstallDefault && m <= InstallSaveDev
}
